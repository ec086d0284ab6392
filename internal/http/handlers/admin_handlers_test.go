package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/you/regsvc/domain"
	"github.com/you/regsvc/internal/mocks"
)

func newAdminRouter(authSvc domain.AdminAuthService, querySvc domain.AdminQueryService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAdminHandlers(authSvc, querySvc, time.Hour, false)

	r.POST("/admin/login", h.Login)
	// Tests exercise the handlers directly; the session gate has its
	// own middleware tests.
	r.GET("/admin/logout", func(c *gin.Context) { c.Set("session_id", "sess-1"); h.Logout(c) })
	r.GET("/admin/registrations", h.List)
	r.GET("/admin/registrations/export", h.Export)
	return r
}

func TestAdminHandlers_Login(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		loginErr       error
		expectedStatus int
		expectCookie   bool
	}{
		{
			name:           "successful login sets cookie",
			body:           `{"username":"admin","password":"s3cret"}`,
			expectedStatus: http.StatusOK,
			expectCookie:   true,
		},
		{
			name:           "bad credentials",
			body:           `{"username":"admin","password":"nope"}`,
			loginErr:       domain.ErrInvalidCredentials,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "missing fields",
			body:           `{"username":"admin"}`,
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authSvc := mocks.NewMockAdminAuthService()
			if tt.loginErr == nil {
				authSvc.LoginFunc = func(ctx context.Context, username, password string) (*domain.AdminSession, error) {
					return &domain.AdminSession{ID: "sess-1", Username: username}, nil
				}
			}
			r := newAdminRouter(authSvc, mocks.NewMockAdminQueryService())

			req := httptest.NewRequest(http.MethodPost, "/admin/login", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			var resp map[string]any
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to parse response: %v", err)
			}
			success, _ := resp["success"].(bool)
			if success != (tt.expectedStatus == http.StatusOK) {
				t.Errorf("unexpected success flag: %v", resp)
			}

			cookies := w.Result().Cookies()
			hasSession := false
			for _, c := range cookies {
				if c.Name == SessionCookie && c.Value != "" {
					hasSession = true
					if !c.HttpOnly {
						t.Error("session cookie must be HttpOnly")
					}
				}
			}
			if hasSession != tt.expectCookie {
				t.Errorf("expected cookie=%v, got cookies %v", tt.expectCookie, cookies)
			}
		})
	}
}

func TestAdminHandlers_Logout(t *testing.T) {
	authSvc := mocks.NewMockAdminAuthService()
	deleted := ""
	authSvc.LogoutFunc = func(ctx context.Context, sessionID string) error {
		deleted = sessionID
		return nil
	}
	r := newAdminRouter(authSvc, mocks.NewMockAdminQueryService())

	req := httptest.NewRequest(http.MethodGet, "/admin/logout", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if deleted != "sess-1" {
		t.Errorf("expected session sess-1 to be deleted, got %q", deleted)
	}

	// Cookie is cleared.
	for _, c := range w.Result().Cookies() {
		if c.Name == SessionCookie && c.MaxAge >= 0 {
			t.Errorf("expected cookie to be expired, got MaxAge=%d", c.MaxAge)
		}
	}
}

func TestAdminHandlers_List(t *testing.T) {
	querySvc := mocks.NewMockAdminQueryService()
	var gotPage, gotLimit int
	querySvc.ListRegistrationsFunc = func(ctx context.Context, page, limit int) (*domain.RegistrationPage, error) {
		gotPage, gotLimit = page, limit
		return &domain.RegistrationPage{
			Data: []domain.Registration{
				{ID: 1, Name: "Jo", Phone: "1234567", Email: "a@b.com", CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)},
			},
			Total: 1,
			Page:  page,
			Pages: 1,
		}, nil
	}
	r := newAdminRouter(mocks.NewMockAdminAuthService(), querySvc)

	req := httptest.NewRequest(http.MethodGet, "/admin/registrations?page=2&limit=5", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if gotPage != 2 || gotLimit != 5 {
		t.Errorf("expected page=2 limit=5, got page=%d limit=%d", gotPage, gotLimit)
	}

	var resp struct {
		Success bool                   `json:"success"`
		Data    []RegistrationResponse `json:"data"`
		Total   int64                  `json:"total"`
		Page    int                    `json:"page"`
		Pages   int                    `json:"pages"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if !resp.Success || resp.Total != 1 || resp.Page != 2 || resp.Pages != 1 {
		t.Errorf("unexpected envelope: %+v", resp)
	}
	if len(resp.Data) != 1 || resp.Data[0].Email != "a@b.com" {
		t.Errorf("unexpected data: %+v", resp.Data)
	}
}

func TestAdminHandlers_List_DefaultsOnGarbage(t *testing.T) {
	querySvc := mocks.NewMockAdminQueryService()
	var gotPage, gotLimit int
	querySvc.ListRegistrationsFunc = func(ctx context.Context, page, limit int) (*domain.RegistrationPage, error) {
		gotPage, gotLimit = page, limit
		return &domain.RegistrationPage{Page: page, Pages: 0}, nil
	}
	r := newAdminRouter(mocks.NewMockAdminAuthService(), querySvc)

	req := httptest.NewRequest(http.MethodGet, "/admin/registrations?page=abc&limit=xyz", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	// strconv failures surface as zero; the service applies defaults.
	if gotPage != 0 || gotLimit != 0 {
		t.Errorf("expected zero values passed through, got page=%d limit=%d", gotPage, gotLimit)
	}
}

func TestAdminHandlers_Export(t *testing.T) {
	querySvc := mocks.NewMockAdminQueryService()
	querySvc.ExportCSVFunc = func(ctx context.Context, w io.Writer) error {
		_, err := w.Write([]byte("Name,Phone,Email,City,Address,Date\n\"Jo\",\"1234567\",\"a@b.com\",\"\",\"\",\"2025-06-01T12:00:00Z\"\n"))
		return err
	}
	r := newAdminRouter(mocks.NewMockAdminAuthService(), querySvc)

	req := httptest.NewRequest(http.MethodGet, "/admin/registrations/export", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("expected text/csv content type, got %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "attachment") {
		t.Errorf("expected attachment disposition, got %q", cd)
	}
	if lines := strings.Split(strings.TrimRight(w.Body.String(), "\n"), "\n"); len(lines) != 2 {
		t.Errorf("expected header plus one row, got %d lines", len(lines))
	}
}

func TestAdminHandlers_Export_StoreFailure(t *testing.T) {
	querySvc := mocks.NewMockAdminQueryService()
	querySvc.ExportCSVFunc = func(ctx context.Context, w io.Writer) error {
		// Simulate a store failure after the header already went out.
		w.Write([]byte("Name,Phone,Email,City,Address,Date\n"))
		return errors.New("pq: connection reset")
	}
	r := newAdminRouter(mocks.NewMockAdminAuthService(), querySvc)

	req := httptest.NewRequest(http.MethodGet, "/admin/registrations/export", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); strings.HasPrefix(ct, "text/csv") {
		t.Errorf("expected a non-CSV error response, got content type %q", ct)
	}
	if body := w.Body.String(); strings.Contains(body, "Name,Phone") {
		t.Errorf("partial CSV leaked into the error response: %q", body)
	}

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("expected a JSON error envelope: %v", err)
	}
	if success, _ := resp["success"].(bool); success {
		t.Error("expected success=false in the error envelope")
	}
}
