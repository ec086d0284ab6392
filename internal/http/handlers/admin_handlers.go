package handlers

import (
	"bytes"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/you/regsvc/domain"
)

// SessionCookie is the name of the admin session cookie
const SessionCookie = "admin_session"

// AdminHandlers handles admin login, logout, listing and export
type AdminHandlers struct {
	authSvc      domain.AdminAuthService
	querySvc     domain.AdminQueryService
	sessionTTL   time.Duration
	secureCookie bool
}

// NewAdminHandlers creates new admin handlers
func NewAdminHandlers(authSvc domain.AdminAuthService, querySvc domain.AdminQueryService, sessionTTL time.Duration, secureCookie bool) *AdminHandlers {
	return &AdminHandlers{
		authSvc:      authSvc,
		querySvc:     querySvc,
		sessionTTL:   sessionTTL,
		secureCookie: secureCookie,
	}
}

// LoginRequest represents an admin login request
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegistrationResponse is the JSON shape of one registration in the
// admin listing
type RegistrationResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	City      string    `json:"city"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
}

// Login handles POST /admin/login
func (h *AdminHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	session, err := h.authSvc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
			return
		}
		log.Printf("ADMIN_LOGIN_FAILED: error=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Login failed"})
		return
	}

	c.SetCookie(SessionCookie, session.ID, int(h.sessionTTL.Seconds()), "/", "", h.secureCookie, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Logout handles GET /admin/logout
func (h *AdminHandlers) Logout(c *gin.Context) {
	sessionID, exists := c.Get("session_id")
	if exists {
		if err := h.authSvc.Logout(c.Request.Context(), sessionID.(string)); err != nil {
			log.Printf("ADMIN_LOGOUT_FAILED: session_id=%s error=%v", sessionID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Logout failed"})
			return
		}
	}

	c.SetCookie(SessionCookie, "", -1, "/", "", h.secureCookie, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// List handles GET /admin/registrations
func (h *AdminHandlers) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	result, err := h.querySvc.ListRegistrations(c.Request.Context(), page, limit)
	if err != nil {
		log.Printf("ADMIN_LIST_FAILED: error=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to list registrations"})
		return
	}

	data := make([]RegistrationResponse, 0, len(result.Data))
	for _, reg := range result.Data {
		data = append(data, RegistrationResponse{
			ID:        reg.ID,
			Name:      reg.Name,
			Phone:     reg.Phone,
			Email:     reg.Email,
			City:      reg.City,
			Address:   reg.Address,
			CreatedAt: reg.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
		"total":   result.Total,
		"page":    result.Page,
		"pages":   result.Pages,
	})
}

// Export handles GET /admin/registrations/export. The CSV is buffered
// so a mid-export store failure yields a clean error response instead
// of a truncated file with a JSON tail.
func (h *AdminHandlers) Export(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.querySvc.ExportCSV(c.Request.Context(), &buf); err != nil {
		log.Printf("ADMIN_EXPORT_FAILED: error=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Export failed"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="registrations.csv"`)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}
