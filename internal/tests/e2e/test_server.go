package e2e

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	httpx "github.com/you/regsvc/internal/http"
	"github.com/you/regsvc/internal/http/handlers"
	"github.com/you/regsvc/internal/http/middleware"
	infraauth "github.com/you/regsvc/internal/infrastructure/auth"
	"github.com/you/regsvc/internal/infrastructure/repositories"
	"github.com/you/regsvc/internal/services"
)

const (
	testAdminUser = "admin"
	testAdminPass = "s3cret"
)

// TestServer wires the full stack against in-memory stores
type TestServer struct {
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
	RegSvc *services.RegistrationServiceImpl
	Clock  *FakeClock
}

// FakeClock lets tests move time past the dedup window
type FakeClock struct {
	Current time.Time
}

func (f *FakeClock) Now() time.Time { return f.Current }

func (f *FakeClock) Advance(d time.Duration) { f.Current = f.Current.Add(d) }

// NewTestServer builds the router exactly as app.Run does, swapping
// Postgres for in-memory SQLite and Redis for miniredis.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&repositories.DBRegistration{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(func() { mr.Close() })
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	regRepo := repositories.NewRegistrationRepository(db)
	sessionRepo := repositories.NewSessionRepository(rdb, time.Hour)

	clock := &FakeClock{Current: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	regSvc := services.NewRegistrationService(regRepo, 30*24*time.Hour)
	regSvc.SetClock(clock.Now)

	querySvc := services.NewAdminQueryService(regRepo)
	authSvc := services.NewAdminAuthService(testAdminUser, testAdminPass, infraauth.NewCredentialsService(), sessionRepo, time.Hour)

	regH := handlers.NewRegistrationHandlers(regSvc)
	admH := handlers.NewAdminHandlers(authSvc, querySvc, time.Hour, false)
	sessionMW := middleware.NewSessionMW(sessionRepo)
	cors := middleware.CORS("", false)

	return &TestServer{
		Router: httpx.BuildRouter(regH, admH, sessionMW, cors),
		DB:     db,
		Redis:  rdb,
		RegSvc: regSvc,
		Clock:  clock,
	}
}
