package app

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/you/regsvc/internal/config"
	httpx "github.com/you/regsvc/internal/http"
	"github.com/you/regsvc/internal/http/handlers"
	"github.com/you/regsvc/internal/http/middleware"
)

// Run wires the container and serves until the listener fails. A store
// that cannot be reached at startup is fatal, not degraded-mode.
func Run(cfg *config.Config) error {
	gin.SetMode(cfg.GinMode)

	c, err := NewContainer(cfg)
	if err != nil {
		return err
	}
	defer c.Close()

	if err := c.RedisClient.Ping(context.Background()).Err(); err != nil {
		return err
	}

	regH := handlers.NewRegistrationHandlers(c.RegistrationSvc)
	admH := handlers.NewAdminHandlers(c.AdminAuthSvc, c.AdminQuerySvc, cfg.SessionTTL, cfg.Production)

	sessionMW := middleware.NewSessionMW(c.SessionRepo)
	cors := middleware.CORS(cfg.AllowedOrigin, cfg.Production)

	r := httpx.BuildRouter(regH, admH, sessionMW, cors)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
