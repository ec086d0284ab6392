package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/you/regsvc/internal/http/handlers"
	"github.com/you/regsvc/internal/http/middleware"
)

func BuildRouter(rh *handlers.RegistrationHandlers, ah *handlers.AdminHandlers, sessionMW *middleware.SessionMW, cors gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), cors)

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	api := r.Group("/api")
	api.POST("/register", rh.Register)

	r.POST("/admin/login", ah.Login)

	adm := r.Group("/admin").Use(sessionMW.RequireAdmin())
	adm.GET("/logout", ah.Logout)
	adm.GET("/registrations", ah.List)
	adm.GET("/registrations/export", ah.Export)

	return r
}
