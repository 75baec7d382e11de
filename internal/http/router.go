package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/s0ph13d3f45w/landlord-ai/internal/http/handlers"
	"github.com/s0ph13d3f45w/landlord-ai/internal/http/middleware"
)

func BuildRouter(wh *handlers.WebhookHandlers, ah *handlers.AuthHandlers, dh *handlers.DashboardHandlers, smw *middleware.SessionMW) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	r.POST("/webhook/whatsapp", wh.Inbound)

	auth := r.Group("/auth")
	auth.POST("/signup", ah.Signup)
	auth.POST("/login", ah.Login)
	auth.POST("/logout", ah.Logout)
	auth.POST("/password-reset/request", ah.RequestReset)
	auth.POST("/password-reset/confirm", ah.ConfirmReset)

	dash := r.Group("/dashboard").Use(smw.RequireSession())
	dash.GET("/messages", dh.ListMessages)
	dash.GET("/stats", dh.Stats)
	dash.GET("/properties", dh.ListProperties)
	dash.POST("/properties", dh.CreateProperty)
	dash.PUT("/properties/:id", dh.UpdateProperty)
	dash.GET("/tenants", dh.ListTenants)
	dash.POST("/tenants", dh.CreateTenant)
	dash.PUT("/tenants/:id", dh.UpdateTenant)

	return r
}
