package app

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/s0ph13d3f45w/landlord-ai/internal/config"
	httpx "github.com/s0ph13d3f45w/landlord-ai/internal/http"
	"github.com/s0ph13d3f45w/landlord-ai/internal/http/handlers"
	"github.com/s0ph13d3f45w/landlord-ai/internal/http/middleware"
)

func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	container, err := NewContainer(cfg)
	if err != nil {
		return err
	}
	defer container.Close()

	if err := container.RedisClient.Ping(context.Background()); err != nil {
		return err
	}

	webhookH := handlers.NewWebhookHandlers(container.WebhookSvc)
	authH := handlers.NewAuthHandlers(container.AuthSvc)
	dashboardH := handlers.NewDashboardHandlers(container.DashboardSvc)
	sessionMW := middleware.NewSessionMW(container.SessionRepo)

	r := httpx.BuildRouter(webhookH, authH, dashboardH, sessionMW)

	recapCtx, stopRecap := context.WithCancel(context.Background())
	defer stopRecap()
	go container.RecapSvc.Run(recapCtx)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
