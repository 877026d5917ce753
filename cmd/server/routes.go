// Package main provides the AAU helpdesk chatbot server entry point.
package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aauhelpdesk/helpdesk-go/internal/chat"
	"github.com/aauhelpdesk/helpdesk-go/internal/storage"
	"github.com/aauhelpdesk/helpdesk-go/internal/warmup"
)

// setupRoutes configures all HTTP routes.
func setupRoutes(router *gin.Engine, handler *chat.Handler, db *storage.DB, readiness *warmup.ReadinessState, registry *prometheus.Registry) {
	// Liveness probe: process is up, no dependency checks.
	healthHandler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
	router.GET("/healthz", healthHandler)
	router.HEAD("/healthz", healthHandler)

	// Readiness probe: database reachable and warmup finished (or its
	// timeout elapsed).
	readyHandler := func(c *gin.Context) {
		if err := db.Conn().PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "not ready",
				"reason": err.Error(),
			})
			return
		}

		status := readiness.Status()
		if !status.Ready {
			c.JSON(http.StatusServiceUnavailable, status)
			return
		}
		c.JSON(http.StatusOK, status)
	}
	router.GET("/ready", readyHandler)
	router.HEAD("/ready", readyHandler)

	// Chat API
	router.POST("/chat", handler.Chat)
	router.POST("/train", handler.Train)
	router.POST("/evaluate", handler.Evaluate)
	router.POST("/news", handler.IngestNews)
	router.GET("/intents", handler.Intents)
	router.DELETE("/session/:id", handler.DeleteSession)

	// Prometheus metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
}
