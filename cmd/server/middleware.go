// Package main provides the AAU helpdesk chatbot server entry point.
package main

import (
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/aauhelpdesk/helpdesk-go/internal/logger"
)

const requestIDKey = "request_id"

// requestIDMiddleware tags each request with an ID, honoring an
// X-Request-ID header from upstream proxies.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(requestIDKey, requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// securityHeadersMiddleware adds security headers to all responses.
// Reference: https://gin-gonic.com/en/docs/examples/security-headers
func securityHeadersMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Prevent MIME type sniffing
		c.Header("X-Content-Type-Options", "nosniff")
		// Prevent clickjacking
		c.Header("X-Frame-Options", "DENY")
		// Enable XSS filter in browsers
		c.Header("X-XSS-Protection", "1; mode=block")
		// Strict referrer policy
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		// Restrict permissions
		c.Header("Permissions-Policy", "geolocation=(), microphone=(), camera=()")
		// Content Security Policy - prevent XSS attacks
		c.Header("Content-Security-Policy", "default-src 'self'")
		c.Next()
	}
}

// loggingMiddleware logs HTTP requests with status-based levels.
func loggingMiddleware(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		duration := time.Since(start)
		status := c.Writer.Status()

		entry := log.WithRequestID(c.GetString(requestIDKey)).
			WithField("method", method).
			WithField("path", path).
			WithField("status", status).
			WithField("duration_ms", duration.Milliseconds()).
			WithField("ip", c.ClientIP())

		if len(c.Errors) > 0 {
			entry.WithField("errors", c.Errors.String()).Error("Request completed with errors")
		} else {
			switch {
			case status >= 500:
				entry.Error("Request failed")
			case status >= 400:
				entry.Warn("Request completed with client error")
			default:
				entry.Debug("Request completed")
			}
		}
	}
}

// sentryMiddleware attaches a Sentry hub to each request so handlers
// can capture errors with request context.
func sentryMiddleware() gin.HandlerFunc {
	return sentrygin.New(sentrygin.Options{Repanic: true})
}
