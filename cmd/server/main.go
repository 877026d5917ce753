// Package main provides the AAU helpdesk chatbot server entry point.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/aauhelpdesk/helpdesk-go/internal/buildinfo"
	"github.com/aauhelpdesk/helpdesk-go/internal/chat"
	"github.com/aauhelpdesk/helpdesk-go/internal/config"
	"github.com/aauhelpdesk/helpdesk-go/internal/logger"
	"github.com/aauhelpdesk/helpdesk-go/internal/metrics"
	"github.com/aauhelpdesk/helpdesk-go/internal/ner"
	"github.com/aauhelpdesk/helpdesk-go/internal/news"
	"github.com/aauhelpdesk/helpdesk-go/internal/nlp"
	"github.com/aauhelpdesk/helpdesk-go/internal/r2client"
	"github.com/aauhelpdesk/helpdesk-go/internal/ratelimit"
	"github.com/aauhelpdesk/helpdesk-go/internal/sentry"
	"github.com/aauhelpdesk/helpdesk-go/internal/session"
	"github.com/aauhelpdesk/helpdesk-go/internal/storage"
	"github.com/aauhelpdesk/helpdesk-go/internal/template"
	"github.com/aauhelpdesk/helpdesk-go/internal/warmup"
)

// warmupReadyTimeout caps how long /ready reports not-ready while the
// startup warmup runs.
const warmupReadyTimeout = 60 * time.Second

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger with optional Better Stack shipping
	log := logger.NewWithOptions(cfg.LogLevel, os.Stdout, logger.Options{
		BetterStackToken:    cfg.BetterStackToken,
		BetterStackEndpoint: cfg.BetterStackEndpoint,
	})
	log.WithField("release", buildinfo.Release()).Info("Starting AAU helpdesk server")

	// Initialize error tracking (no-op without a DSN)
	if err := sentry.Initialize(sentry.Config{
		DSN:         cfg.SentryDSN,
		Environment: cfg.SentryEnvironment,
		Release:     buildinfo.Release(),
		SampleRate:  cfg.SentrySampleRate,
	}); err != nil {
		log.WithError(err).Warn("Sentry initialization failed, error tracking disabled")
	}

	// Optional R2 backup: restore a fresh deployment before the
	// database file is created locally
	var backup *r2client.Backup
	if cfg.HasR2Backup() {
		r2, err := r2client.New(context.Background(), r2client.Config{
			Endpoint:    cfg.R2Endpoint,
			AccessKeyID: cfg.R2AccessKeyID,
			SecretKey:   cfg.R2SecretKey,
			BucketName:  cfg.R2BucketName,
		})
		if err != nil {
			log.WithError(err).Error("Failed to create R2 client, backup disabled")
		} else {
			backup = r2client.NewBackup(r2, cfg.SQLitePath(), cfg.R2BackupKey, log)
			if err := backup.Restore(context.Background()); err != nil {
				log.WithError(err).Warn("Database restore failed, starting with local state")
			}
		}
	}

	// Connect to database
	db, err := storage.New(cfg.SQLitePath())
	if err != nil {
		log.WithError(err).Error("Failed to open database")
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()
	log.WithField("path", cfg.SQLitePath()).Info("Database connected")

	// Create Prometheus registry with runtime collectors
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	registry.MustRegister(collectors.NewBuildInfoCollector())
	m := metrics.New(registry)

	// NLP pipeline
	classifier := nlp.NewClassifier()
	extractor := nlp.NewExtractor()

	// Optional LLM entity recognition behind a spend limiter
	recognizer, err := ner.New(context.Background(), ner.Config{
		GeminiAPIKey: cfg.GeminiAPIKey,
		GeminiModel:  cfg.GeminiModel,
		GroqAPIKey:   cfg.GroqAPIKey,
		GroqModel:    cfg.GroqModel,
	}, m, log)
	if err != nil {
		log.WithError(err).Warn("Entity recognition setup failed, continuing with regex extraction")
		recognizer = nil
	}
	var engineRecognizer nlp.EntityRecognizer
	if recognizer != nil {
		engineRecognizer = ner.WithRateLimit(recognizer, ratelimit.New(cfg.LLMRateBurst, cfg.LLMRateRefill), m)
	}

	engine := nlp.NewEngine(classifier, extractor, engineRecognizer, nlp.Config{
		ConfidenceThreshold:  cfg.ConfidenceThreshold,
		ClarifyLowConfidence: cfg.ClarifyLowConfidence,
		FollowUpMaxWords:     cfg.FollowUpMaxWords,
	}, log)

	// Response templates
	rendererOpts := []template.Option{template.WithMaxFollowUps(cfg.MaxFollowUpQuestions)}
	if cfg.TemplateSeed != 0 {
		rendererOpts = append(rendererOpts, template.WithSeed(cfg.TemplateSeed))
	}
	renderer := template.NewRenderer(rendererOpts...)

	// Announcement retrieval index
	newsIndex := news.NewIndex(log)

	// Dialogue context store
	store := session.NewMemoryStore(cfg.SessionTTL, cfg.SessionCleanupInterval)
	defer store.Stop()
	store.OnEvict(m.SetActiveSessions)

	// Per-session chat rate limiter
	userLimiter := ratelimit.NewPerKeyLimiter(ratelimit.PerKeyLimiterConfig{
		MaxTokens:     cfg.UserRateBurst,
		RefillRate:    cfg.UserRateRefill,
		CleanupPeriod: config.RateLimiterCleanupInterval,
	})
	defer userLimiter.Stop()
	userLimiter.OnDrop(func() { m.RecordRateLimiterDrop("user") })

	// Startup warmup runs in the background; /ready gates on it
	readiness := warmup.NewReadinessState(warmupReadyTimeout)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.WithField("panic", r).Error("Panic in startup warmup")
			}
		}()
		if _, err := warmup.Run(context.Background(), db, classifier, newsIndex, log, warmup.Options{Metrics: m}); err != nil {
			log.WithError(err).Error("Startup warmup failed")
			sentry.CaptureException(err)
			return
		}
		readiness.MarkReady()
	}()

	handler := chat.NewHandler(chat.HandlerConfig{
		Engine:           engine,
		Classifier:       classifier,
		Store:            store,
		Renderer:         renderer,
		NewsIndex:        newsIndex,
		DB:               db,
		Metrics:          m,
		Logger:           log,
		UserLimiter:      userLimiter,
		NewsLimit:        cfg.NewsLimit,
		LogConversations: cfg.ConversationLog,
	})

	// Set Gin mode based on log level
	if cfg.LogLevel == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestIDMiddleware())
	router.Use(securityHeadersMiddleware())
	router.Use(loggingMiddleware(log))
	if sentry.IsEnabled() {
		router.Use(sentryMiddleware())
	}

	setupRoutes(router, handler, db, readiness, registry)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  config.HTTPReadTimeout,
		WriteTimeout: config.HTTPWriteTimeout,
		IdleTimeout:  config.HTTPIdleTimeout,
	}

	// Background jobs
	jobCtx, cancelJobs := context.WithCancel(context.Background())
	defer cancelJobs()

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		defer func() {
			if r := recover(); r != nil {
				log.WithField("panic", r).Error("Panic in metrics updater")
			}
		}()
		updateGaugeMetrics(jobCtx, store, userLimiter, db, m, log)
	}()

	if backup != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					log.WithField("panic", r).Error("Panic in backup job")
				}
			}()
			runBackups(jobCtx, backup, cfg.R2BackupInterval, log)
		}()
	}

	// Start server
	go func() {
		log.WithField("port", cfg.Port).Info("Server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Error("Server failed")
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	cancelJobs()

	// Flush pending conversation log writes
	handler.Wait()

	// Wait for background jobs (with timeout)
	jobsDone := make(chan struct{})
	go func() {
		wg.Wait()
		close(jobsDone)
	}()
	select {
	case <-jobsDone:
		log.Info("Background jobs stopped")
	case <-time.After(5 * time.Second):
		log.Warn("Timeout waiting for background jobs")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
	}

	// Final backup so a redeploy restores today's state
	if backup != nil {
		if err := backup.Run(shutdownCtx); err != nil {
			log.WithError(err).Warn("Final backup failed")
		}
	}

	if err := db.Close(); err != nil {
		log.WithError(err).Error("Failed to close database")
	}

	sentry.Flush(2 * time.Second)
	if err := log.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Warn("Log shipping flush incomplete")
	}

	log.Info("Server stopped")
}
