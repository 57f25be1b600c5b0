package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"presensi/internal/config"
	"presensi/internal/httpmiddleware"
	"presensi/internal/loader"
	"presensi/internal/queue"
	"presensi/internal/recap"
	"presensi/internal/report"
	"presensi/internal/sheets"
	"presensi/internal/store"
)

func main() {
	cfg := config.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	if cfg.Env == "production" || cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	if err := runHTTP(cfg, log); err != nil {
		log.Fatalf("http server failed: %v", err)
	}
}

func runHTTP(cfg config.App, log *logrus.Logger) error {
	redisClient := store.NewRedis(cfg.RedisAddr)
	defer redisClient.Close()

	var q queue.Queue
	if cfg.QueueBackend == "memory" {
		q = queue.NewInMemory(64)
	} else {
		q = queue.NewRedisQueue(redisClient.Client, cfg.QueueKey)
	}

	client := sheets.New(cfg.ProxyURL, cfg.SheetCSVURL, cfg.WebAppURL, cfg.FetchTimeout, log)
	ld := loader.New(client, log)

	// First snapshot in the background so startup never blocks on the sheet.
	go ld.Refresh(context.Background())

	sched := loader.NewScheduler(ld, cfg.RefreshInterval)
	sched.Start()
	defer sched.Stop()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/healthz", "/metrics"},
	}))

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(corsCfg))

	r.Use(securityHeaders())
	r.Use(httpmiddleware.NewTokenBucket(cfg.RateLimitPerMin, cfg.RateLimitPerMin).GinMiddleware())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/healthz", healthzHandler(redisClient, ld))

	v1 := r.Group("/v1")

	v1.GET("/attendance", func(c *gin.Context) {
		snap := ld.Current()
		c.JSON(http.StatusOK, gin.H{
			"attendance":  recap.FilterDaily(snap.Daily, c.Query("q")),
			"stats":       snap.Stats,
			"fallback":    snap.UsedFallback,
			"refreshedAt": snap.RefreshedAt,
		})
	})

	v1.GET("/teaching", func(c *gin.Context) {
		snap := ld.Current()
		c.JSON(http.StatusOK, gin.H{
			"teaching":    snap.Teaching,
			"refreshedAt": snap.RefreshedAt,
		})
	})

	v1.GET("/recap", func(c *gin.Context) {
		snap := ld.Current()
		c.JSON(http.StatusOK, gin.H{
			"recaps":      recap.FilterRecaps(snap.Recaps, c.Query("q")),
			"workingDays": recap.StandardWorkingDays,
			"refreshedAt": snap.RefreshedAt,
		})
	})

	v1.GET("/report", func(c *gin.Context) {
		start, end := c.Query("start"), c.Query("end")
		if !isISODate(start) || !isISODate(end) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "start and end must be YYYY-MM-DD"})
			return
		}
		rows, err := client.FetchReport(c.Request.Context(), start, end)
		if err != nil {
			log.WithError(err).Warn("report download failed")
			c.JSON(http.StatusBadGateway, gin.H{"error": "download failed"})
			return
		}
		if rows.Empty() {
			c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
			return
		}
		c.Header("Content-Disposition", `attachment; filename="`+report.Filename(start, end)+`"`)
		c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(rows.CSV()))
	})

	v1.POST("/submissions", func(c *gin.Context) {
		var sub sheets.Submission
		if err := c.ShouldBindJSON(&sub); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if !sub.Action.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "action must be ATTENDANCE, TEACHING or LEAVE"})
			return
		}

		body, err := json.Marshal(sub)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "encode failed"})
			return
		}
		id := uuid.NewString()
		if err := q.Publish(c.Request.Context(), queue.Message{ID: id, Body: body}); err != nil {
			log.WithError(err).Error("submission enqueue failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "queue unavailable"})
			return
		}
		c.JSON(http.StatusAccepted, gin.H{"id": id, "status": "queued"})
	})

	v1.POST("/refresh", func(c *gin.Context) {
		go ld.Refresh(context.Background())
		c.JSON(http.StatusAccepted, gin.H{"status": "refreshing"})
	})

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second, // report downloads proxy a slow upstream
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infof("starting server on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warnf("server forced shutdown: %v", err)
	}

	log.Info("server exited")
	return nil
}

func healthzHandler(redisClient *store.Redis, ld *loader.Loader) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap := ld.Current()
		redisHealthy := redisClient.Healthy(c.Request.Context())
		status, code := "ok", http.StatusOK
		if !redisHealthy {
			status, code = "degraded", http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"status":      status,
			"redis":       redisHealthy,
			"refreshed":   !snap.RefreshedAt.IsZero(),
			"refreshedAt": snap.RefreshedAt,
		})
	}
}

func isISODate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// Security headers middleware.
func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		if gin.Mode() == gin.ReleaseMode {
			c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}
		c.Next()
	}
}
