// Package api exposes the record store and statistics over a JSON REST API.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/alexanderramin/babylog/internal/service"
	"github.com/gin-gonic/gin"
)

// Server handles HTTP requests for the care log.
type Server struct {
	profiles service.ProfileService
	records  service.RecordService
	stats    service.StatsService
	logger   *slog.Logger
	now      func() time.Time
}

// New creates a Server. A nil logger falls back to slog.Default.
func New(profiles service.ProfileService, records service.RecordService, stats service.StatsService, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		profiles: profiles,
		records:  records,
		stats:    stats,
		logger:   logger,
		now:      time.Now,
	}
}

// Router builds the gin engine with every route registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.logger), withCORS())

	r.GET("/health", s.health)

	r.GET("/profile", s.getProfile)
	r.PUT("/profile", s.updateProfile)

	records := r.Group("/records")
	{
		records.GET("", s.listRecords)
		records.POST("", s.addRecord)
		records.GET("/:id", s.getRecord)
		records.DELETE("/:id", s.deleteRecord)
	}

	stats := r.Group("/stats")
	{
		stats.GET("/daily", s.dailyStats)
		stats.GET("/weekly", s.weeklyStats)
	}

	return r
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server_started", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info("server_stopping")
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
