// Package server exposes the ranking and chat engine over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/rgarhwal/intern-advisor/internal/engine"
	"github.com/rgarhwal/intern-advisor/internal/history"
	"github.com/rgarhwal/intern-advisor/internal/profile"
)

// sessionHeader carries the chat session identity. Requests without it get a
// fresh session ID, returned in the response for the client to reuse.
const sessionHeader = "X-Session-ID"

// Config holds the HTTP listener settings.
type Config struct {
	Address         string        `mapstructure:"address"`
	ReadTimeout     time.Duration `mapstructure:"read-timeout"`
	WriteTimeout    time.Duration `mapstructure:"write-timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown-timeout"`
}

const (
	defaultAddress         = ":8080"
	defaultReadTimeout     = 15 * time.Second
	defaultWriteTimeout    = 60 * time.Second
	defaultShutdownTimeout = 10 * time.Second
)

// Server wires the engine and the history store into a gin router.
type Server struct {
	engine  *engine.Engine
	history history.Store
	logger  *zap.Logger
	cfg     Config
	http    *http.Server
}

func New(eng *engine.Engine, store history.Store, cfg Config, logger *zap.Logger) *Server {
	if cfg.Address == "" {
		cfg.Address = defaultAddress
	}
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = defaultReadTimeout
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = defaultWriteTimeout
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	s := &Server{engine: eng, history: store, logger: logger, cfg: cfg}
	s.http = &http.Server{
		Addr:         cfg.Address,
		Handler:      s.Router(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return s
}

// Router builds the gin handler. Exposed separately so tests can drive it
// with httptest without opening a listener.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.POST("/api/recommendations", s.recommendations)
	router.POST("/api/chat", s.chat)
	router.GET("/healthz", s.healthz)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}

// Run serves until the context is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", zap.String("address", s.cfg.Address))
		errCh <- s.http.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.logger.Info("http server stopped")
	return nil
}

type recommendationsRequest struct {
	Profile *profile.Profile `json:"profile"`
}

func (s *Server) recommendations(c *gin.Context) {
	var req recommendationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	recs := s.engine.GetRankedCandidates(c.Request.Context(), req.Profile)
	c.JSON(http.StatusOK, recs)
}

type chatRequest struct {
	Message string           `json:"message"`
	Profile *profile.Profile `json:"profile"`
}

type chatResponse struct {
	Reply        string `json:"reply"`
	UsedFallback bool   `json:"usedFallback"`
	SessionID    string `json:"sessionId"`
}

func (s *Server) chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	sessionID := c.GetHeader(sessionHeader)
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	ctx := c.Request.Context()

	turns, err := s.history.Load(ctx, sessionID)
	if err != nil {
		// A broken history store should not take chat down; answer without
		// conversational context.
		s.logger.Warn("history load failed", zap.String("session", sessionID), zap.Error(err))
		turns = nil
	}

	reply, err := s.engine.GetChatReply(ctx, req.Message, req.Profile, turns)
	if err != nil {
		status := http.StatusBadRequest
		switch {
		case errors.Is(err, engine.ErrEmptyMessage):
			c.JSON(status, gin.H{"error": "message must not be empty"})
		case errors.Is(err, engine.ErrMessageTooLong):
			c.JSON(status, gin.H{"error": "message exceeds the 500 character limit"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "chat request failed"})
		}
		return
	}

	if err := s.history.Save(ctx, sessionID, reply.History); err != nil {
		s.logger.Warn("history save failed", zap.String("session", sessionID), zap.Error(err))
	}

	c.Header(sessionHeader, sessionID)
	c.JSON(http.StatusOK, chatResponse{
		Reply:        reply.Reply,
		UsedFallback: reply.UsedFallback,
		SessionID:    sessionID,
	})
}

func (s *Server) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
