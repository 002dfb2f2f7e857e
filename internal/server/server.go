package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"uae-chat/internal/chat"
	"uae-chat/internal/common"
	"uae-chat/internal/history"
)

// Autocompleter suggests corpus questions for partial input
type Autocompleter interface {
	Autocomplete(input string, limit int) []string
}

// Server exposes chat sessions over HTTP and WebSocket
type Server struct {
	registry *chat.Registry
	complete Autocompleter
	store    history.Store
	language string
	logger   *log.Logger
	engine   *gin.Engine
}

// New builds the gin engine. store may be nil, in which case /api/history is empty.
func New(registry *chat.Registry, complete Autocompleter, store history.Store, defaultLanguage string, logger *log.Logger) *Server {
	s := &Server{
		registry: registry,
		complete: complete,
		store:    store,
		language: defaultLanguage,
		logger:   common.OrDiscard(logger),
	}

	engine := gin.New()
	engine.Use(gin.LoggerWithWriter(s.logger.Writer()), gin.Recovery())

	engine.GET("/healthz", s.handleHealth)

	api := engine.Group("/api")
	api.GET("/quick-replies", s.handleQuickReplies)
	api.GET("/suggestions", s.handleSuggestions)
	api.GET("/history", s.handleHistory)
	api.POST("/sessions", s.handleCreateSession)

	sessions := api.Group("/sessions/:id")
	sessions.GET("/messages", s.handleMessages)
	sessions.POST("/messages", s.handleSend)
	sessions.POST("/quick-reply", s.handleQuickReply)
	sessions.POST("/clear", s.handleClear)
	sessions.PUT("/language", s.handleLanguage)

	engine.GET("/ws/:id", s.handleWebSocket)

	s.engine = engine
	return s
}

// Handler returns the HTTP handler
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Printf("listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
