// Package server はSync ServerのHTTPサーバーを提供する。
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oyaguma3/radsync/apps/sync-server/internal/config"
	"github.com/oyaguma3/radsync/apps/sync-server/internal/handler"
)

// Server はGinエンジンとHTTPサーバーのラッパー
type Server struct {
	engine     *gin.Engine
	httpServer *http.Server
}

// New は新しいServerを生成する。
func New(cfg *config.Config, h *handler.Handler) *Server {
	gin.SetMode(cfg.GinMode)

	engine := gin.New()
	engine.Use(TraceIDMiddleware())
	engine.Use(LoggingMiddleware())
	engine.Use(RecoveryMiddleware())
	SetupRouter(engine, h)

	return &Server{
		engine: engine,
		httpServer: &http.Server{
			Addr:              cfg.ListenAddr,
			Handler:           engine,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Engine はGinエンジンを返す。
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Run はHTTPサーバーを起動する。
func (s *Server) Run() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown はサーバーをグレースフルに停止する。
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
