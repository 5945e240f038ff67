// seehuhn.de/go/annotate - render annotations onto images
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package server exposes the export engine over HTTP.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"seehuhn.de/go/annotate/internal/config"
)

type Server struct {
	httpServer *http.Server
	log        *zap.Logger
}

// NewRouter returns the HTTP handler for the service.
func NewRouter(exporter Exporter, log *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), requestID(), accessLog(log))

	h := NewHandler(exporter, log)
	router.GET("/health", h.HealthCheck)
	router.POST("/export/:imageId", h.Export)

	return router
}

func New(cfg config.ServerConfig, exporter Exporter, log *zap.Logger) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.Host + ":" + cfg.Port,
			Handler:           NewRouter(exporter, log),
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       10 * time.Second,
			WriteTimeout:      60 * time.Second,
			MaxHeaderBytes:    1 << 20, // 1 MB
		},
		log: log,
	}
}

// Run serves requests until the server is shut down.
func (s *Server) Run() error {
	s.log.Info("Server is running", zap.String("address", s.httpServer.Addr))

	err := s.httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("Shutting down server")
	return s.httpServer.Shutdown(ctx)
}
