package server

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

type Server struct {
	server *http.Server
}

func NewServer(h http.Handler, addr string) *Server {
	return &Server{
		server: &http.Server{
			Addr:              addr,
			Handler:           h,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

func (s *Server) Start() error {
	log.Info().Str("addr", s.server.Addr).Msg("server starting")
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	log.Info().Msg("shutting down")
	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	log.Info().Msg("server stopped")
	return nil
}
