package net

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"BezierBoard/internal/config"

	"github.com/hashicorp/mdns"
	"go.uber.org/zap"
)

// Server is a running share endpoint.
type Server struct {
	Hub *Hub

	log  *zap.Logger
	ln   net.Listener
	http *http.Server
	mdns *mdns.Server
}

// Start listens on cfg.Addr and serves hub. When cfg.Advertise is set the
// service is also announced over mDNS; a failed announcement is logged and
// sharing carries on without it.
func Start(cfg config.Share, session string, hub *Hub, log *zap.Logger) (*Server, error) {
	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return nil, fmt.Errorf("share: listen on %s: %w", cfg.Addr, err)
	}
	s := &Server{
		Hub:  hub,
		log:  log,
		ln:   ln,
		http: &http.Server{Handler: hub.Handler(), ReadHeaderTimeout: 10 * time.Second},
	}
	go func() {
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("share: serve", zap.Error(err))
		}
	}()

	port := ln.Addr().(*net.TCPAddr).Port
	if cfg.Advertise {
		s.mdns, err = advertise(port, session)
		if err != nil {
			log.Warn("share: advertise", zap.Error(err))
		}
	}
	log.Info("share: listening",
		zap.String("url", fmt.Sprintf("http://%s:%d/document.svg", GetOutgoingIP(), port)),
		zap.Bool("advertised", s.mdns != nil))
	return s, nil
}

// Addr returns the address the server is listening on.
func (s *Server) Addr() net.Addr { return s.ln.Addr() }

// Close stops the announcement, disconnects viewers and shuts the HTTP
// server down.
func (s *Server) Close(ctx context.Context) error {
	if s.mdns != nil {
		if err := s.mdns.Shutdown(); err != nil {
			s.log.Warn("share: stop advertising", zap.Error(err))
		}
	}
	s.Hub.Close()
	return s.http.Shutdown(ctx)
}
