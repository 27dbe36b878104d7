// Package chat implements the chat server core: the accept loop and the
// per-connection sessions relaying lines through a shared broadcast hub.
package chat

import (
	"context"
	"errors"
	"net"
	"sync"
	"time"

	"github.com/fatih/color"

	"github.com/jeffers1n/labRustChat/internal/chat/hub"
)

// Server - represents chat server over any net.Listener implementation.
// All sessions publish to and consume from one shared hub.
type Server struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     *sync.WaitGroup

	hub    *hub.Hub
	logger Logger
}

type serverOption func(s *Server) error

// WithLogger - attaches a logger for connection diagnostics.
// Without it the server stays silent.
func WithLogger(logger Logger) serverOption {
	return func(s *Server) error {
		if s.logger != nil {
			return errors.New("chat.WithLogger: logger already set up")
		}
		s.logger = logger
		return nil
	}
}

// NewServer - creates new chat server around the given hub.
func NewServer(h *hub.Hub, options ...serverOption) (*Server, error) {
	if h == nil {
		return nil, errors.New("chat.NewServer: required hub.Hub is nil")
	}
	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{
		ctx:    ctx,
		cancel: cancel,
		wg:     &sync.WaitGroup{},
		hub:    h,
	}
	for _, option := range options {
		if option == nil {
			continue
		}
		if err := option(s); err != nil {
			cancel()
			return nil, err
		}
	}
	return s, nil
}

// Serve - accepts connections from the listener until the server is shut
// down, spawning a session per connection. Session failures never reach the
// accept loop.
func (s *Server) Serve(listener net.Listener) {
	if listener == nil || s.ctx.Err() != nil {
		return
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		<-s.ctx.Done()
		listener.Close()
	}()

	s.wg.Add(1)
	defer s.wg.Done()
	for {
		conn, err := listener.Accept()
		if err != nil {
			select {
			case <-s.ctx.Done():
				return
			default:
			}
			if errors.Is(err, net.ErrClosed) {
				// the listener is gone for good, retrying would spin
				logError(s.logger, "Listener closed, stop accepting:", err)
				return
			}
			// the listener itself is still valid, keep accepting
			logError(s.logger, "Accept failed:", err)
			continue
		}

		logInfo(s.logger, color.CyanString("New connection from %s", conn.RemoteAddr()))

		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			defer func() {
				if r := recover(); r != nil {
					logError(s.logger, "Session panic:", r)
					conn.Close()
				}
			}()
			s.serveConn(conn)
		}()
	}
}

// Shutdown - stops server with the specified timeout and returns stopping
// duration.
func (s *Server) Shutdown(timeout time.Duration) time.Duration {
	if s.ctx.Err() != nil {
		return 0
	}
	from := time.Now()
	s.cancel()
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(timeout):
	}
	return time.Since(from)
}
