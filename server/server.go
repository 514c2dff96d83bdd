// Package server accepts connections, runs each one through the request
// parser and router, and writes the response bytes back.
package server

import (
	"io"
	"log/slog"
	"net"
	"sync"

	"httpserve/httpmsg"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"
)

// Listener hands the server one byte stream per accepted connection.
// *net.TCPListener satisfies it.
type Listener interface {
	Accept() (net.Conn, error)
	Close() error
}

type Options struct {
	Parser httpmsg.ParserOptions
}

// Server owns the accept loop. Each accepted connection is served on its
// own goroutine with nothing shared between requests, so one slow client
// never stalls the others.
type Server struct {
	l      Listener
	router *Router

	logger *slog.Logger
	clock  clock.Clock
	opts   Options

	wg sync.WaitGroup
}

func New(
	l Listener,
	router *Router,
	logger *slog.Logger,
	clock clock.Clock,
	opts Options,
) *Server {
	return &Server{
		l:      l,
		router: router,
		logger: logger,
		clock:  clock,
		opts:   opts,
	}
}

// Serve accepts until the listener closes. Accept errors are logged and the
// loop continues; they never terminate the process.
func (s *Server) Serve() {
	for {
		conn, err := s.l.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return
			}
			s.logger.Error("accepting connection", "error", err)
			continue
		}

		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.serveConn(conn)
		}()
	}
}

// Close stops accepting and waits for in-flight connections to finish.
func (s *Server) Close() error {
	err := s.l.Close()
	s.wg.Wait()
	return err
}

// serveConn runs one parse+route+respond cycle and closes the connection.
func (s *Server) serveConn(conn net.Conn) {
	logger := s.logger.With("conn", conn.RemoteAddr().String())
	start := s.clock.Now()

	defer func() {
		if err := conn.Close(); err != nil {
			logger.Error("closing connection", "error", err)
		}
	}()

	res, ok := s.respond(conn)
	if !ok {
		logger.Info("connection closed before a full request arrived")
		return
	}

	if err := httpmsg.NewResponseEncoder(conn).Encode(res); err != nil {
		logger.Error("writing response", "error", err)
		return
	}

	logger.Info("handled request",
		"status", res.Status.Code,
		"duration", s.clock.Since(start),
	)
}

// respond produces the response for one connection's byte stream. ok is
// false when the peer went away without completing a request, in which case
// nothing should be written back.
func (s *Server) respond(r io.Reader) (res httpmsg.Response, ok bool) {
	p := httpmsg.NewParser(r, s.opts.Parser)

	if err := p.Parse(); err != nil {
		// A malformed request always answers with a 400-class
		// response; parse failures are never retried.
		return BadRequest(err).Response(), true
	}

	req, err := p.Request()
	if err != nil {
		return httpmsg.Response{}, false
	}

	response, herr := s.router.Route(req)
	if herr != nil {
		return herr.Response(), true
	}
	return response, true
}
