package server

import (
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/hinfosvc/hinfosvc/pkg/logger"
	"github.com/hinfosvc/hinfosvc/pkg/safego"
	"github.com/hinfosvc/hinfosvc/pkg/tools"
	"github.com/hinfosvc/hinfosvc/web/protocol"

	golocalv1 "github.com/hinfosvc/hinfosvc/pkg/golocal/v1"
)

type Config struct {
	Port int `yaml:"port"`
}

// Server owns the listening socket and the shutdown signal channel. It
// serves exactly one request per accepted connection, strictly one
// connection at a time, and treats any transport or probe failure as fatal.
// That crash-on-failure policy is part of the contract, not an oversight:
// the tool favors a tiny obvious control flow over availability.
type Server struct {
	cfg    Config
	probe  protocol.Probe
	logger logger.ILog

	ln       net.Listener
	sigCh    chan os.Signal
	stopping int32
}

func New(cfg Config, probe protocol.Probe, log logger.ILog) *Server {
	if log == nil {
		log = logger.DefaultLogger()
	}
	return &Server{
		cfg:    cfg,
		probe:  probe,
		logger: log,
	}
}

// Listen binds the dual-stack listening socket. Go's tcp listeners come up
// with address reuse and in non-blocking mode, so no extra socket options
// are needed here.
func (s *Server) Listen() error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", s.cfg.Port))
	if err != nil {
		return fmt.Errorf("listen on port %d: %w", s.cfg.Port, err)
	}
	s.ln = ln
	return nil
}

// Addr reports the bound address. Only valid after Listen.
func (s *Server) Addr() string {
	return s.ln.Addr().String()
}

// Run is the whole lifetime of the server: bind, serve until a shutdown
// signal, tear down. A nil return means a graceful stop.
func (s *Server) Run() error {
	if err := s.Listen(); err != nil {
		return err
	}
	return s.Serve()
}

// Serve accepts and processes connections one by one. Blocking in Accept is
// the single suspension point of the process; a SIGINT/SIGTERM watcher
// closes the listener to break out of it, which Serve maps to a graceful
// stop. A request already being processed still runs to completion.
func (s *Server) Serve() error {
	s.sigCh = make(chan os.Signal, 1)
	signal.Notify(s.sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer func() {
		signal.Stop(s.sigCh)
		close(s.sigCh)
	}()

	safego.Go(func() {
		sig, ok := <-s.sigCh
		if !ok {
			return
		}
		s.logger.Info("Accept signal %s. The server is shutting down...", sig)
		s.Shutdown()
	})

	s.logger.Info("hinfosvc listening on %s", s.Addr())

	for {
		conn, err := s.ln.Accept()
		if err != nil {
			if atomic.LoadInt32(&s.stopping) == 1 && errors.Is(err, net.ErrClosed) {
				s.logger.Info("hinfosvc stopped")
				return nil
			}
			return fmt.Errorf("accept: %w", err)
		}

		golocalv1.PutTraceID(tools.UUID())
		err = s.serveConn(conn)
		_ = conn.Close()
		golocalv1.Clean()
		if err != nil {
			_ = s.ln.Close()
			return err
		}
	}
}

// Shutdown makes Serve return nil once the in-flight request, if any, has
// been answered. Safe to call from any goroutine.
func (s *Server) Shutdown() {
	if atomic.CompareAndSwapInt32(&s.stopping, 0, 1) {
		_ = s.ln.Close()
	}
}

// serveConn drives one request through scan, parse, build, write. Protocol
// violations become HTTP error responses; a non-nil return is a transport
// or probe failure and kills the server.
func (s *Server) serveConn(conn net.Conn) error {
	var rl protocol.RequestLine
	var status int

	line, err := protocol.ReadRequestHead(conn)
	switch {
	case err == nil:
		rl, status = protocol.ParseRequestLine(line)
	case errors.Is(err, protocol.ErrLineTooLong):
		status = protocol.StatusURITooLong
	case errors.Is(err, protocol.ErrMalformedHead):
		status = protocol.StatusBadRequest
	default:
		return fmt.Errorf("read request head: %w", err)
	}

	resp, err := protocol.BuildResponse(status, rl.URI, s.probe, time.Now())
	if err != nil {
		return err
	}

	if _, err := conn.Write(resp); err != nil {
		return fmt.Errorf("write response: %w", err)
	}

	s.logger.Info("%s %s -> %d %s", orDash(rl.Method), orDash(rl.URI), respStatus(status, rl.URI), protocol.ReasonPhrase(respStatus(status, rl.URI)))
	return nil
}

// respStatus mirrors the 404 override applied inside BuildResponse so the
// access log matches what went out on the wire.
func respStatus(status int, uri string) int {
	if status != protocol.StatusOK {
		return status
	}
	switch uri {
	case "/hostname", "/cpu-name", "/load":
		return status
	}
	return protocol.StatusNotFound
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
