package api

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"regexp"
	"strings"
	"time"

	"github.com/holaimscott/hidmux/internal/log"
	"github.com/holaimscott/hidmux/internal/server/api/auth"
	apierror "github.com/holaimscott/hidmux/internal/server/api/error"
	"github.com/holaimscott/hidmux/service"
)

// Server implements a small TCP API exposing the HID arbitration operations.
type Server struct {
	svc    *service.Service
	addr   string
	ln     net.Listener
	logger *slog.Logger
	router *Router
	config ServerConfig
	key    []byte
	raw    log.RawLogger
}

// New creates a new API server bound to a service.Service instance. key is
// the derived 32-byte auth key, or nil to serve unauthenticated.
func New(svc *service.Service, addr string, config ServerConfig, key []byte, logger *slog.Logger) *Server {
	a := &Server{
		svc:    svc,
		addr:   addr,
		logger: logger,
		config: config,
		key:    key,
		raw:    log.NewRaw(nil),
	}
	a.router = NewRouter()
	return a
}

// SetRawLogger installs a wire-frame logger for request and response data.
func (a *Server) SetRawLogger(raw log.RawLogger) {
	if raw != nil {
		a.raw = raw
	}
}

// Router returns the router used by the API server so callers can register handlers.
func (a *Server) Router() *Router { return a.router }

// Service returns the underlying arbitration service.
func (a *Server) Service() *service.Service { return a.svc }

// Config returns the server configuration.
func (a *Server) Config() ServerConfig { return a.config }

// Addr returns the bound listen address once the server has started.
func (a *Server) Addr() string {
	if a.ln != nil {
		return a.ln.Addr().String()
	}
	return a.addr
}

// Start listens on the configured address and serves incoming API commands.
func (a *Server) Start() error {
	ln, err := net.Listen("tcp", a.addr)
	if err != nil {
		return err
	}
	a.ln = ln
	a.logger.Info("API listening", "addr", ln.Addr().String(), "auth", len(a.key) > 0)
	go a.serve()
	return nil
}

// Close stops the API server.
func (a *Server) Close() {
	if a.ln != nil {
		_ = a.ln.Close()
	}
}

func (a *Server) serve() {
	for {
		c, err := a.ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) || strings.Contains(strings.ToLower(err.Error()), "use of closed network connection") {
				a.logger.Info("API server stopped")
				return
			}
			a.logger.Info("API accept error", "error", err)
			return
		}
		go a.handleConn(c)
	}
}

func (a *Server) writeError(w io.Writer, err error) {
	apiErr := WrapError(err)
	problemJSON, _ := json.Marshal(apiErr)
	a.raw.Log(false, problemJSON)
	fmt.Fprintf(w, "%s\n", string(problemJSON))
}

func (a *Server) writeOK(w io.Writer, rest string) {
	a.raw.Log(false, []byte(rest))
	if rest == "" {
		fmt.Fprintln(w)
	} else {
		fmt.Fprintf(w, "%s\n", rest)
	}
}

// secureConn runs the server side of the auth handshake when the peer leads
// with the handshake magic, returning a connection whose reads and writes go
// through the negotiated AEAD framing. Plaintext connections pass through
// untouched when no key is configured.
func (a *Server) secureConn(conn net.Conn, r *bufio.Reader, logger *slog.Logger) (net.Conn, *bufio.Reader, error) {
	isHandshake, err := auth.IsAuthHandshake(r)
	if err != nil {
		return nil, nil, fmt.Errorf("peek handshake: %w", err)
	}
	if !isHandshake {
		if len(a.key) > 0 {
			return nil, nil, apierror.ErrUnauthorized("authentication required")
		}
		return conn, r, nil
	}
	if len(a.key) == 0 {
		return nil, nil, apierror.ErrUnauthorized("authentication not enabled")
	}
	clientNonce, serverNonce, err := auth.HandleAuthHandshake(r, conn, a.key, false)
	if err != nil {
		return nil, nil, err
	}
	sessionKey := auth.DeriveSessionKey(a.key, serverNonce, clientNonce)
	sc, err := auth.WrapConn(conn, sessionKey)
	if err != nil {
		return nil, nil, fmt.Errorf("wrap connection: %w", err)
	}
	logger.Debug("api connection authenticated")
	return sc, bufio.NewReader(sc), nil
}

func (a *Server) handleConn(conn net.Conn) {
	defer conn.Close()

	connCtx, connCancel := context.WithCancel(context.Background())
	defer connCancel()

	connLogger := a.logger.With("remote", conn.RemoteAddr().String())
	r := bufio.NewReader(conn)

	secured, r, err := a.secureConn(conn, r, connLogger)
	if err != nil {
		connLogger.Error("api auth failed", "error", err)
		a.writeError(conn, err)
		return
	}
	w := secured

	if a.config.ConnectionTimeout > 0 {
		_ = conn.SetReadDeadline(time.Now().Add(a.config.ConnectionTimeout))
	}

	// Read until null terminator
	reqData, err := r.ReadString('\x00')
	if err != nil {
		if err == io.EOF {
			connLogger.Error("api incomplete request (no null terminator)")
		} else {
			connLogger.Error("read api data", "error", err)
		}
		return
	}
	// Remove null terminator
	reqData = strings.TrimSuffix(reqData, "\x00")
	a.raw.Log(true, []byte(reqData))

	if reqData == "" {
		connLogger.Error("api empty command")
		a.writeError(w, ErrBadRequest("empty request"))
		return
	}

	// Split on first whitespace character using regex \s
	wsRegex := regexp.MustCompile(`\s`)
	loc := wsRegex.FindStringIndex(reqData)

	var path, payload string
	if loc != nil {
		path = reqData[:loc[0]]
		payload = reqData[loc[1]:]
	} else {
		path = reqData
		payload = ""
	}

	if path == "" {
		connLogger.Error("api empty path")
		a.writeError(w, ErrBadRequest("empty path"))
		return
	}

	path = strings.ToLower(path)
	connLogger.Info("api cmd", "path", path)

	if h, params := a.router.Match(path); h != nil {
		req := &Request{Ctx: connCtx, Params: params, Payload: payload}
		res := &Response{}
		if err := h(req, res, connLogger); err != nil {
			connLogger.Error("api handler error", "path", path, "error", err)
			a.writeError(w, err)
			return
		}
		connLogger.Debug("api handler success", "path", path)
		a.writeOK(w, res.JSON)
		return
	} else if sh, params := a.router.MatchStream(path); sh != nil {
		connLogger.Info("api stream begin", "path", path)
		// Streams are long-lived; the request deadline no longer applies.
		_ = conn.SetReadDeadline(time.Time{})
		// Stream handler takes ownership of the (possibly wrapped) connection
		if err := sh(secured, params, connLogger); err != nil {
			connLogger.Error("api stream handler error", "path", path, "error", err)
		}
		connLogger.Info("api stream end", "path", path)
		return
	}
	connLogger.Error("api unknown path", "path", path)
	a.writeError(w, ErrNotFound(fmt.Sprintf("unknown path: %s", path)))
}
