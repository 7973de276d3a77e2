// Package display owns the connection to the windowing protocol server:
// session lifecycle, debug/synchronous mode, and the interception of
// server-reported protocol errors. The protocol itself belongs to the
// server; this package only opens and closes the handle and forwards
// error codes with resolved text.
package display

import (
	"context"
	"net"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/khardy/RWind/internal/diag"
)

// HandlerStatus is the value an error handler returns to the delivery
// path. Handlers must always return HandlerContinue; anything else
// causes the connection to be force-closed.
type HandlerStatus int

const (
	HandlerContinue HandlerStatus = iota
	HandlerStop
)

// ErrorReport is the transient record handed to the error handler for
// one server-reported error. It is constructed per delivery and never
// persisted. Message is filled in by the handler once it has resolved
// the code to text.
type ErrorReport struct {
	Session *Session
	Code    int
	Message string
}

// ErrorHandler is the callable installed into the session. It runs
// synchronously inside the protocol-error delivery path, must not
// panic, must return promptly, and must not issue new protocol
// requests while it runs.
type ErrorHandler func(*ErrorReport) HandlerStatus

// SessionState tracks the Unopened -> Open -> Closed lifecycle.
// Closed is terminal.
type SessionState int

const (
	StateUnopened SessionState = iota
	StateOpen
	StateClosed
)

func (s SessionState) String() string {
	switch s {
	case StateUnopened:
		return "unopened"
	case StateOpen:
		return "open"
	case StateClosed:
		return "closed"
	default:
		return "invalid"
	}
}

// openSessions enforces the process-wide single-open-session invariant
// as an explicit runtime check. Lifecycle operations on one session are
// otherwise unsynchronized; the caller serializes them.
var openSessions atomic.Int32

// DialFunc dials the protocol server. Tests substitute it.
type DialFunc func(ctx context.Context, network, address string) (net.Conn, error)

// Session owns the handle to the protocol server connection.
type Session struct {
	id          string
	conn        net.Conn
	state       SessionState
	debug       bool
	synchronous bool
	handler     ErrorHandler
	endpoint    *Endpoint
	dial        DialFunc
	sink        *diag.Sink
}

// SessionOption configures a Session at construction.
type SessionOption func(*Session)

// WithEndpoint pins the session to a resolved endpoint instead of
// consulting $DISPLAY at Open.
func WithEndpoint(ep Endpoint) SessionOption {
	return func(s *Session) {
		s.endpoint = &ep
	}
}

// WithDialer substitutes the dial function, used by tests.
func WithDialer(dial DialFunc) SessionOption {
	return func(s *Session) {
		s.dial = dial
	}
}

// NewSession builds an unopened session bound to the given diagnostic
// sink. The sink is injected so sessions stay independently
// constructible; nothing here touches ambient logging state.
func NewSession(sink *diag.Sink, opts ...SessionOption) *Session {
	s := &Session{
		id:   uuid.NewString(),
		sink: sink,
		dial: func(ctx context.Context, network, address string) (net.Conn, error) {
			var d net.Dialer
			return d.DialContext(ctx, network, address)
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open resolves the target endpoint and connects to the server. It
// succeeds at most once per session: Open on an open session returns
// ErrAlreadyOpen, on a closed session ErrReopen. A resolution or dial
// failure is returned as *ConnectionError; the top-level driver treats
// that as fatal at startup by convention, the session itself never
// exits the process.
func (s *Session) Open(ctx context.Context) error {
	switch s.state {
	case StateOpen:
		return ErrAlreadyOpen
	case StateClosed:
		return ErrReopen
	}

	ep := s.endpoint
	if ep == nil {
		resolved, err := EndpointFromEnv()
		if err != nil {
			return &ConnectionError{Err: err}
		}
		ep = &resolved
	}

	if !openSessions.CompareAndSwap(0, 1) {
		return ErrSessionLimit
	}

	conn, err := s.dial(ctx, ep.Network, ep.Address)
	if err != nil {
		openSessions.Store(0)
		return &ConnectionError{Endpoint: ep.String(), Err: err}
	}

	s.conn = conn
	s.endpoint = ep
	s.state = StateOpen
	s.sink.Debugf("session %s open on %s", s.id, ep)
	return nil
}

// Configure overwrites the debug mode flag. Idempotent: the most
// recent call wins regardless of count or order. Debug mode switches
// the connection to synchronous request/acknowledge semantics, trading
// throughput for deterministic error attribution.
func (s *Session) Configure(debug bool) error {
	if s.state == StateClosed {
		return ErrSessionClosed
	}
	s.debug = debug
	s.synchronous = debug
	s.sink.Debugf("session %s configured: debug=%t synchronous=%t", s.id, s.debug, s.synchronous)
	return nil
}

// InstallErrorHandler registers the callable invoked by the
// protocol-error delivery path for every reported error. The handler
// contract: no panics, prompt return, and always HandlerContinue.
func (s *Session) InstallErrorHandler(h ErrorHandler) error {
	if s.state == StateClosed {
		return ErrSessionClosed
	}
	s.handler = h
	return nil
}

// DeliverError is the connection's protocol-error delivery path. It
// constructs a transient report, invokes the installed handler
// synchronously, and force-closes the connection if the handler
// returns anything but HandlerContinue, mirroring the server library
// this path stands in for. Reports on sessions without a handler are
// dropped.
func (s *Session) DeliverError(code int) HandlerStatus {
	if s.state != StateOpen || s.handler == nil {
		return HandlerContinue
	}

	report := &ErrorReport{Session: s, Code: code}
	status := s.handler(report)
	if status != HandlerContinue {
		s.sink.Errorf("session %s: handler returned %d for code %d, force-closing", s.id, status, code)
		s.forceClose()
	}
	return status
}

// Close releases the handle and moves the session to its terminal
// state. Closing twice is a precondition violation by the caller;
// operations on a closed session report ErrSessionClosed.
func (s *Session) Close() error {
	if s.state == StateClosed {
		return ErrSessionClosed
	}
	if s.state != StateOpen {
		s.state = StateClosed
		return nil
	}
	s.forceClose()
	return nil
}

func (s *Session) forceClose() {
	if s.conn != nil {
		_ = s.conn.Close()
		s.conn = nil
	}
	s.state = StateClosed
	openSessions.Store(0)
	s.sink.Debugf("session %s closed", s.id)
}

// ID returns the session correlation id used in diagnostics.
func (s *Session) ID() string { return s.id }

// State returns the current lifecycle state.
func (s *Session) State() SessionState { return s.state }

// Debug reports whether debug mode is in effect.
func (s *Session) Debug() bool { return s.debug }

// Synchronous reports whether the connection runs request/acknowledge
// semantics. Request layers consult this before issuing work.
func (s *Session) Synchronous() bool { return s.synchronous }

// Endpoint returns the resolved endpoint once the session has opened.
func (s *Session) Endpoint() *Endpoint { return s.endpoint }
