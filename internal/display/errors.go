package display

import (
	"errors"
	"fmt"
)

var (
	// ErrNoDisplay indicates the target endpoint could not be resolved
	// from the environment or configuration.
	ErrNoDisplay = errors.New("display: no display endpoint set")

	// ErrAlreadyOpen is returned by Open on a session that is already open.
	ErrAlreadyOpen = errors.New("display: session already open")

	// ErrReopen is returned by Open on a session that was closed. Closed
	// is terminal; a new process gets a new session.
	ErrReopen = errors.New("display: closed session cannot be reopened")

	// ErrSessionClosed is returned by any operation on a closed session.
	ErrSessionClosed = errors.New("display: session is closed")

	// ErrSessionLimit is returned when a second session would be open at
	// the same time. Exactly one open session exists per process.
	ErrSessionLimit = errors.New("display: another session is already open in this process")
)

// ConnectionError wraps a failure to obtain a server handle. By
// convention the top-level driver treats it as fatal at startup; the
// session itself never exits the process.
type ConnectionError struct {
	Endpoint string
	Err      error
}

func (e *ConnectionError) Error() string {
	if e.Endpoint == "" {
		return fmt.Sprintf("display: connection failed: %v", e.Err)
	}
	return fmt.Sprintf("display: connection to %s failed: %v", e.Endpoint, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// ProtocolError carries one server-reported error code with its
// resolved text. It is constructed per delivery, logged by the
// interceptor, and never propagated as a process fault.
type ProtocolError struct {
	Code int
	Text string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("display: protocol error %d: %s", e.Code, e.Text)
}
