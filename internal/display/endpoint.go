package display

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// DisplayEnv names the environment variable carrying the target
// protocol endpoint.
const DisplayEnv = "DISPLAY"

// x11BasePort is the TCP port of display number zero.
const x11BasePort = 6000

// Endpoint is a resolved server address.
type Endpoint struct {
	Network string // "unix" or "tcp"
	Address string
	Raw     string // the spec the endpoint was resolved from
}

// String returns the dialable form of the endpoint.
func (e Endpoint) String() string {
	return e.Network + "://" + e.Address
}

// EndpointFromEnv resolves the endpoint named by $DISPLAY.
func EndpointFromEnv() (Endpoint, error) {
	return ResolveEndpoint(os.Getenv(DisplayEnv))
}

// ResolveEndpoint parses a display spec into a dialable endpoint.
// Accepted forms:
//
//	unix:/path/to/socket   explicit unix socket
//	:N[.S]                 local display N, unix socket /tmp/.X11-unix/XN
//	host:N[.S]             remote display N, tcp host:6000+N
//
// The screen suffix is accepted and ignored; screens are out of scope
// for the session layer.
func ResolveEndpoint(spec string) (Endpoint, error) {
	if spec == "" {
		return Endpoint{}, ErrNoDisplay
	}

	if path, ok := strings.CutPrefix(spec, "unix:"); ok {
		if path == "" {
			return Endpoint{}, fmt.Errorf("display: empty socket path in %q: %w", spec, ErrNoDisplay)
		}
		return Endpoint{Network: "unix", Address: path, Raw: spec}, nil
	}

	host, display, ok := strings.Cut(spec, ":")
	if !ok {
		return Endpoint{}, fmt.Errorf("display: malformed spec %q: %w", spec, ErrNoDisplay)
	}

	// Drop the ".screen" suffix if present.
	if num, _, found := strings.Cut(display, "."); found {
		display = num
	}
	n, err := strconv.Atoi(display)
	if err != nil || n < 0 {
		return Endpoint{}, fmt.Errorf("display: bad display number in %q: %w", spec, ErrNoDisplay)
	}

	if host == "" {
		return Endpoint{
			Network: "unix",
			Address: fmt.Sprintf("/tmp/.X11-unix/X%d", n),
			Raw:     spec,
		}, nil
	}
	return Endpoint{
		Network: "tcp",
		Address: fmt.Sprintf("%s:%d", host, x11BasePort+n),
		Raw:     spec,
	}, nil
}
