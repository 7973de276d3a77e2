package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveEndpoint(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		network string
		address string
		wantErr bool
	}{
		{name: "empty spec", spec: "", wantErr: true},
		{name: "explicit unix socket", spec: "unix:/run/display/sock", network: "unix", address: "/run/display/sock"},
		{name: "empty unix path", spec: "unix:", wantErr: true},
		{name: "local display zero", spec: ":0", network: "unix", address: "/tmp/.X11-unix/X0"},
		{name: "local display with screen", spec: ":2.1", network: "unix", address: "/tmp/.X11-unix/X2"},
		{name: "remote display", spec: "wm-host:1", network: "tcp", address: "wm-host:6001"},
		{name: "remote display with screen", spec: "wm-host:0.0", network: "tcp", address: "wm-host:6000"},
		{name: "no separator", spec: "garbage", wantErr: true},
		{name: "non-numeric display", spec: ":abc", wantErr: true},
		{name: "negative display", spec: ":-1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ep, err := ResolveEndpoint(tt.spec)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrNoDisplay)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.network, ep.Network)
			assert.Equal(t, tt.address, ep.Address)
			assert.Equal(t, tt.spec, ep.Raw)
		})
	}
}

func TestEndpointFromEnv(t *testing.T) {
	t.Run("resolves from DISPLAY", func(t *testing.T) {
		t.Setenv(DisplayEnv, ":3")

		ep, err := EndpointFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "unix", ep.Network)
		assert.Equal(t, "/tmp/.X11-unix/X3", ep.Address)
	})

	t.Run("unset DISPLAY fails", func(t *testing.T) {
		t.Setenv(DisplayEnv, "")

		_, err := EndpointFromEnv()
		assert.ErrorIs(t, err, ErrNoDisplay)
	})
}

func TestEndpointString(t *testing.T) {
	ep := Endpoint{Network: "unix", Address: "/tmp/.X11-unix/X0", Raw: ":0"}
	assert.Equal(t, "unix:///tmp/.X11-unix/X0", ep.String())
}
