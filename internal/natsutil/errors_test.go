package natsutil

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/vcut/types"
)

func TestIsConnectivityError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"closed connection", nats.ErrConnectionClosed, true},
		{"wrapped timeout", fmt.Errorf("next: %w", nats.ErrTimeout), true},
		{"refused", errors.New("dial tcp 127.0.0.1:4222: connect: connection refused"), true},
		{"sentinel", types.ErrSourceUnavailable, true},
		{"malformed", types.ErrMalformedEdge, false},
		{"context", context.Canceled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, IsConnectivityError(tt.err))
		})
	}
}

func TestWrapConnectivity(t *testing.T) {
	require.NoError(t, WrapConnectivity(nil))

	err := WrapConnectivity(nats.ErrConnectionClosed)
	require.ErrorIs(t, err, types.ErrSourceUnavailable)
	require.ErrorIs(t, err, nats.ErrConnectionClosed)

	require.Same(t, types.ErrMalformedEdge, WrapConnectivity(types.ErrMalformedEdge))
	require.Equal(t, types.ErrSourceUnavailable, WrapConnectivity(types.ErrSourceUnavailable))
}
