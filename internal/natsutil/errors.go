package natsutil

import (
	"errors"
	"strings"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/arloliu/vcut/types"
)

// IsConnectivityError checks if an error is caused by connectivity issues.
//
// This includes NATS timeouts, connection refused, disconnections, etc.
// Edge sources use it to report a lost server as types.ErrSourceUnavailable.
//
// Kept in internal/natsutil to avoid importing NATS dependencies in types/ package.
//
// Parameters:
//   - err: Error to check
//
// Returns:
//   - bool: true if error indicates connectivity issue
func IsConnectivityError(err error) bool {
	if err == nil {
		return false
	}

	return errors.Is(err, types.ErrSourceUnavailable) ||
		errors.Is(err, nats.ErrTimeout) ||
		errors.Is(err, nats.ErrNoServers) ||
		errors.Is(err, nats.ErrDisconnected) ||
		errors.Is(err, nats.ErrConnectionClosed) ||
		errors.Is(err, nats.ErrBadSubscription) ||
		errors.Is(err, jetstream.ErrNoStreamResponse) ||
		strings.Contains(err.Error(), "connection refused") ||
		strings.Contains(err.Error(), "i/o timeout")
}

// WrapConnectivity marks connectivity errors with types.ErrSourceUnavailable
// and returns every other error unchanged.
//
// Parameters:
//   - err: Error returned by a NATS call
//
// Returns:
//   - error: err, wrapped when it is a connectivity error
func WrapConnectivity(err error) error {
	if err == nil || errors.Is(err, types.ErrSourceUnavailable) || !IsConnectivityError(err) {
		return err
	}

	return errors.Join(types.ErrSourceUnavailable, err)
}
