// Package testing provides test utilities for the vcut module.
//
// It offers helpers for setting up test environments, particularly an
// embedded NATS server for exercising the NATS and JetStream edge sources
// without external infrastructure (similar to net/http/httptest).
//
// Key utilities:
//   - StartEmbeddedNATS: Single NATS server with JetStream
//   - CreateEdgeStream: JetStream stream for edge subjects
//   - NewTestLogger: Logger writing to testing.T
//
// Example usage:
//
//	import (
//	    "testing"
//	    vcuttest "github.com/arloliu/vcut/testing"
//	)
//
//	func TestMyComponent(t *testing.T) {
//	    _, nc := vcuttest.StartEmbeddedNATS(t)
//	    // Use nc for your tests
//	}
package testing
