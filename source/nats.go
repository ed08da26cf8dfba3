package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/nats-io/nats.go"

	"github.com/arloliu/vcut/internal/logger"
	"github.com/arloliu/vcut/internal/natsutil"
	"github.com/arloliu/vcut/types"
)

// NATS implements an edge source over a core NATS subject.
//
// Every message carries one edge as a "u v" payload. A message with the
// EndOfStreamHeader header ends the stream. Core NATS has no replay, so the
// subscription must exist before the producer starts publishing.
type NATS struct {
	mu     sync.Mutex
	sub    *nats.Subscription
	logger types.Logger
	done   bool
}

var _ types.EdgeSource = (*NATS)(nil)

// NATSOption configures a NATS or Stream source.
type NATSOption func(*natsOptions)

type natsOptions struct {
	logger types.Logger
	queue  string
}

// WithSourceLogger sets the logger of a NATS or Stream source.
//
// Parameters:
//   - l: Logger implementation
//
// Returns:
//   - NATSOption: Configuration option
func WithSourceLogger(l types.Logger) NATSOption {
	return func(o *natsOptions) {
		o.logger = l
	}
}

// WithQueueGroup makes a NATS source join a queue group, so that several
// partitioner processes share one edge subject.
//
// Parameters:
//   - queue: Queue group name
//
// Returns:
//   - NATSOption: Configuration option
func WithQueueGroup(queue string) NATSOption {
	return func(o *natsOptions) {
		o.queue = queue
	}
}

func applyNATSOptions(opts []NATSOption) natsOptions {
	o := natsOptions{logger: logger.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logger.NewNop()
	}

	return o
}

// NewNATS subscribes to subject and returns an edge source over it.
//
// Parameters:
//   - nc: Connected NATS client
//   - subject: Edge subject
//   - opts: Optional configuration (WithSourceLogger, WithQueueGroup)
//
// Returns:
//   - *NATS: Subscribed source (Close it to unsubscribe)
//   - error: Subscription error
//
// Example:
//
//	src, err := source.NewNATS(nc, "graph.edges")
//	if err != nil { /* handle */ }
//	defer src.Close()
//	report, err := p.Run(ctx, src)
func NewNATS(nc *nats.Conn, subject string, opts ...NATSOption) (*NATS, error) {
	if nc == nil {
		return nil, errors.New("nats connection is nil")
	}
	o := applyNATSOptions(opts)

	var (
		sub *nats.Subscription
		err error
	)
	if o.queue != "" {
		sub, err = nc.QueueSubscribeSync(subject, o.queue)
	} else {
		sub, err = nc.SubscribeSync(subject)
	}
	if err != nil {
		return nil, fmt.Errorf("subscribe %q: %w", subject, err)
	}

	o.logger.Debug("subscribed to edge subject", "subject", subject, "queue", o.queue)

	return &NATS{sub: sub, logger: o.logger}, nil
}

// Next waits for the next edge message.
//
// Returns:
//   - types.Edge: Decoded edge
//   - error: io.EOF after the end-of-stream marker, types.ErrMalformedEdge
//     for an undecodable payload, types.ErrSourceUnavailable when the
//     connection is gone, or a context/subscription error
func (n *NATS) Next(ctx context.Context) (types.Edge, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.done {
		return types.Edge{}, io.EOF
	}

	msg, err := n.sub.NextMsgWithContext(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return types.Edge{}, ctxErr
		}

		return types.Edge{}, natsutil.WrapConnectivity(err)
	}

	e, eos, err := decodeMsg(msg.Header, msg.Data)
	if eos {
		n.done = true
		n.logger.Debug("edge stream ended", "subject", n.sub.Subject)

		return types.Edge{}, io.EOF
	}

	return e, err
}

// Close unsubscribes from the edge subject.
func (n *NATS) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if !n.sub.IsValid() {
		return nil
	}

	return n.sub.Unsubscribe()
}

// PublishEdges publishes edges on subject, followed by the end-of-stream marker.
//
// The connection is flushed before returning so that every edge has reached
// the server.
//
// Parameters:
//   - nc: Connected NATS client
//   - subject: Edge subject
//   - edges: Edges to publish
//
// Returns:
//   - error: Publish or flush error
func PublishEdges(nc *nats.Conn, subject string, edges []types.Edge) error {
	for _, e := range edges {
		if err := nc.Publish(subject, []byte(FormatEdge(e))); err != nil {
			return fmt.Errorf("publish edge %s: %w", e, err)
		}
	}

	if err := nc.PublishMsg(EndOfStreamMsg(subject)); err != nil {
		return fmt.Errorf("publish end of stream: %w", err)
	}

	return nc.Flush()
}

// EndOfStreamMsg builds the message that terminates an edge stream on subject.
func EndOfStreamMsg(subject string) *nats.Msg {
	msg := nats.NewMsg(subject)
	msg.Header.Set(EndOfStreamHeader, "true")

	return msg
}

// decodeMsg decodes an edge message; eos reports the end-of-stream marker.
func decodeMsg(header nats.Header, data []byte) (types.Edge, bool, error) {
	if header.Get(EndOfStreamHeader) != "" {
		return types.Edge{}, true, nil
	}

	e, err := ParseEdge(string(data))

	return e, false, err
}
