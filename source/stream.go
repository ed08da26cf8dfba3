package source

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/arloliu/vcut/internal/natsutil"
	"github.com/arloliu/vcut/types"
)

// streamBuffer is the number of delivered messages held ahead of Next.
const streamBuffer = 256

// Stream implements an edge source over a JetStream stream.
//
// Unlike NATS, the edges are persisted by the server, so a Stream replays the
// whole edge list from the first stored message regardless of when it was
// published. Messages are read through an ordered consumer and use the same
// encoding and end-of-stream marker as the NATS source.
type Stream struct {
	cc     jetstream.ConsumeContext
	msgs   chan jetstream.Msg
	stop   chan struct{}
	once   sync.Once
	logger types.Logger

	mu   sync.Mutex
	done bool
}

var _ types.EdgeSource = (*Stream)(nil)

// NewStream starts an ordered consumer on stream, filtered to subject.
//
// Parameters:
//   - ctx: Context for consumer creation
//   - js: JetStream client
//   - stream: Stream name
//   - subject: Edge subject within the stream
//   - opts: Optional configuration (WithSourceLogger)
//
// Returns:
//   - *Stream: Consuming source (Close it to stop the consumer)
//   - error: Consumer creation error
//
// Example:
//
//	js, _ := jetstream.New(nc)
//	src, err := source.NewStream(ctx, js, "EDGES", "graph.edges")
//	if err != nil { /* handle */ }
//	defer src.Close()
func NewStream(ctx context.Context, js jetstream.JetStream, stream, subject string, opts ...NATSOption) (*Stream, error) {
	o := applyNATSOptions(opts)

	cons, err := js.OrderedConsumer(ctx, stream, jetstream.OrderedConsumerConfig{
		FilterSubjects: []string{subject},
		DeliverPolicy:  jetstream.DeliverAllPolicy,
	})
	if err != nil {
		return nil, fmt.Errorf("create ordered consumer on %q: %w", stream, natsutil.WrapConnectivity(err))
	}

	s := &Stream{
		msgs:   make(chan jetstream.Msg, streamBuffer),
		stop:   make(chan struct{}),
		logger: o.logger,
	}

	cc, err := cons.Consume(func(msg jetstream.Msg) {
		select {
		case s.msgs <- msg:
		case <-s.stop:
		}
	}, jetstream.ConsumeErrHandler(func(_ jetstream.ConsumeContext, err error) {
		if natsutil.IsConnectivityError(err) {
			o.logger.Warn("edge stream lost connectivity", "stream", stream, "error", err)
			return
		}
		o.logger.Debug("edge stream consume error", "stream", stream, "error", err)
	}))
	if err != nil {
		return nil, fmt.Errorf("consume %q: %w", stream, err)
	}
	s.cc = cc

	o.logger.Debug("consuming edge stream", "stream", stream, "subject", subject)

	return s, nil
}

// Next waits for the next stored edge.
//
// Returns:
//   - types.Edge: Decoded edge
//   - error: io.EOF after the end-of-stream marker or Close,
//     types.ErrMalformedEdge for an undecodable payload, or a context error
func (s *Stream) Next(ctx context.Context) (types.Edge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.done {
		return types.Edge{}, io.EOF
	}

	select {
	case <-ctx.Done():
		return types.Edge{}, ctx.Err()
	case <-s.stop:
		s.done = true

		return types.Edge{}, io.EOF
	case msg := <-s.msgs:
		e, eos, err := decodeMsg(msg.Headers(), msg.Data())
		if eos {
			s.done = true
			s.logger.Debug("edge stream ended", "subject", msg.Subject())

			return types.Edge{}, io.EOF
		}

		return e, err
	}
}

// Close stops the consumer.
func (s *Stream) Close() error {
	s.once.Do(func() {
		close(s.stop)
		s.cc.Stop()
	})

	return nil
}
