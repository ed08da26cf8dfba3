// Command vcut partitions edge streams into vertex-cut partitions.
//
// Usage:
//
//	vcut partition graph.txt --partitions 16 --lambda 1.1
//	vcut partition --nats-url nats://localhost:4222 --subject graph.edges
//	vcut generate --nodes 100000 --degree 8 -o graph.txt
//	vcut publish graph.txt --nats-url nats://localhost:4222 --subject graph.edges
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
