// Package broker implements components F and G: the connection dispatch
// loop and the broker process itself. Grounded on netconf/server/ssh.Server's
// NewServer/acceptConnections idiom (listen, spawn an accept loop goroutine,
// one goroutine per accepted connection), generalized from a TCP/SSH listener
// to a UNIX domain socket carrying the broker's own framed JSON protocol.
package broker

import (
	"context"
	"net"
	"os"
	"sync"

	"github.com/netconfd/netconfd/internal/handlers"
	"github.com/netconfd/netconfd/internal/trace"
)

// Broker owns the UNIX listener and the set of live per-connection workers.
type Broker struct {
	listener net.Listener
	handlers *handlers.Handlers
	trace    *trace.BrokerTrace

	wg sync.WaitGroup

	mu      sync.Mutex
	closing bool
}

// New binds socketPath, removing any stale socket file left behind by a
// prior, uncleanly terminated run (matching the reference daemon's own
// startup behavior of unlinking before bind).
func New(ctx context.Context, socketPath string, h *handlers.Handlers) (*Broker, error) {
	if err := removeStaleSocket(socketPath); err != nil {
		return nil, err
	}

	l, err := net.Listen("unix", socketPath)
	if err != nil {
		return nil, err
	}

	b := &Broker{listener: l, handlers: h, trace: trace.ContextTrace(ctx)}
	go b.acceptConnections(ctx)
	return b, nil
}

func removeStaleSocket(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return os.Remove(path)
}

// Addr returns the bound socket path.
func (b *Broker) Addr() string {
	return b.listener.Addr().String()
}

func (b *Broker) acceptConnections(ctx context.Context) {
	for {
		conn, err := b.listener.Accept()
		if err != nil {
			b.mu.Lock()
			closing := b.closing
			b.mu.Unlock()
			if !closing {
				b.trace.Error("accept", b.Addr(), err)
			}
			return
		}
		b.trace.ConnectionAccepted(conn.RemoteAddr().String())

		b.wg.Add(1)
		go func() {
			defer b.wg.Done()
			runWorker(ctx, conn, b.handlers, b.trace)
		}()
	}
}

// Close stops accepting new connections and waits (up to the caller's
// context deadline, if any) for in-flight workers to finish.
func (b *Broker) Close(ctx context.Context) {
	b.mu.Lock()
	b.closing = true
	b.mu.Unlock()

	_ = b.listener.Close()

	done := make(chan struct{})
	go func() {
		b.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
	}
}
