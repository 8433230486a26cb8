// Package trace provides a context-scoped logging hook struct for the
// broker, in the same style as netconf/client's ClientTrace: a struct of
// optional func fields, installed into a context.Context, defaulted against
// a no-op set via mergo so callers never need a nil check.
package trace

import (
	"context"
	"log"
	"time"

	"github.com/imdario/mergo"
)

type brokerEventContextKey struct{}

// BrokerTrace defines hooks for the broker's lifecycle events.
type BrokerTrace struct {
	// ConnectionAccepted is called when a client connects to the local socket.
	ConnectionAccepted func(remote string)

	// ConnectionClosed is called when a client's worker exits.
	ConnectionClosed func(remote string, err error)

	// FrameDecodeFailed is called when a malformed frame is read from a client.
	FrameDecodeFailed func(remote string, err error)

	// RequestDispatched is called after a handler returns a reply.
	RequestDispatched func(msgType string, session string, d time.Duration)

	// SessionEstablished is called when a CONNECT succeeds.
	SessionEstablished func(key string, host string)

	// SessionClosed is called when a session is torn down, by whatever cause.
	SessionClosed func(key string, reason string)

	// SweepRan is called after each idle-sweep pass.
	SweepRan func(removed int)

	// SignalReceived is called when the process receives a termination signal.
	SignalReceived func(sig string)

	// Error is called after any error condition worth logging.
	Error func(context, detail string, err error)
}

// ContextTrace returns the BrokerTrace associated with ctx, defaulted
// against NoOpLoggingHooks so every hook is always callable.
func ContextTrace(ctx context.Context) *BrokerTrace {
	t, _ := ctx.Value(brokerEventContextKey{}).(*BrokerTrace)
	if t == nil {
		t = NoOpLoggingHooks
	} else {
		_ = mergo.Merge(t, NoOpLoggingHooks)
	}
	return t
}

// WithTrace returns a new context carrying the supplied trace hooks.
func WithTrace(ctx context.Context, t *BrokerTrace) context.Context {
	return context.WithValue(ctx, brokerEventContextKey{}, t)
}

// DefaultLoggingHooks logs only errors, using the standard log package.
var DefaultLoggingHooks = &BrokerTrace{
	Error: func(context, detail string, err error) {
		log.Printf("netconfd: %s %s err:%v\n", context, detail, err)
	},
}

// DiagnosticLoggingHooks logs every lifecycle event; useful when tracking
// down a misbehaving client or device.
var DiagnosticLoggingHooks = &BrokerTrace{
	ConnectionAccepted: func(remote string) {
		log.Printf("netconfd: connection accepted remote:%s\n", remote)
	},
	ConnectionClosed: func(remote string, err error) {
		log.Printf("netconfd: connection closed remote:%s err:%v\n", remote, err)
	},
	FrameDecodeFailed: func(remote string, err error) {
		log.Printf("netconfd: frame decode failed remote:%s err:%v\n", remote, err)
	},
	RequestDispatched: func(msgType string, session string, d time.Duration) {
		log.Printf("netconfd: dispatched %s session:%s took:%dms\n", msgType, session, d.Milliseconds())
	},
	SessionEstablished: func(key string, host string) {
		log.Printf("netconfd: session established key:%s host:%s\n", key, host)
	},
	SessionClosed: func(key string, reason string) {
		log.Printf("netconfd: session closed key:%s reason:%s\n", key, reason)
	},
	SweepRan: func(removed int) {
		log.Printf("netconfd: idle sweep removed:%d\n", removed)
	},
	SignalReceived: func(sig string) {
		log.Printf("netconfd: signal received:%s\n", sig)
	},
	Error: DefaultLoggingHooks.Error,
}

// NoOpLoggingHooks does nothing; it is the base every trace is merged
// against so hook fields are never nil.
var NoOpLoggingHooks = &BrokerTrace{
	ConnectionAccepted: func(remote string) {},
	ConnectionClosed:   func(remote string, err error) {},
	FrameDecodeFailed:  func(remote string, err error) {},
	RequestDispatched:  func(msgType string, session string, d time.Duration) {},
	SessionEstablished: func(key string, host string) {},
	SessionClosed:      func(key string, reason string) {},
	SweepRan:           func(removed int) {},
	SignalReceived:     func(sig string) {},
	Error:              func(context, detail string, err error) {},
}
