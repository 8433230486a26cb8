// Package adapter implements the NETCONF adapter (component C): a thin
// wrapper around github.com/damianoneill/net/v2/netconf/ops.OpSession
// (itself built on that module's netconf/client) that builds RPCs, executes
// them, and classifies the outcome into the OK/DATA/ERROR shape the wire
// protocol needs.
//
// Because ops.OpSession.Execute / client.Session.Execute already return
// (*common.RPCReply, error) synchronously to the calling goroutine, there is
// no process-global error slot here: each call's error belongs to that
// call's stack, which is the structural resolution of §9's "global
// error-reply slot" design note.
package adapter

import (
	"github.com/damianoneill/net/v2/netconf/common"
	"github.com/damianoneill/net/v2/netconf/ops"
)

// Adapter wraps a live NETCONF session and exposes the broker's RPC surface
// over it.
type Adapter struct {
	Session ops.OpSession
}

// New wraps an established ops.OpSession.
func New(s ops.OpSession) *Adapter {
	return &Adapter{Session: s}
}

// SendRecv executes req on the wrapped session and returns its reply. It is
// the caller's responsibility to hold the owning registry.Record's lock for
// the duration of this call, per the §4.D/§5 locking discipline.
func (a *Adapter) SendRecv(req common.Request) (*common.RPCReply, error) {
	return a.Session.Execute(req)
}

// Close tears down the underlying NETCONF session.
func (a *Adapter) Close() {
	a.Session.Close()
}
