package handlers

import (
	"github.com/netconfd/netconfd/internal/proto"
)

// Disconnect implements MSG_DISCONNECT: removes the record from the
// registry and tears it down. Idempotent modulo error per §8: the first
// call returns OK, a second returns "Invalid session identifier".
func (h *Handlers) Disconnect(req *proto.Request) *proto.Reply {
	rec := h.cfg.Registry.Remove(req.Session)
	if rec == nil {
		return proto.NewError(unknownSessionMessage)
	}

	rec.Lock.Lock()
	defer rec.Lock.Unlock()
	rec.Closed = true
	rec.NC.Close()

	return proto.NewOK()
}

// Info implements MSG_INFO: returns the cached hello object.
func (h *Handlers) Info(req *proto.Request) *proto.Reply {
	rec, errReply := h.lookup(req.Session)
	if errReply != nil {
		return errReply
	}

	rec.Lock.Lock()
	defer rec.Lock.Unlock()

	if rec.Closed || rec.Hello == nil {
		return proto.NewError(unknownSessionMessage)
	}

	reply := proto.NewOK()
	reply.Type = proto.ReplyData
	reply.Hello = &proto.Hello{
		SID:          rec.Hello.SID,
		Version:      rec.Hello.Version,
		Host:         rec.Hello.Host,
		Port:         rec.Hello.Port,
		User:         rec.Hello.User,
		Capabilities: rec.Hello.Capabilities,
	}
	return reply
}

// ReloadHello implements MSG_RELOADHELLO: re-derives the cached hello from
// the session's current identity and replaces it, freeing the prior value
// per the spec's "Hello replacement" resolution (here: simply dropping the
// last reference, which Go's GC then reclaims).
func (h *Handlers) ReloadHello(req *proto.Request) *proto.Reply {
	rec, errReply := h.lookup(req.Session)
	if errReply != nil {
		return errReply
	}

	rec.Lock.Lock()
	defer rec.Lock.Unlock()

	if rec.Closed || rec.Hello == nil {
		return proto.NewError(unknownSessionMessage)
	}

	prior := rec.Hello
	rec.Hello = buildHello(rec.NC, prior.Host, prior.Port, prior.User)
	rec.Touch()
	return proto.NewOK()
}
