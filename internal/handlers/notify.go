package handlers

import (
	"context"

	"github.com/netconfd/netconfd/internal/adapter"
	"github.com/netconfd/netconfd/internal/notify"
	"github.com/netconfd/netconfd/internal/proto"
	"github.com/netconfd/netconfd/internal/registry"
)

// NtfGetHistory implements MSG_NTF_GETHISTORY (§4.H): opens a transient
// subscription on the session's existing NETCONF connection and replays
// notifications in the [from, to] window (second offsets from now).
func (h *Handlers) NtfGetHistory(_ context.Context, req *proto.Request) *proto.Reply {
	return h.withSession(req.Session, func(rec *registry.Record, _ *adapter.Adapter) *proto.Reply {
		events, err := notify.Replay(rec.NC, h.cfg.Now(), req.NtfHistory.From, req.NtfHistory.To)
		if err != nil {
			return proto.NewError(err.Error())
		}
		if events == nil {
			events = []proto.NotificationEvent{}
		}
		reply := proto.NewOK()
		reply.Type = proto.ReplyData
		reply.Notifications = events
		return reply
	})
}
