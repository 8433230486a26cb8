package handlers

import (
	"github.com/netconfd/netconfd/internal/adapter"
	"github.com/netconfd/netconfd/internal/proto"
	"github.com/netconfd/netconfd/internal/registry"
)

// Get implements MSG_GET.
func (h *Handlers) Get(req *proto.Request) *proto.Reply {
	return h.execute(req.Session, adapter.BuildGet(req.Get.Filter))
}

// GetConfig implements MSG_GETCONFIG: requires a valid source datastore.
func (h *Handlers) GetConfig(req *proto.Request) *proto.Reply {
	if _, err := proto.ParseDatastore(req.GetConfig.Source); err != nil {
		return proto.NewError("Invalid source repository type requested.")
	}
	return h.execute(req.Session, adapter.BuildGetConfig(req.GetConfig.Source, req.GetConfig.Filter))
}

// GetSchema implements MSG_GETSCHEMA: requires identifier.
func (h *Handlers) GetSchema(req *proto.Request) *proto.Reply {
	if req.GetSchema.Identifier == "" {
		return proto.NewError("Missing schema identifier.")
	}
	return h.execute(req.Session, adapter.BuildGetSchema(req.GetSchema.Identifier, req.GetSchema.Version, req.GetSchema.Format))
}

// Generic implements MSG_GENERIC: the content is an already-formed RPC body.
func (h *Handlers) Generic(req *proto.Request) *proto.Reply {
	if req.Generic.Content == "" {
		return proto.NewError("Missing generic RPC content.")
	}
	return h.execute(req.Session, adapter.BuildGeneric(req.Generic.Content))
}

// EditConfig implements MSG_EDITCONFIG.
func (h *Handlers) EditConfig(req *proto.Request) *proto.Reply {
	f := req.EditConfig
	if f.Target == "" || f.Config == "" {
		return proto.NewError("Missing target or config parameter.")
	}
	if _, err := proto.ParseDatastore(f.Target); err != nil {
		return proto.NewError("Invalid target repository type requested.")
	}
	if f.DefaultOperation != "" {
		switch f.DefaultOperation {
		case "merge", "replace", "none":
		default:
			return proto.NewError("Invalid default-operation parameter.")
		}
	}
	if f.ErrorOption != "" {
		switch f.ErrorOption {
		case "continue-on-error", "stop-on-error", "rollback-on-error":
		default:
			return proto.NewError("Invalid error-option parameter.")
		}
	}
	return h.execute(req.Session, adapter.BuildEditConfig(f.Target, f.Config, f.DefaultOperation, f.ErrorOption))
}

// CopyConfig implements MSG_COPYCONFIG: requires target; source may be a
// named datastore, a URL (when the source datastore is "url"), or omitted
// in favor of inline Config.
func (h *Handlers) CopyConfig(req *proto.Request) *proto.Reply {
	f := req.CopyConfig
	if f.Target == "" {
		return proto.NewError("Missing target parameter.")
	}
	if _, err := proto.ParseDatastore(f.Target); err != nil {
		return proto.NewError("Invalid target repository type requested.")
	}
	if f.Source != "" {
		if _, err := proto.ParseDatastore(f.Source); err != nil {
			return proto.NewError("Invalid source repository type requested.")
		}
	}
	return h.execute(req.Session, adapter.BuildCopyConfig(f.Source, f.Target, f.Config, f.SourceURL, f.TargetURL))
}

// DeleteConfig implements MSG_DELETECONFIG: requires a valid target,
// permitting url-addressed targets.
func (h *Handlers) DeleteConfig(req *proto.Request) *proto.Reply {
	f := req.DeleteConfig
	if _, err := proto.ParseDatastore(f.Target); err != nil {
		return proto.NewError("Invalid target repository type requested.")
	}
	return h.execute(req.Session, adapter.BuildDeleteConfig(f.Target, f.URL))
}

// Lock implements MSG_LOCK: requires a valid target.
func (h *Handlers) Lock(req *proto.Request) *proto.Reply {
	if _, err := proto.ParseDatastore(req.Lock.Target); err != nil {
		return proto.NewError("Invalid target repository type requested.")
	}
	return h.execute(req.Session, adapter.BuildLock(req.Lock.Target))
}

// Unlock implements MSG_UNLOCK: requires a valid target.
func (h *Handlers) Unlock(req *proto.Request) *proto.Reply {
	if _, err := proto.ParseDatastore(req.Lock.Target); err != nil {
		return proto.NewError("Invalid target repository type requested.")
	}
	return h.execute(req.Session, adapter.BuildUnlock(req.Lock.Target))
}

// Kill implements MSG_KILL: requires session-id.
func (h *Handlers) Kill(req *proto.Request) *proto.Reply {
	if req.Kill.SessionID == "" {
		return proto.NewError("Missing session-id parameter.")
	}
	return h.execute(req.Session, adapter.BuildKillSession(req.Kill.SessionID))
}

// Validate implements MSG_VALIDATE: requires target; url required when
// target is "url".
func (h *Handlers) Validate(req *proto.Request) *proto.Reply {
	f := req.Validate
	if _, err := proto.ParseDatastore(f.Target); err != nil {
		return proto.NewError("Invalid target repository type requested.")
	}
	if f.Target == "url" && f.URL == "" {
		return proto.NewError("Missing url parameter for url-addressed validate target.")
	}
	return h.execute(req.Session, adapter.BuildValidate(f.Target, f.URL))
}

// execute is the common path shared by every handler that just sends one
// RPC and classifies the result: look up the session, send, classify, reply.
func (h *Handlers) execute(sessionKey string, rpc string) *proto.Reply {
	return h.withSession(sessionKey, func(_ *registry.Record, a *adapter.Adapter) *proto.Reply {
		reply, err := a.SendRecv(rpc)
		return outcomeToReply(adapter.Classify(reply, err))
	})
}
