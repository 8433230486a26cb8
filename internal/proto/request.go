package proto

import "encoding/json"

// Request is the decoded form of a client request envelope. Op-specific
// fields are grouped by handler rather than spread flat, matching how a
// reader would look them up: a CONNECT request consults Connect, a
// GETCONFIG request consults GetConfig, and so on. Unused groups are left
// zero-valued.
type Request struct {
	Type    MessageType `json:"type"`
	Session string      `json:"session,omitempty"`

	Connect      ConnectFields      `json:"-"`
	GetConfig    GetConfigFields    `json:"-"`
	GetSchema    GetSchemaFields    `json:"-"`
	EditConfig   EditConfigFields   `json:"-"`
	CopyConfig   CopyConfigFields   `json:"-"`
	DeleteConfig DeleteConfigFields `json:"-"`
	Lock         TargetFields       `json:"-"`
	Kill         KillFields         `json:"-"`
	Get          GetFields          `json:"-"`
	Generic      GenericFields      `json:"-"`
	NtfHistory   NtfHistoryFields   `json:"-"`
	Validate     ValidateFields     `json:"-"`
}

// ConnectFields carries the parameters of a MSG_CONNECT request.
type ConnectFields struct {
	Host         string   `json:"host"`
	Port         string   `json:"port"`
	User         string   `json:"user"`
	Pass         string   `json:"pass"`
	Capabilities []string `json:"capabilities"`
}

// GetConfigFields carries the parameters of a MSG_GETCONFIG request.
type GetConfigFields struct {
	Source string `json:"source"`
	Filter string `json:"filter"`
}

// GetSchemaFields carries the parameters of a MSG_GETSCHEMA request.
type GetSchemaFields struct {
	Identifier string `json:"identifier"`
	Version    string `json:"version"`
	Format     string `json:"format"`
}

// EditConfigFields carries the parameters of a MSG_EDITCONFIG request.
type EditConfigFields struct {
	Target           string `json:"target"`
	Config           string `json:"config"`
	DefaultOperation string `json:"default-operation"`
	ErrorOption      string `json:"error-option"`
}

// CopyConfigFields carries the parameters of a MSG_COPYCONFIG request. Per
// the spec's datastore-URL resolution, source and target URLs are separate
// fields rather than one shared one.
type CopyConfigFields struct {
	Source    string `json:"source"`
	Target    string `json:"target"`
	Config    string `json:"config"`
	SourceURL string `json:"source-url"`
	TargetURL string `json:"target-url"`
}

// DeleteConfigFields carries the parameters of a MSG_DELETECONFIG request.
type DeleteConfigFields struct {
	Target string `json:"target"`
	URL    string `json:"url"`
}

// TargetFields carries the parameters of MSG_LOCK/MSG_UNLOCK requests.
type TargetFields struct {
	Target string `json:"target"`
}

// KillFields carries the parameters of a MSG_KILL request.
type KillFields struct {
	SessionID string `json:"session-id"`
}

// GetFields carries the parameters of a MSG_GET request.
type GetFields struct {
	Filter string `json:"filter"`
}

// GenericFields carries the parameters of a MSG_GENERIC request.
type GenericFields struct {
	Content string `json:"content"`
}

// NtfHistoryFields carries the parameters of a MSG_NTF_GETHISTORY request.
type NtfHistoryFields struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// ValidateFields carries the parameters of a MSG_VALIDATE request.
type ValidateFields struct {
	Target string `json:"target"`
	URL    string `json:"url"`
}

// DecodeRequest parses a raw JSON request envelope, dispatching op-specific
// fields into the matching group based on Type.
func DecodeRequest(data []byte) (*Request, error) {
	var envelope struct {
		Type    MessageType `json:"type"`
		Session string      `json:"session"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, err
	}

	req := &Request{Type: envelope.Type, Session: envelope.Session}

	var err error
	switch envelope.Type {
	case MsgConnect:
		err = json.Unmarshal(data, &req.Connect)
	case MsgGet:
		err = json.Unmarshal(data, &req.Get)
	case MsgGeneric:
		err = json.Unmarshal(data, &req.Generic)
	case MsgGetConfig:
		err = json.Unmarshal(data, &req.GetConfig)
	case MsgGetSchema:
		err = json.Unmarshal(data, &req.GetSchema)
	case MsgEditConfig:
		err = json.Unmarshal(data, &req.EditConfig)
	case MsgCopyConfig:
		err = json.Unmarshal(data, &req.CopyConfig)
	case MsgDeleteConfig:
		err = json.Unmarshal(data, &req.DeleteConfig)
	case MsgLock, MsgUnlock:
		err = json.Unmarshal(data, &req.Lock)
	case MsgKill:
		err = json.Unmarshal(data, &req.Kill)
	case MsgNtfGetHistory:
		err = json.Unmarshal(data, &req.NtfHistory)
	case MsgValidate:
		err = json.Unmarshal(data, &req.Validate)
	}
	if err != nil {
		return nil, err
	}
	return req, nil
}
