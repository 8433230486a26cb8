package proto

// Reply is the encoded form of a reply envelope. Field presence follows the
// reply Type: DATA replies populate Data, ERROR replies populate the
// error-* fields, OK replies populate only Session (and only for handlers
// that return one, e.g. CONNECT).
type Reply struct {
	Type MessageType `json:"type"`

	Session string `json:"session,omitempty"`
	Data    string `json:"data,omitempty"`

	ErrorTag      string `json:"error-tag,omitempty"`
	ErrorType     string `json:"error-type,omitempty"`
	ErrorSeverity string `json:"error-severity,omitempty"`
	ErrorAppTag   string `json:"error-app-tag,omitempty"`
	ErrorPath     string `json:"error-path,omitempty"`
	ErrorMessage  string `json:"error-message,omitempty"`
	BadAttribute  string `json:"bad-attribute,omitempty"`
	BadElement    string `json:"bad-element,omitempty"`
	BadNamespace  string `json:"bad-namespace,omitempty"`
	SessionID     string `json:"session-id,omitempty"`

	// Hello and Notifications carry the structured payloads returned by
	// MSG_INFO and MSG_NTF_GETHISTORY respectively; both are also
	// reply-type DATA but with a richer shape than a bare string, so they
	// are marshalled alongside Data rather than through it.
	Hello         *Hello              `json:"-"`
	Notifications []NotificationEvent `json:"-"`
}

// Hello is the cached identity/capability information derived from a
// session's NETCONF hello exchange.
type Hello struct {
	SID          string   `json:"sid"`
	Version      string   `json:"version"`
	Host         string   `json:"host"`
	Port         string   `json:"port"`
	User         string   `json:"user"`
	Capabilities []string `json:"capabilities"`
}

// NotificationEvent is one entry of a history-replay result.
type NotificationEvent struct {
	EventTime string `json:"eventtime"`
	Content   string `json:"content"`
}

// NewOK builds a bare OK reply.
func NewOK() *Reply {
	return &Reply{Type: ReplyOK}
}

// NewOKSession builds an OK reply carrying the session key, as CONNECT does.
func NewOKSession(session string) *Reply {
	return &Reply{Type: ReplyOK, Session: session}
}

// NewData builds a DATA reply carrying a string payload.
func NewData(data string) *Reply {
	return &Reply{Type: ReplyData, Data: data}
}

// NewError builds an ERROR reply with just a message, the common case for
// transport/request-validation/internal errors.
func NewError(message string) *Reply {
	return &Reply{Type: ReplyError, ErrorMessage: message}
}

// NewProtocolError builds an ERROR reply with the full set of NETCONF
// protocol-error fields populated from a device-reported rpc-error.
func NewProtocolError(tag, errType, severity, appTag, path, message, badAttr, badElem, badNS, sessionID string) *Reply {
	return &Reply{
		Type:          ReplyError,
		ErrorTag:      tag,
		ErrorType:     errType,
		ErrorSeverity: severity,
		ErrorAppTag:   appTag,
		ErrorPath:     path,
		ErrorMessage:  message,
		BadAttribute:  badAttr,
		BadElement:    badElem,
		BadNamespace:  badNS,
		SessionID:     sessionID,
	}
}
