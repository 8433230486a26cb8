package proto

import "encoding/json"

// replyAlias avoids infinite recursion when MarshalJSON needs the default
// struct-tag-driven encoding of Reply's scalar fields.
type replyAlias Reply

// MarshalJSON flattens Hello and Notifications into the envelope: MSG_INFO
// replies carry the cached hello fields directly (per the wire examples in
// §8), and MSG_NTF_GETHISTORY replies carry a notifications array alongside
// type, rather than wrapping either under the generic "data" string field.
func (r *Reply) MarshalJSON() ([]byte, error) {
	if r.Hello != nil {
		return json.Marshal(&struct {
			Type MessageType `json:"type"`
			*Hello
		}{Type: r.Type, Hello: r.Hello})
	}
	if r.Notifications != nil {
		return json.Marshal(&struct {
			Type          MessageType         `json:"type"`
			Notifications []NotificationEvent `json:"notifications"`
		}{Type: r.Type, Notifications: r.Notifications})
	}
	return json.Marshal((*replyAlias)(r))
}

// EncodeReply marshals a Reply to its wire JSON form.
func EncodeReply(r *Reply) ([]byte, error) {
	return json.Marshal(r)
}
