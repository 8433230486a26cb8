package adapter

import (
	"encoding/xml"
	"errors"
	"strings"

	"github.com/damianoneill/net/v2/netconf/common"
)

// okMarkers are the raw-innerxml forms an <rpc-reply> containing only <ok/>
// can take once decoded into RPCReply.Data (which captures the reply's
// inner XML verbatim, not just any non-ok payload).
var okMarkers = []string{"<ok/>", "<ok></ok>"}

func isOKMarker(data string) bool {
	trimmed := strings.TrimSpace(data)
	for _, m := range okMarkers {
		if trimmed == m {
			return true
		}
	}
	return false
}

// Kind enumerates the classification of an adapter result (§4.C).
type Kind int

const (
	// KindOK means the device accepted the RPC with an empty <ok/> reply.
	KindOK Kind = iota
	// KindData means the reply carried a non-empty data payload.
	KindData
	// KindError means the RPC failed, with details in Outcome.Err.
	KindError
)

// errorInfo mirrors the optional <error-app-tag>/<error-info> children of an
// rpc-error that common.RPCError doesn't break out into named fields itself
// (it only captures their combined raw innerxml in Info): the
// error-app-tag, plus error-info's own bad-attribute/bad-element/
// bad-namespace/session-id children.
type errorInfo struct {
	AppTag       string `xml:"error-app-tag"`
	BadAttribute string `xml:"bad-attribute"`
	BadElement   string `xml:"bad-element"`
	BadNamespace string `xml:"bad-namespace"`
	SessionID    string `xml:"session-id"`
}

// parseErrorInfo extracts errorInfo from an RPCError's raw Info innerxml,
// returning the zero value if Info is empty or doesn't parse.
func parseErrorInfo(info string) errorInfo {
	var fields errorInfo
	if info == "" {
		return fields
	}
	_ = xml.Unmarshal([]byte("<x>"+info+"</x>"), &fields)
	return fields
}

// Outcome is the classified result of an adapter call.
type Outcome struct {
	Kind Kind
	Data string
	Err  *common.RPCError // populated on KindError when device-reported
	errorInfo
	// Message is set on KindError when there is no structured RPCError
	// (transport failure, or a reply with no data and no error).
	Message string
}

// Classify maps a (reply, err) pair from Adapter.SendRecv to an Outcome, per
// the table in §4.C:
//   - a transport-level error (not a *common.RPCError) is a transport
//     failure: ERROR with just a message.
//   - a *common.RPCError is a device-reported protocol error: ERROR with
//     the full field set.
//   - no error and a non-empty Data: DATA.
//   - no error and empty Data: ERROR "No data from reply received".
//   - nil reply and nil error only happens if the session was closed from
//     under the caller (channel closed): treated as a transport error.
func Classify(reply *common.RPCReply, err error) Outcome {
	if err != nil {
		var rpcErr *common.RPCError
		if errors.As(err, &rpcErr) {
			return Outcome{Kind: KindError, Err: rpcErr, errorInfo: parseErrorInfo(rpcErr.Info)}
		}
		return Outcome{Kind: KindError, Message: err.Error()}
	}

	if reply == nil {
		return Outcome{Kind: KindError, Message: "Receiving RPC-REPLY failed"}
	}

	switch {
	case isOKMarker(reply.Data):
		return Outcome{Kind: KindOK}
	case reply.Data != "":
		return Outcome{Kind: KindData, Data: reply.Data}
	default:
		return Outcome{Kind: KindError, Message: "No data from reply received"}
	}
}
