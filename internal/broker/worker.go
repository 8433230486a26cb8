package broker

import (
	"bufio"
	"context"
	"errors"
	"io"
	"net"
	"time"

	"github.com/google/uuid"

	"github.com/netconfd/netconfd/internal/frame"
	"github.com/netconfd/netconfd/internal/handlers"
	"github.com/netconfd/netconfd/internal/proto"
	"github.com/netconfd/netconfd/internal/trace"
)

// runWorker services one client connection: read a framed request, decode
// it, dispatch it, write back a framed reply, repeat until the connection
// closes or a frame is malformed. A malformed frame is a protocol violation
// from this client alone, so the connection is dropped rather than the
// process crashing — no other client is affected.
//
// Unix domain socket peers don't carry a meaningful RemoteAddr (an unbound
// client socket reports an empty name), so a per-connection id is minted for
// log correlation instead, the same role netconf/client/message.go's
// uuid.New().String() plays for RPC message-ids.
func runWorker(ctx context.Context, conn net.Conn, h *handlers.Handlers, t *trace.BrokerTrace) {
	remote := conn.RemoteAddr().String()
	if remote == "" || remote == "@" {
		remote = uuid.New().String()
	}
	defer conn.Close()

	r := bufio.NewReader(conn)
	for {
		payload, err := frame.ReadFrame(r)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				t.FrameDecodeFailed(remote, err)
			}
			t.ConnectionClosed(remote, err)
			return
		}

		req, err := proto.DecodeRequest(payload)
		if err != nil {
			t.FrameDecodeFailed(remote, err)
			continue
		}

		started := time.Now()
		reply := h.Dispatch(ctx, req)
		t.RequestDispatched(req.Type.String(), req.Session, time.Since(started))

		out, err := proto.EncodeReply(reply)
		if err != nil {
			t.Error("encode-reply", remote, err)
			return
		}
		if err := frame.WriteFrame(conn, out); err != nil {
			t.ConnectionClosed(remote, err)
			return
		}
	}
}
