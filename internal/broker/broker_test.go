package broker

import (
	"bufio"
	"context"
	"encoding/json"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/damianoneill/net/v2/netconf/common"
	"github.com/damianoneill/net/v2/netconf/ops"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/ssh"

	"github.com/netconfd/netconfd/internal/frame"
	"github.com/netconfd/netconfd/internal/handlers"
	"github.com/netconfd/netconfd/internal/proto"
	"github.com/netconfd/netconfd/internal/registry"
	"github.com/netconfd/netconfd/netconf/mocks"
)

// fakeDial builds a handlers.Dialer that hands out a fresh mocked
// ops.OpSession per call, programmed to answer any Execute with reply.
func fakeDial(t *testing.T, reply *common.RPCReply) handlers.Dialer {
	return func(_ context.Context, _ *ssh.ClientConfig, _ string) (ops.OpSession, error) {
		session := &mocks.OpSession{}
		session.On("ID").Return(1)
		session.On("ServerCapabilities").Return([]string{"urn:ietf:params:netconf:base:1.0"})
		session.On("Execute", mock.Anything).Return(reply, nil)
		session.On("Close").Return()
		t.Cleanup(func() { session.AssertExpectations(t) })
		return session, nil
	}
}

func startBroker(t *testing.T, h *handlers.Handlers) string {
	t.Helper()
	sockPath := filepath.Join(t.TempDir(), "netconfd.sock")
	b, err := New(context.Background(), sockPath, h)
	require.NoError(t, err)
	t.Cleanup(func() { b.Close(context.Background()) })
	return sockPath
}

// roundTrip sends a flat JSON request object (matching the wire shape
// proto.DecodeRequest expects: a "type" discriminator plus top-level
// op-specific fields) and decodes the framed reply. r must be the same
// bufio.Reader across every call on conn, since a fresh one could strand
// bytes already buffered from the underlying connection.
func roundTrip(t *testing.T, conn net.Conn, r *bufio.Reader, req map[string]interface{}) *proto.Reply {
	t.Helper()
	payload, err := json.Marshal(req)
	require.NoError(t, err)
	require.NoError(t, frame.WriteFrame(conn, payload))

	out, err := frame.ReadFrame(r)
	require.NoError(t, err)

	var reply proto.Reply
	require.NoError(t, json.Unmarshal(out, &reply))
	return &reply
}

func TestBrokerConnectGetDisconnectRoundTrip(t *testing.T) {
	reg := registry.New()
	h := handlers.New(handlers.Config{
		Registry: reg,
		Dial:     fakeDial(t, &common.RPCReply{Data: "<interfaces/>"}),
	})
	sockPath := startBroker(t, h)

	conn, err := net.DialTimeout("unix", sockPath, 2*time.Second)
	require.NoError(t, err)
	defer conn.Close()
	r := bufio.NewReader(conn)

	connectReq := map[string]interface{}{
		"type": proto.MsgConnect,
		"host": "device",
		"user": "admin",
		"pass": "admin",
	}

	reply := roundTrip(t, conn, r, connectReq)
	require.Equal(t, proto.ReplyOK, reply.Type)
	require.NotEmpty(t, reply.Session)

	getReq := map[string]interface{}{"type": proto.MsgGet, "session": reply.Session}
	getReply := roundTrip(t, conn, r, getReq)
	require.Equal(t, proto.ReplyData, getReply.Type)
	require.Equal(t, "<interfaces/>", getReply.Data)

	disconnectReq := map[string]interface{}{"type": proto.MsgDisconnect, "session": reply.Session}
	disconnectReply := roundTrip(t, conn, r, disconnectReq)
	require.Equal(t, proto.ReplyOK, disconnectReply.Type)

	staleReply := roundTrip(t, conn, r, getReq)
	require.Equal(t, proto.ReplyError, staleReply.Type)
}
