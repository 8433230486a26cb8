package handlers

import (
	"context"
	"strconv"
	"time"

	"github.com/damianoneill/net/v2/netconf/common"
	"golang.org/x/crypto/ssh"

	"github.com/netconfd/netconfd/internal/proto"
	"github.com/netconfd/netconfd/internal/registry"
)

const defaultPort = "830"

// Connect implements MSG_CONNECT (§4.E): dials a new NETCONF-over-SSH
// session, computes its SessionKey, and inserts a new Record.
func (h *Handlers) Connect(ctx context.Context, req *proto.Request) *proto.Reply {
	f := req.Connect
	if f.Host == "" || f.User == "" {
		return proto.NewError("Missing connection parameters (host/user)")
	}
	port := f.Port
	if port == "" {
		port = defaultPort
	}

	sshcfg := &ssh.ClientConfig{
		User: f.User,
		Auth: []ssh.AuthMethod{
			ssh.Password(f.Pass),
			ssh.KeyboardInteractive(func(_, _ string, questions []string, _ []bool) ([]string, error) {
				answers := make([]string, len(questions))
				for i := range answers {
					answers[i] = f.Pass
				}
				return answers, nil
			}),
		},
		HostKeyCallback: h.cfg.HostKeyCallback,
		Timeout:         15 * time.Second,
	}

	session, err := h.cfg.Dial(ctx, sshcfg, f.Host+":"+port)
	if err != nil {
		return proto.NewError(err.Error())
	}

	key := registry.Key(f.Host, port, session.ID())
	rec := registry.NewRecord(session, h.cfg.NotificationQueueCapacity)
	rec.Hello = buildHello(session, f.Host, port, f.User)

	if err := h.cfg.Registry.Insert(key, rec); err != nil {
		session.Close()
		return proto.NewError("Duplicate session")
	}

	traceFor(ctx).SessionEstablished(key, f.Host)
	return proto.NewOKSession(key)
}

func buildHello(session sessionIdentity, host, port, user string) *registry.Hello {
	caps := session.ServerCapabilities()
	version := "1.0"
	if common.PeerSupportsChunkedFraming(caps) {
		version = "1.1"
	}
	return &registry.Hello{
		SID:          formatSessionID(session.ID()),
		Version:      version,
		Host:         host,
		Port:         port,
		User:         user,
		Capabilities: caps,
	}
}

// sessionIdentity is the subset of ops.OpSession/client.Session that
// buildHello needs; declared separately so tests can pass a minimal fake.
type sessionIdentity interface {
	ID() uint64
	ServerCapabilities() []string
}

func formatSessionID(id uint64) string {
	return strconv.FormatUint(id, 10)
}
