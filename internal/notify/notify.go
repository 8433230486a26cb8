// Package notify implements the notification subchannel (component H): a
// transient secondary NETCONF channel opened on an existing session to
// replay historical notifications within an absolute time window.
//
// The reference design serializes all history replays behind a process-wide
// mutex because its underlying library delivers notifications via a
// context-free callback shared across calls. Here, ops.OpSession.Subscribe
// takes a dedicated channel per call, so concurrent replays on different
// sessions don't share any mutable dispatch state — no such mutex is
// needed. See SPEC_FULL.md §9 for the full resolution.
package notify

import (
	"time"

	"github.com/damianoneill/net/v2/netconf/common"
	"github.com/damianoneill/net/v2/netconf/ops"

	"github.com/netconfd/netconfd/internal/adapter"
	"github.com/netconfd/netconfd/internal/proto"
)

// QueueCapacity bounds the transient subscription channel used during a
// replay; it is independent of a Record's steady-state notification ring.
const QueueCapacity = 16

// Replay opens a subscription on session with the absolute window
// [now+from, now+to] (from/to are second offsets, per §4.E), collects every
// delivered notification, and returns once the device closes the
// notification stream.
func Replay(session ops.OpSession, now time.Time, from, to int) ([]proto.NotificationEvent, error) {
	start := now.Add(time.Duration(from) * time.Second).UTC().Format(time.RFC3339)
	stop := now.Add(time.Duration(to) * time.Second).UTC().Format(time.RFC3339)

	req := adapter.BuildSubscribe(start, stop)

	nchan := make(chan *common.Notification, QueueCapacity)
	if _, err := session.Subscribe(req, nchan); err != nil {
		return nil, err
	}

	var events []proto.NotificationEvent
	for n := range nchan {
		events = append(events, proto.NotificationEvent{EventTime: n.EventTime, Content: n.Event})
	}
	return events, nil
}
