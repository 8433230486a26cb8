package registry

import (
	"sync"
	"time"

	"github.com/damianoneill/net/v2/netconf/ops"
)

// Record is one live upstream NETCONF session (§3 SessionRecord). Lock
// guards nc and the mutable fields below. Handlers acquire it after the
// registry's read lock has been released; the idle sweeper acquires it while
// holding the registry's write lock. Either way the order is registry→record,
// never the reverse.
type Record struct {
	Lock sync.Mutex

	NC ops.OpSession

	LastActivity time.Time

	Hello *Hello

	notifications         ring
	NotificationsDropped   uint64
	Subscribed             bool
	Closed                 bool
}

// Hello is the cached identity/capability info derived from a session's
// NETCONF hello exchange (§3).
type Hello struct {
	SID          string
	Version      string
	Host         string
	Port         string
	User         string
	Capabilities []string
}

// NewRecord returns a Record wrapping nc, with its notification ring sized
// to capacity.
func NewRecord(nc ops.OpSession, capacity int) *Record {
	return &Record{
		NC:           nc,
		LastActivity: time.Now(),
		notifications: newRing(capacity),
	}
}

// Touch updates LastActivity to now; callers hold Lock while calling this,
// per invariant 4 (monotonically non-decreasing within a record's lifetime).
func (r *Record) Touch() {
	r.LastActivity = time.Now()
}

// PushNotification appends a payload to the bounded FIFO, dropping the
// oldest entry on overflow rather than blocking, per the spec's "Notification
// queue bound" resolution.
func (r *Record) PushNotification(payload string) {
	if r.notifications.push(payload) {
		r.NotificationsDropped++
	}
}

// DrainNotifications returns and clears all pending notification payloads.
func (r *Record) DrainNotifications() []string {
	return r.notifications.drain()
}
