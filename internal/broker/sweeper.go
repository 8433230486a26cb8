package broker

import (
	"context"
	"time"

	"github.com/netconfd/netconfd/internal/registry"
	"github.com/netconfd/netconfd/internal/trace"
)

// RunSweeper periodically removes sessions idle for longer than timeout,
// closing their underlying NETCONF connection. It runs until ctx is
// cancelled, matching the reference daemon's periodic idle-session reaper.
func RunSweeper(ctx context.Context, reg *registry.Registry, interval, timeout time.Duration) {
	t := trace.ContextTrace(ctx)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed := reg.RemoveIf(func(rec *registry.Record) bool {
				rec.Lock.Lock()
				defer rec.Lock.Unlock()
				return !rec.Closed && time.Since(rec.LastActivity) > timeout
			})
			for _, rec := range removed {
				rec.Lock.Lock()
				rec.Closed = true
				rec.NC.Close()
				rec.Lock.Unlock()
			}
			t.SweepRan(len(removed))
		}
	}
}

// CloseAll removes every session from reg and tears it down, used during
// shutdown.
func CloseAll(reg *registry.Registry) {
	removed := reg.RemoveIf(func(*registry.Record) bool { return true })
	for _, rec := range removed {
		rec.Lock.Lock()
		if !rec.Closed {
			rec.Closed = true
			rec.NC.Close()
		}
		rec.Lock.Unlock()
	}
}
