// Package registry implements the session registry (component D): a
// concurrent mapping from SessionKey to *Record guarded by a reader-writer
// lock, with the registry-then-record lock ordering the broker relies on
// throughout. Grounded on netconf/server/netconf.Server's sessionHandlers
// map, generalized from its single mutex to the two-level discipline this
// broker's concurrency model requires.
package registry

import (
	"crypto/sha1" //nolint:gosec // SessionKey derivation, not a security boundary.
	"encoding/hex"
	"errors"
	"strconv"
	"sync"
)

// ErrDuplicateKey is returned by Insert when the key is already present,
// per the spec's "Connect session-key uniqueness" resolution: the reference
// implementation silently overwrote; this implementation rejects instead.
var ErrDuplicateKey = errors.New("duplicate session")

// Key computes the SessionKey for a (host, port, netconf session-id) triple:
// the hex encoding of SHA-1 over their concatenation.
func Key(host, port string, sessionID uint64) string {
	h := sha1.New() //nolint:gosec
	h.Write([]byte(host))
	h.Write([]byte(port))
	h.Write([]byte(strconv.FormatUint(sessionID, 10)))
	return hex.EncodeToString(h.Sum(nil))
}

// Registry is a concurrent SessionKey -> *Record map. Lookup never returns
// with any lock held on the returned record; callers acquire Record.Lock
// themselves after releasing the registry's read side.
type Registry struct {
	mu      sync.RWMutex
	records map[string]*Record
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{records: make(map[string]*Record)}
}

// Insert adds a new record under key, failing with ErrDuplicateKey if one is
// already present.
func (r *Registry) Insert(key string, rec *Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.records[key]; exists {
		return ErrDuplicateKey
	}
	r.records[key] = rec
	return nil
}

// Lookup returns the record for key, or nil if absent.
func (r *Registry) Lookup(key string) *Record {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.records[key]
}

// Remove extracts and returns the record for key, or nil if absent.
func (r *Registry) Remove(key string) *Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec := r.records[key]
	delete(r.records, key)
	return rec
}

// ForEach invokes f for every (key, record) pair under the write lock,
// because idle-sweep and shutdown both need to remove entries mid-traversal.
// f must not call back into the Registry.
func (r *Registry) ForEach(f func(key string, rec *Record)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key, rec := range r.records {
		f(key, rec)
	}
}

// RemoveIf removes and returns every record for which match returns true,
// used by the idle sweeper and by shutdown. Traversal and removal happen
// under a single write-lock hold, matching ForEach's rationale.
func (r *Registry) RemoveIf(match func(rec *Record) bool) []*Record {
	r.mu.Lock()
	defer r.mu.Unlock()

	var removed []*Record
	for key, rec := range r.records {
		if match(rec) {
			delete(r.records, key)
			removed = append(removed, rec)
		}
	}
	return removed
}
