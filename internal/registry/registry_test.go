package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertLookupRemove(t *testing.T) {
	reg := New()
	rec := NewRecord(nil, 10)

	require.NoError(t, reg.Insert("k1", rec))
	assert.Same(t, rec, reg.Lookup("k1"))

	assert.Nil(t, reg.Lookup("missing"))

	removed := reg.Remove("k1")
	assert.Same(t, rec, removed)
	assert.Nil(t, reg.Lookup("k1"))
}

func TestInsertDuplicateKeyRejected(t *testing.T) {
	reg := New()
	require.NoError(t, reg.Insert("k1", NewRecord(nil, 10)))
	assert.ErrorIs(t, reg.Insert("k1", NewRecord(nil, 10)), ErrDuplicateKey)
}

func TestRemoveIfSelectsMatchingRecords(t *testing.T) {
	reg := New()
	stale := NewRecord(nil, 10)
	fresh := NewRecord(nil, 10)
	require.NoError(t, reg.Insert("stale", stale))
	require.NoError(t, reg.Insert("fresh", fresh))

	removed := reg.RemoveIf(func(rec *Record) bool { return rec == stale })

	assert.Len(t, removed, 1)
	assert.Same(t, stale, removed[0])
	assert.Nil(t, reg.Lookup("stale"))
	assert.NotNil(t, reg.Lookup("fresh"))
}

func TestForEachVisitsAllRecords(t *testing.T) {
	reg := New()
	require.NoError(t, reg.Insert("a", NewRecord(nil, 10)))
	require.NoError(t, reg.Insert("b", NewRecord(nil, 10)))

	seen := map[string]bool{}
	reg.ForEach(func(key string, rec *Record) { seen[key] = true })

	assert.Equal(t, map[string]bool{"a": true, "b": true}, seen)
}

func TestKeyIsDeterministic(t *testing.T) {
	assert.Equal(t, Key("host", "830", 42), Key("host", "830", 42))
	assert.NotEqual(t, Key("host", "830", 42), Key("host", "830", 43))
	assert.Len(t, Key("host", "830", 42), 40)
}

func TestNotificationRingDropsOldestOnOverflow(t *testing.T) {
	rec := NewRecord(nil, 2)
	rec.PushNotification("1")
	rec.PushNotification("2")
	rec.PushNotification("3")

	assert.Equal(t, []string{"2", "3"}, rec.DrainNotifications())
	assert.EqualValues(t, 1, rec.NotificationsDropped)
	assert.Empty(t, rec.DrainNotifications())
}
