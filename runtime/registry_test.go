package runtime

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"votekick-lab/domain/poll"
)

func newSession(serverID, targetID string) poll.Session {
	return poll.Session{
		ID:       uuid.New(),
		ServerID: serverID,
		TargetID: targetID,
	}
}

func TestRegistry_AddAndActive(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	// Given no poll is in flight
	req.Empty(registry.Active("srv"))

	// When two polls start on the same server
	s1 := newSession("srv", "alice")
	s2 := newSession("srv", "bob")
	registry.Add(s1)
	registry.Add(s2)

	// Then both are visible, and other servers see nothing
	req.Len(registry.Active("srv"), 2)
	req.Empty(registry.Active("other"))
}

func TestRegistry_RemoveCleansUpServerEntry(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	s := newSession("srv", "alice")
	registry.Add(s)
	registry.Remove(s)

	req.Empty(registry.Active("srv"))
}

func TestRegistry_RemoveKeepsNewerSessionForSameTarget(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	// Two polls against the same target may overlap: the registry keeps the
	// later one when the earlier one finishes.
	older := newSession("srv", "alice")
	newer := newSession("srv", "alice")
	registry.Add(older)
	registry.Add(newer)

	registry.Remove(older)

	active := registry.Active("srv")
	req.Len(active, 1)
	req.Equal(newer.ID, active[0].ID)
}
