package runtime

import (
	"sync"

	"votekick-lab/domain/poll"
)

// Registry tracks the polls currently in flight, keyed by server then target.
// It is informational only and feeds the server summary command. The
// eligibility gate does NOT consult it: two concurrent polls against the same
// target remain possible, and the registry simply keeps the later one.
type Registry struct {
	mu     sync.RWMutex
	active map[string]map[string]poll.Session // server -> target -> session
}

func NewRegistry() *Registry {
	return &Registry{
		active: make(map[string]map[string]poll.Session),
	}
}

// Add records a session snapshot for its server. The value is copied so
// later mutation of the live session stays invisible to readers.
func (r *Registry) Add(session poll.Session) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.active[session.ServerID]; !ok {
		r.active[session.ServerID] = make(map[string]poll.Session)
	}
	r.active[session.ServerID][session.TargetID] = session
}

// Remove drops the session and cleans up empty server entries so the map
// does not grow over time.
func (r *Registry) Remove(session poll.Session) {
	r.mu.Lock()
	defer r.mu.Unlock()

	targets, ok := r.active[session.ServerID]
	if !ok {
		return
	}

	// Only drop the entry if it still belongs to this session: a newer poll
	// against the same target may have overwritten it.
	if current, ok := targets[session.TargetID]; ok && current.ID == session.ID {
		delete(targets, session.TargetID)
	}
	if len(targets) == 0 {
		delete(r.active, session.ServerID)
	}
}

// Active returns a snapshot of the polls in flight for one server.
func (r *Registry) Active(serverID string) []poll.Session {
	r.mu.RLock()
	defer r.mu.RUnlock()

	targets, ok := r.active[serverID]
	if !ok {
		return nil
	}
	sessions := make([]poll.Session, 0, len(targets))
	for _, s := range targets {
		sessions = append(sessions, s)
	}
	return sessions
}
