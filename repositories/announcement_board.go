package repositories

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"votekick-lab/domain/poll"
)

// AnnouncementBoard is an in-memory message store with per-marker vote sets.
// It implements contract.Messaging and contract.Reactions. Vote sets are
// keyed by voter so the count the engine reads is already deduplicated.
type AnnouncementBoard struct {
	mu      sync.RWMutex
	entries map[string]*boardEntry
}

type boardEntry struct {
	announcement poll.Announcement
	votes        map[string]map[string]struct{} // marker -> voter set
}

func NewAnnouncementBoard() *AnnouncementBoard {
	return &AnnouncementBoard{entries: make(map[string]*boardEntry)}
}

func (b *AnnouncementBoard) PostAnnouncement(content string) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := uuid.NewString()
	b.entries[id] = &boardEntry{
		announcement: poll.Announcement{ID: id, Content: content, PostedAt: time.Now().UTC()},
		votes:        make(map[string]map[string]struct{}),
	}
	return id, nil
}

func (b *AnnouncementBoard) FetchAnnouncement(id string) (*poll.Announcement, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	entry, ok := b.entries[id]
	if !ok {
		return nil, nil
	}
	announcement := entry.announcement
	return &announcement, nil
}

// Delete drops an announcement, simulating platform-side message removal.
func (b *AnnouncementBoard) Delete(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.entries, id)
}

// Attach publishes a marker on the announcement, making it votable.
func (b *AnnouncementBoard) Attach(announcementID string, marker string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	entry, ok := b.entries[announcementID]
	if !ok {
		return fmt.Errorf("announcement %s not found", announcementID)
	}
	if _, ok := entry.votes[marker]; !ok {
		entry.votes[marker] = make(map[string]struct{})
	}
	return nil
}

// React records one member's vote under a marker. Voting twice under the
// same marker is a no-op; the marker must have been attached first.
func (b *AnnouncementBoard) React(announcementID, marker, voterID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	entry, ok := b.entries[announcementID]
	if !ok {
		return fmt.Errorf("announcement %s not found", announcementID)
	}
	voters, ok := entry.votes[marker]
	if !ok {
		return fmt.Errorf("marker %s not published on %s", marker, announcementID)
	}
	voters[voterID] = struct{}{}
	return nil
}

// CountFor reads the deduplicated vote count for a marker. An unknown marker
// counts zero.
func (b *AnnouncementBoard) CountFor(announcement poll.Announcement, marker string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	entry, ok := b.entries[announcement.ID]
	if !ok {
		return 0
	}
	return len(entry.votes[marker])
}
