package repositories

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/samber/lo"

	"votekick-lab/domain/poll"
)

// MemberDirectory is an in-memory roster. It implements both contract.Roster
// (resolution and sizing) and contract.Membership (the kick action), since on
// this adapter both capabilities live on the same member list.
type MemberDirectory struct {
	mu      sync.RWMutex
	members []poll.Member
	log     *slog.Logger
}

func NewMemberDirectory(log *slog.Logger) *MemberDirectory {
	return &MemberDirectory{log: log}
}

func (d *MemberDirectory) Add(members ...poll.Member) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.members = append(d.members, members...)
}

// ResolveMember matches the search term against the exact member ID first,
// then against the display name with case-insensitive exact comparison.
// (nil, nil) means nothing matched.
func (d *MemberDirectory) ResolveMember(searchTerm string) (*poll.Member, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if member, ok := lo.Find(d.members, func(m poll.Member) bool {
		return m.ID == searchTerm
	}); ok {
		return &member, nil
	}

	if member, ok := lo.Find(d.members, func(m poll.Member) bool {
		return strings.EqualFold(m.DisplayName, searchTerm)
	}); ok {
		return &member, nil
	}

	return nil, nil
}

// Members returns a copy of the current roster.
func (d *MemberDirectory) Members() []poll.Member {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]poll.Member, len(d.members))
	copy(out, d.members)
	return out
}

func (d *MemberDirectory) Size() (int, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.members), nil
}

// Remove kicks a member out of the directory.
func (d *MemberDirectory) Remove(memberID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	before := len(d.members)
	d.members = lo.Reject(d.members, func(m poll.Member, _ int) bool {
		return m.ID == memberID
	})
	if len(d.members) == before {
		return fmt.Errorf("member %s not found", memberID)
	}

	d.log.Info("Member removed from directory", "member", memberID)
	return nil
}
