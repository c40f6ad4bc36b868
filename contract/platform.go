//go:generate go run go.uber.org/mock/mockgen -source=platform.go -destination=../mocks/mock_platform.go -package=mocks
package contract

import (
	"votekick-lab/domain/poll"
)

// Collaborator capability set consumed by the poll engine. The platform owns
// these resources; the engine only reads them and, on a passing vote, asks
// Membership for a single removal. No wire protocol is owned here.

type ConfigStore interface {
	GetServerConfig(serverID string) (poll.ServerConfig, error)
}

// ServerDirectory serves the informational summary command only.
type ServerDirectory interface {
	GetServerInfo(serverID string) (poll.ServerInfo, error)
}

// Roster resolves members and sizes the electorate. ResolveMember returns
// (nil, nil) when nothing matches: absence is not an error.
type Roster interface {
	ResolveMember(searchTerm string) (*poll.Member, error)
	Size() (int, error)
}

// Messaging posts and re-fetches the poll announcement. FetchAnnouncement
// returns (nil, nil) when the message is gone.
type Messaging interface {
	PostAnnouncement(content string) (string, error)
	FetchAnnouncement(id string) (*poll.Announcement, error)
}

// Reactions exposes the two vote markers. CountFor reads a deduplicated
// count straight from the reaction store; an unknown marker counts zero.
type Reactions interface {
	Attach(announcementID string, marker string) error
	CountFor(announcement poll.Announcement, marker string) int
}

// Membership performs the removal action.
type Membership interface {
	Remove(memberID string) error
}
