package runtime

import (
	"fmt"
	"log/slog"

	"votekick-lab/contract"
	"votekick-lab/domain/poll"
	"votekick-lab/errors"
)

// Tally re-reads the announcement's markers once the window has elapsed and
// samples the roster size independently. The quorum base therefore reflects
// membership at tally time, not at announcement time.
type Tally struct {
	messaging contract.Messaging
	reactions contract.Reactions
	roster    contract.Roster
	log       *slog.Logger
}

func NewTally(messaging contract.Messaging, reactions contract.Reactions,
	roster contract.Roster, log *slog.Logger) *Tally {
	return &Tally{messaging: messaging, reactions: reactions, roster: roster, log: log}
}

// Count fetches the announcement by id and reads the two known markers.
// A missing marker counts zero votes for that side; a missing announcement or
// an unreachable roster is a fetch failure that aborts the poll.
func (t *Tally) Count(announcementID string) (poll.VoteTally, poll.RosterSnapshot, error) {
	announcement, err := t.messaging.FetchAnnouncement(announcementID)
	if err != nil {
		t.log.Error("Announcement re-fetch failed", "announcement", announcementID, "error", err)
		return poll.VoteTally{}, poll.RosterSnapshot{}, fmt.Errorf("%w: %w", errors.ErrFetchFailure, err)
	}
	if announcement == nil {
		t.log.Warn("Announcement gone before tally", "announcement", announcementID)
		return poll.VoteTally{}, poll.RosterSnapshot{}, fmt.Errorf("%w: announcement %s is gone", errors.ErrFetchFailure, announcementID)
	}

	tally := poll.VoteTally{
		Yes: t.reactions.CountFor(*announcement, poll.MarkerYes),
		No:  t.reactions.CountFor(*announcement, poll.MarkerNo),
	}

	size, err := t.roster.Size()
	if err != nil {
		t.log.Error("Roster size re-read failed", "error", err)
		return poll.VoteTally{}, poll.RosterSnapshot{}, fmt.Errorf("%w: %w", errors.ErrFetchFailure, err)
	}

	return tally, poll.RosterSnapshot{Size: size}, nil
}
