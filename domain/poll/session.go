// Package poll holds the data model of a moderation poll: the session created
// for one votekick invocation, the derived tally, and the terminal outcome.
// It contains no I/O; collaborators live behind the contract package.
package poll

import (
	"time"

	"github.com/google/uuid"
)

// Vote markers published on the announcement. Affirmative first.
const (
	MarkerYes = "✅"
	MarkerNo  = "❌"
)

// Session identifies one poll. It is owned exclusively by the invocation that
// created it, mutated only when the window elapses and the tally is attached,
// and goes out of scope right after the report is rendered. Nothing survives
// the invocation.
type Session struct {
	ID             uuid.UUID
	ServerID       string
	InitiatorID    string
	TargetID       string
	TargetName     string
	Reason         string
	AnnouncementID string
	StartedAt      time.Time
	Duration       time.Duration

	// Attached at resolution time, nil before.
	Tally  *VoteTally
	Roster *RosterSnapshot
}

// VoteTally is derived, never stored: it is recomputed once at resolution
// time from the reaction store.
type VoteTally struct {
	Yes int
	No  int
}

func (t VoteTally) Total() int {
	return t.Yes + t.No
}

// RosterSnapshot is sampled independently at poll resolution time, not frozen
// at poll start. The quorum base therefore reflects membership at tally time.
type RosterSnapshot struct {
	Size int
}

// Outcome is the terminal state of a session, produced exactly once.
type Outcome string

const (
	OutcomePassed  Outcome = "passed"
	OutcomeFailed  Outcome = "failed"
	OutcomeAborted Outcome = "aborted"
	// OutcomeActionFailed means the vote passed but the removal could not be
	// performed. Reported distinctly so the initiator can tell "vote failed"
	// apart from "vote passed, mechanical failure".
	OutcomeActionFailed Outcome = "passed_action_failed"
)

// Report is what the command layer receives back for display. Pure data.
type Report struct {
	Outcome  Outcome
	Summary  string
	Tally    *VoteTally
	Required int
	// Cause carries the abort kind (or the raw fault for unknown errors).
	// Nil for passed and failed outcomes.
	Cause error
}

// Announcement is the platform message carrying the vote markers.
type Announcement struct {
	ID       string
	Content  string
	PostedAt time.Time
}
