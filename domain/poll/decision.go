package poll

import "math"

// RequiredVotes computes the quorum: the minimum affirmative-vote count for a
// pass, as a fraction of the roster size rounded up. An empty roster yields 0,
// which still requires at least one net affirmative vote through Decide.
func RequiredVotes(rosterSize int, fraction float64) int {
	if rosterSize <= 0 {
		return 0
	}
	return int(math.Ceil(float64(rosterSize) * fraction))
}

// Decide maps (yes, no, rosterSize, fraction) to a pass/fail verdict.
// A poll passes iff yes strictly outnumbers no AND yes reaches the quorum.
// A tie always fails.
func Decide(tally VoteTally, roster RosterSnapshot, fraction float64) bool {
	return tally.Yes > tally.No && tally.Yes >= RequiredVotes(roster.Size, fraction)
}
