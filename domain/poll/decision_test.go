package poll

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const half = 0.5

func TestDecide_QuorumInvariant(t *testing.T) {
	req := require.New(t)

	// For every combination below, the verdict must equal
	// yes > no && yes >= ceil(size * fraction). The expectation is written
	// out per case so a regression names the broken scenario.
	tests := []struct {
		name   string
		yes    int
		no     int
		size   int
		passed bool
	}{
		{name: "clear majority above quorum", yes: 7, no: 2, size: 12, passed: true},
		{name: "tie always fails", yes: 5, no: 5, size: 10, passed: false},
		{name: "empty roster with one net yes", yes: 1, no: 0, size: 0, passed: true},
		{name: "empty roster with no votes", yes: 0, no: 0, size: 0, passed: false},
		{name: "boundary exactly at quorum", yes: 5, no: 1, size: 10, passed: true},
		{name: "below quorum despite no opposition", yes: 4, no: 0, size: 10, passed: false},
		{name: "majority but under quorum", yes: 3, no: 2, size: 12, passed: false},
		{name: "quorum reached but outvoted", yes: 6, no: 7, size: 12, passed: false},
		{name: "single member voting themselves out", yes: 1, no: 0, size: 1, passed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tally := VoteTally{Yes: tt.yes, No: tt.no}
			roster := RosterSnapshot{Size: tt.size}

			got := Decide(tally, roster, half)

			req.Equal(tt.passed, got, "yes=%d no=%d size=%d", tt.yes, tt.no, tt.size)

			// Cross-check against the invariant itself rather than a second
			// hand-derived table.
			invariant := tt.yes > tt.no && tt.yes >= RequiredVotes(tt.size, half)
			req.Equal(invariant, got)
		})
	}
}

func TestRequiredVotes(t *testing.T) {
	req := require.New(t)

	req.Equal(0, RequiredVotes(0, half))
	req.Equal(1, RequiredVotes(1, half))
	req.Equal(5, RequiredVotes(10, half))
	req.Equal(6, RequiredVotes(11, half))
	req.Equal(6, RequiredVotes(12, half))

	// Other fractions round up too.
	req.Equal(7, RequiredVotes(10, 0.66))
	req.Equal(10, RequiredVotes(10, 1.0))
}

func TestVoteTally_Total(t *testing.T) {
	req := require.New(t)
	req.Equal(9, VoteTally{Yes: 7, No: 2}.Total())
	req.Equal(0, VoteTally{}.Total())
}
