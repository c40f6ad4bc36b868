// Package runtime drives the poll lifecycle: eligibility gating, announcement
// and marker setup, the timeout race, tallying, the quorum decision and the
// removal action. It orchestrates collaborators without owning any of them.
package runtime

import (
	"fmt"
	"log/slog"
	"strings"

	"votekick-lab/contract"
	"votekick-lab/domain/poll"
	"votekick-lab/errors"
)

// Gate validates that a poll may start. Checks run in a fixed order and
// short-circuit on the first failure.
type Gate struct {
	configs contract.ConfigStore
	roster  contract.Roster
	log     *slog.Logger
}

func NewGate(configs contract.ConfigStore, roster contract.Roster, log *slog.Logger) *Gate {
	return &Gate{configs: configs, roster: roster, log: log}
}

// Check returns the resolved target and the free-text reason, or the typed
// rejection that stops the poll before anything is announced.
//
// Order matters: a blocked initiator is rejected before target resolution is
// even attempted, so AccessDenied wins over an invalid target argument.
func (g *Gate) Check(serverID, initiatorID string, rawArgs []string) (poll.Member, string, error) {
	cfg, err := g.configs.GetServerConfig(serverID)
	if err != nil {
		return poll.Member{}, "", fmt.Errorf("server config lookup: %w", err)
	}

	if !cfg.ModerationEnabled() {
		return poll.Member{}, "", errors.ErrFeatureDisabled
	}

	if len(rawArgs) < 2 {
		return poll.Member{}, "", errors.ErrInvalidUsage
	}

	if cfg.Security.IsBlocked(initiatorID) {
		return poll.Member{}, "", errors.ErrAccessDenied
	}

	// A lookup failure is deliberately folded into "not found": the initiator
	// gets one answer either way. The two causes keep distinguishable log
	// lines for diagnostics.
	target, err := g.roster.ResolveMember(rawArgs[0])
	if err != nil {
		g.log.Error("Roster lookup failed during target resolution", "term", rawArgs[0], "error", err)
		return poll.Member{}, "", errors.ErrTargetNotFound
	}
	if target == nil {
		g.log.Debug("No member matched the target argument", "term", rawArgs[0])
		return poll.Member{}, "", errors.ErrTargetNotFound
	}

	if target.Bot {
		return poll.Member{}, "", errors.ErrTargetIsBot
	}

	reason := strings.TrimSpace(strings.Join(rawArgs[1:], " "))
	return *target, reason, nil
}
