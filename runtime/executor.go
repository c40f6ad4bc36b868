package runtime

import (
	"fmt"
	"log/slog"
	"sync"

	"votekick-lab/contract"
	"votekick-lab/errors"
)

// Executor performs the removal action for one poll exactly once. A fresh
// Executor is created per session; repeated decision evaluation hits the
// same guard and replays the first result instead of removing twice.
type Executor struct {
	membership contract.Membership
	log        *slog.Logger
	once       sync.Once
	result     error
}

func NewExecutor(membership contract.Membership, log *slog.Logger) *Executor {
	return &Executor{membership: membership, log: log}
}

// Remove kicks the member. Failure is terminal and never retried: the vote
// result and the mechanical failure are reported separately upstream.
func (e *Executor) Remove(memberID string) error {
	e.once.Do(func() {
		if err := e.membership.Remove(memberID); err != nil {
			e.log.Error("Removal action failed", "member", memberID, "error", err)
			e.result = fmt.Errorf("%w: %w", errors.ErrActionFailed, err)
			return
		}
		e.log.Info("Member removed by vote", "member", memberID)
	})
	return e.result
}
