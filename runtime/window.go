package runtime

import (
	"time"

	"votekick-lab/errors"
)

// Window suspends the poll flow until the voting window elapses.
//
// Two independent timers race each other: the primary fires after Duration,
// the safety timer after Duration + SafetyMargin. Whichever settles first
// decides. With an additive margin the safety branch only wins when the
// margin is negative.
//
// The race observes no context: once announced, a poll runs to completion
// and cannot be cancelled early.
type Window struct {
	Duration     time.Duration
	SafetyMargin time.Duration
}

// Wait blocks until the window elapses. It returns ErrWindowStalled only if
// the safety timer wins the race.
func (w Window) Wait() error {
	primary := time.NewTimer(w.Duration)
	defer primary.Stop()
	safety := time.NewTimer(w.Duration + w.SafetyMargin)
	defer safety.Stop()

	select {
	case <-primary.C:
		return nil
	case <-safety.C:
		return errors.ErrWindowStalled
	}
}
