package errors

import "fmt"

// Poll rejection and abort kinds. Every kind is terminal for the poll that
// raised it: nothing is retried, each is logged with its cause and rendered
// into a single user-facing line.
var (
	ErrFeatureDisabled = fmt.Errorf("moderation polls are disabled on this server")
	ErrInvalidUsage    = fmt.Errorf("usage: votekick <member> <reason>")
	ErrAccessDenied    = fmt.Errorf("initiator is not allowed to start polls")
	ErrTargetNotFound  = fmt.Errorf("target member not found")
	ErrTargetIsBot     = fmt.Errorf("target member is an automated account")
	ErrReactionSetup   = fmt.Errorf("vote marker setup failed")
	ErrFetchFailure    = fmt.Errorf("announcement or roster unreachable")
	ErrActionFailed    = fmt.Errorf("removal failed after a passing vote")
	ErrWindowStalled   = fmt.Errorf("poll window timer stalled")

	ErrWorkerPanic = fmt.Errorf("worker panic")
	ErrEmptyWords  = fmt.Errorf("no words have been found")
)
