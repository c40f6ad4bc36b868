package runtime

import (
	goerrors "errors"
	"fmt"

	"votekick-lab/domain/poll"
	"votekick-lab/errors"
)

// Report rendering. Pure formatting over a terminal outcome; no decision
// logic lives here.

func passedReport(session *poll.Session, required int) poll.Report {
	tally := *session.Tally
	return poll.Report{
		Outcome:  poll.OutcomePassed,
		Summary:  fmt.Sprintf("Vote passed: %s has been removed. %s Required: %d.", session.TargetName, countsLine(tally), required),
		Tally:    session.Tally,
		Required: required,
	}
}

func failedReport(session *poll.Session, required int) poll.Report {
	tally := *session.Tally
	return poll.Report{
		Outcome:  poll.OutcomeFailed,
		Summary:  fmt.Sprintf("Vote failed: %s stays. %s Required: %d.", session.TargetName, countsLine(tally), required),
		Tally:    session.Tally,
		Required: required,
	}
}

// actionFailedReport names permissions as the expected cause: the initiator
// must be able to tell "vote failed" apart from "vote passed, kick failed".
func actionFailedReport(session *poll.Session, required int, cause error) poll.Report {
	tally := *session.Tally
	return poll.Report{
		Outcome:  poll.OutcomeActionFailed,
		Summary:  fmt.Sprintf("Vote passed but %s could not be removed, likely missing permissions. %s Required: %d.", session.TargetName, countsLine(tally), required),
		Tally:    session.Tally,
		Required: required,
		Cause:    cause,
	}
}

func abortReport(cause error) poll.Report {
	return poll.Report{
		Outcome: poll.OutcomeAborted,
		Summary: abortSummary(cause),
		Cause:   cause,
	}
}

func abortSummary(cause error) string {
	switch {
	case goerrors.Is(cause, errors.ErrFeatureDisabled),
		goerrors.Is(cause, errors.ErrInvalidUsage),
		goerrors.Is(cause, errors.ErrAccessDenied),
		goerrors.Is(cause, errors.ErrTargetNotFound),
		goerrors.Is(cause, errors.ErrTargetIsBot):
		return cause.Error()
	case goerrors.Is(cause, errors.ErrReactionSetup):
		return "The poll could not be started: vote markers could not be attached."
	case goerrors.Is(cause, errors.ErrFetchFailure):
		return "The poll could not be resolved: announcement or roster unreachable."
	case goerrors.Is(cause, errors.ErrWindowStalled):
		return "The poll window stalled and the vote was discarded."
	default:
		// Uncaught fault: generic message carrying the raw cause for
		// diagnostics.
		return fmt.Sprintf("The poll failed unexpectedly: %v", cause)
	}
}

func countsLine(tally poll.VoteTally) string {
	return fmt.Sprintf("Yes: %d, No: %d (Total: %d).", tally.Yes, tally.No, tally.Total())
}
