package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"votekick-lab/contract"
	"votekick-lab/domain/poll"
	"votekick-lab/moderation"
	"votekick-lab/observability"
)

// Settings are the injected poll constants. They exist as configuration so
// tests can compress the window instead of waiting a full minute.
type Settings struct {
	Window         time.Duration
	SafetyMargin   time.Duration
	QuorumFraction float64
}

// Engine runs one poll per invocation, start to finish: gate, announce,
// markers, window, tally, decision, action, report. Any stage failure
// short-circuits to an aborted report. There is no state shared across
// invocations besides the informational registry.
type Engine struct {
	log        *slog.Logger
	configs    contract.ConfigStore
	roster     contract.Roster
	messaging  contract.Messaging
	reactions  contract.Reactions
	membership contract.Membership
	filter     *moderation.Filter
	registry   *Registry
	metrics    *observability.PollMetrics
	settings   Settings
}

func NewEngine(
	log *slog.Logger,
	configs contract.ConfigStore,
	roster contract.Roster,
	messaging contract.Messaging,
	reactions contract.Reactions,
	membership contract.Membership,
	filter *moderation.Filter,
	registry *Registry,
	metrics *observability.PollMetrics,
	settings Settings,
) *Engine {
	return &Engine{
		log:        log,
		configs:    configs,
		roster:     roster,
		messaging:  messaging,
		reactions:  reactions,
		membership: membership,
		filter:     filter,
		registry:   registry,
		metrics:    metrics,
		settings:   settings,
	}
}

// Run executes the whole lifecycle for one votekick invocation and always
// returns a renderable report. Uncaught faults anywhere in the flow are
// recovered here, logged, and translated into a generic aborted report.
func (e *Engine) Run(ctx context.Context, serverID, initiatorID string, rawArgs []string) (report poll.Report) {
	log := e.log.With("server", serverID, "initiator", initiatorID)

	defer func() {
		if r := recover(); r != nil {
			log.Error("Poll flow panicked", "cause", r)
			e.metrics.IncrAborted()
			report = abortReport(fmt.Errorf("panic: %v", r))
		}
	}()

	gate := NewGate(e.configs, e.roster, log)
	target, reason, err := gate.Check(serverID, initiatorID, rawArgs)
	if err != nil {
		log.Info("Poll rejected before announcement", "error", err)
		e.metrics.IncrAborted()
		return abortReport(err)
	}

	e.metrics.IncrStarted()

	sanitized, censored := e.filter.Sanitize(reason)
	if len(censored) > 0 {
		log.Warn("Poll reason censored", "words", len(censored), "lang", moderation.Language(reason))
	}

	session := poll.Session{
		ID:          uuid.New(),
		ServerID:    serverID,
		InitiatorID: initiatorID,
		TargetID:    target.ID,
		TargetName:  target.DisplayName,
		Reason:      sanitized,
		StartedAt:   time.Now().UTC(),
		Duration:    e.settings.Window,
	}

	announcementID, err := e.messaging.PostAnnouncement(announcementContent(session))
	if err != nil {
		log.Error("Announcement post failed", "error", err)
		e.metrics.IncrAborted()
		return abortReport(err)
	}
	session.AnnouncementID = announcementID

	e.registry.Add(session)
	defer e.registry.Remove(session)

	collector := NewCollector(e.reactions, log)
	if err := collector.Publish(announcementID); err != nil {
		e.metrics.IncrAborted()
		return abortReport(err)
	}

	log.Info("Poll announced, window open",
		"target", target.DisplayName,
		"announcement", announcementID,
		"window", e.settings.Window)

	window := Window{Duration: e.settings.Window, SafetyMargin: e.settings.SafetyMargin}
	if err := window.Wait(); err != nil {
		log.Error("Poll window did not resolve cleanly", "error", err)
		e.metrics.IncrAborted()
		return abortReport(err)
	}

	tallyEngine := NewTally(e.messaging, e.reactions, e.roster, log)
	tally, roster, err := tallyEngine.Count(announcementID)
	if err != nil {
		e.metrics.IncrAborted()
		return abortReport(err)
	}
	session.Tally = &tally
	session.Roster = &roster

	required := poll.RequiredVotes(roster.Size, e.settings.QuorumFraction)
	log.Info("Poll resolved",
		"yes", tally.Yes, "no", tally.No, "roster", roster.Size, "required", required)

	if !poll.Decide(tally, roster, e.settings.QuorumFraction) {
		e.metrics.IncrFailed()
		return failedReport(&session, required)
	}

	executor := NewExecutor(e.membership, log)
	if err := executor.Remove(target.ID); err != nil {
		e.metrics.IncrActionFailures()
		return actionFailedReport(&session, required, err)
	}

	e.metrics.IncrPassed()
	return passedReport(&session, required)
}

func announcementContent(session poll.Session) string {
	content := fmt.Sprintf("Vote to remove %s started by %s.", session.TargetName, session.InitiatorID)
	if session.Reason != "" {
		content += fmt.Sprintf(" Reason: %s.", session.Reason)
	}
	content += fmt.Sprintf(" React with %s to approve or %s to reject. Window: %s.",
		poll.MarkerYes, poll.MarkerNo, session.Duration)
	return content
}
