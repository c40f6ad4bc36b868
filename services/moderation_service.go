// Package services exposes the command-facing surface: the votekick entry
// point and the informational server summary. Both are thin over the runtime
// engine and the collaborator adapters.
package services

import (
	"context"
	"log/slog"
	"strings"

	"votekick-lab/domain/poll"
	"votekick-lab/runtime"
)

type IModerationService interface {
	Votekick(ctx context.Context, serverID, initiatorID string, rawArgs []string) poll.Report
}

// ModerationService runs one poll per invocation. The command layer hands in
// plain strings and gets back a renderable report; everything in between is
// the engine's business.
type ModerationService struct {
	engine *runtime.Engine
	log    *slog.Logger
}

func NewModerationService(engine *runtime.Engine, log *slog.Logger) *ModerationService {
	return &ModerationService{engine: engine, log: log}
}

func (s *ModerationService) Votekick(ctx context.Context, serverID, initiatorID string, rawArgs []string) poll.Report {
	report := s.engine.Run(ctx, serverID, initiatorID, rawArgs)
	s.log.Info("Votekick resolved",
		"server", serverID,
		"initiator", initiatorID,
		"outcome", report.Outcome)
	return report
}

// SplitArgs tokenizes a raw command tail the same way the gateway does:
// whitespace-separated, empty tokens dropped.
func SplitArgs(raw string) []string {
	return strings.Fields(raw)
}
