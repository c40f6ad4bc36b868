package services

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"votekick-lab/contract"
	"votekick-lab/runtime"
)

// SummaryService renders the informational server summary. Pure read-and-
// format: it never mutates anything and holds no poll logic.
type SummaryService struct {
	directory contract.ServerDirectory
	configs   contract.ConfigStore
	roster    contract.Roster
	registry  *runtime.Registry
	log       *slog.Logger
}

func NewSummaryService(
	directory contract.ServerDirectory,
	configs contract.ConfigStore,
	roster contract.Roster,
	registry *runtime.Registry,
	log *slog.Logger,
) *SummaryService {
	return &SummaryService{
		directory: directory,
		configs:   configs,
		roster:    roster,
		registry:  registry,
		log:       log,
	}
}

// Render produces the summary table for one server. Optional profile fields
// (owner, icon, description) fall back to "n/a" here, at render time.
func (s *SummaryService) Render(serverID string) (string, error) {
	info, err := s.directory.GetServerInfo(serverID)
	if err != nil {
		return "", fmt.Errorf("server info: %w", err)
	}
	cfg, err := s.configs.GetServerConfig(serverID)
	if err != nil {
		return "", fmt.Errorf("server config: %w", err)
	}
	size, err := s.roster.Size()
	if err != nil {
		return "", fmt.Errorf("roster size: %w", err)
	}

	name := info.Name
	if name == "" {
		name = serverID
	}

	var buf strings.Builder
	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Field", "Value"})
	table.Append([]string{"Server", name})
	table.Append([]string{"Owner", orFallback(info.OwnerName)})
	table.Append([]string{"Description", orFallback(info.Description)})
	table.Append([]string{"Icon", orFallback(info.IconURL)})
	table.Append([]string{"Members", strconv.Itoa(size)})
	table.Append([]string{"Moderation polls", enabledLabel(cfg.ModerationEnabled())})
	table.Append([]string{"Blocked initiators", strconv.Itoa(len(cfg.Security.BlockedUsers))})

	active := s.registry.Active(serverID)
	table.Append([]string{"Active polls", strconv.Itoa(len(active))})
	for _, session := range active {
		table.Append([]string{"", fmt.Sprintf("vs %s (by %s)", session.TargetName, session.InitiatorID)})
	}

	table.Render()
	return buf.String(), nil
}

func orFallback(value *string) string {
	if value == nil || *value == "" {
		return "n/a"
	}
	return *value
}

func enabledLabel(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}
