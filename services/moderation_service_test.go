package services

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"votekick-lab/domain/poll"
	"votekick-lab/moderation"
	"votekick-lab/observability"
	"votekick-lab/repositories"
	"votekick-lab/runtime"
)

// End-to-end over the real in-memory adapters: badger-free, compressed
// window, votes cast while the poll is open.
func TestModerationService_Votekick_EndToEnd(t *testing.T) {
	req := require.New(t)
	log := slog.Default()

	directory := repositories.NewMemberDirectory(log)
	directory.Add(poll.Member{ID: "u-alice", DisplayName: "alice"})
	directory.Add(poll.Member{ID: "u-bob", DisplayName: "bob"})
	for i := 0; i < 10; i++ {
		directory.Add(poll.Member{ID: fmt.Sprintf("u-%d", i), DisplayName: fmt.Sprintf("member%d", i)})
	}

	board := repositories.NewAnnouncementBoard()
	registry := runtime.NewRegistry()
	metrics := observability.NewPollMetrics()

	filter, err := moderation.NewFilter([]string{"badger"}, '*', log)
	req.NoError(err)

	configs := staticConfigStore{enabled: true}
	engine := runtime.NewEngine(log, configs, directory, board, board, directory,
		&filter, registry, metrics,
		runtime.Settings{Window: 200 * time.Millisecond, SafetyMargin: time.Second, QuorumFraction: 0.5})
	svc := NewModerationService(engine, log)

	// Cast votes while the window is open: 7 yes, 2 no out of 12 members.
	go func() {
		announcementID := waitForAnnouncement(registry, "srv")
		if announcementID == "" {
			return
		}
		for i := 0; i < 7; i++ {
			_ = board.React(announcementID, poll.MarkerYes, fmt.Sprintf("yes-voter-%d", i))
		}
		for i := 0; i < 2; i++ {
			_ = board.React(announcementID, poll.MarkerNo, fmt.Sprintf("no-voter-%d", i))
		}
	}()

	report := svc.Votekick(context.Background(), "srv", "u-bob", SplitArgs("alice keeps spamming links"))

	req.Equal(poll.OutcomePassed, report.Outcome)
	req.Contains(report.Summary, "Yes: 7, No: 2 (Total: 9)")
	req.Equal(6, report.Required)

	// The target is gone and the poll left the registry.
	member, err := directory.ResolveMember("alice")
	req.NoError(err)
	req.Nil(member)
	req.Empty(registry.Active("srv"))
	req.Equal(uint64(1), metrics.Snapshot().Passed)
}

func TestModerationService_Votekick_NobodyVotes(t *testing.T) {
	req := require.New(t)
	log := slog.Default()

	directory := repositories.NewMemberDirectory(log)
	directory.Add(poll.Member{ID: "u-alice", DisplayName: "alice"})
	directory.Add(poll.Member{ID: "u-bob", DisplayName: "bob"})

	board := repositories.NewAnnouncementBoard()
	filter, err := moderation.NewFilter([]string{"badger"}, '*', log)
	req.NoError(err)

	engine := runtime.NewEngine(log, staticConfigStore{enabled: true}, directory, board, board,
		directory, &filter, runtime.NewRegistry(), observability.NewPollMetrics(),
		runtime.Settings{Window: 50 * time.Millisecond, SafetyMargin: time.Second, QuorumFraction: 0.5})
	svc := NewModerationService(engine, log)

	report := svc.Votekick(context.Background(), "srv", "u-bob", SplitArgs("alice afk"))

	req.Equal(poll.OutcomeFailed, report.Outcome)

	// Nobody was removed.
	member, err := directory.ResolveMember("alice")
	req.NoError(err)
	req.NotNil(member)
}

func waitForAnnouncement(registry *runtime.Registry, serverID string) string {
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if active := registry.Active(serverID); len(active) > 0 {
			return active[0].AnnouncementID
		}
		time.Sleep(5 * time.Millisecond)
	}
	return ""
}

// staticConfigStore avoids spinning up badger for engine-level tests.
type staticConfigStore struct {
	enabled bool
	blocked []string
}

func (s staticConfigStore) GetServerConfig(string) (poll.ServerConfig, error) {
	cfg := poll.ServerConfig{}
	cfg.Features.Experiments.Moderation = s.enabled
	cfg.Security.BlockedUsers = s.blocked
	return cfg, nil
}
