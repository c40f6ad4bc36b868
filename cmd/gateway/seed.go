package main

import (
	"github.com/samber/lo"

	"votekick-lab/domain/poll"
	"votekick-lab/repositories"
)

// seedDemoServer provisions one server with moderation enabled and a small
// roster, so the console is usable straight away.
func seedDemoServer(serverID string, configs *repositories.ServerConfigRepository,
	directory *repositories.MemberDirectory) error {

	cfg := poll.ServerConfig{}
	cfg.Features.Experiments.Moderation = true
	cfg.Security.BlockedUsers = []string{"u-muted"}
	if err := configs.PutServerConfig(serverID, cfg); err != nil {
		return err
	}

	info := poll.ServerInfo{
		Name:        "demo hideout",
		OwnerName:   lo.ToPtr("dave"),
		Description: lo.ToPtr("a quiet place to test moderation polls"),
		// Icon intentionally absent: the summary falls back at render time.
	}
	if err := configs.PutServerInfo(serverID, info); err != nil {
		return err
	}

	directory.Add(
		poll.Member{ID: "u-you", DisplayName: "you"},
		poll.Member{ID: "u-alice", DisplayName: "alice"},
		poll.Member{ID: "u-bob", DisplayName: "bob"},
		poll.Member{ID: "u-carol", DisplayName: "carol"},
		poll.Member{ID: "u-dave", DisplayName: "dave"},
		poll.Member{ID: "u-erin", DisplayName: "erin"},
		poll.Member{ID: "u-muted", DisplayName: "muted"},
		poll.Member{ID: "u-helper", DisplayName: "helperbot", Bot: true},
	)
	return nil
}
