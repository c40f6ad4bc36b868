package services

import (
	"log/slog"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"votekick-lab/domain/poll"
	"votekick-lab/mocks"
	"votekick-lab/runtime"
)

func TestSummaryService_Render(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	directory := mocks.NewMockServerDirectory(ctrl)
	configs := mocks.NewMockConfigStore(ctrl)
	roster := mocks.NewMockRoster(ctrl)
	registry := runtime.NewRegistry()

	directory.EXPECT().GetServerInfo("srv").Return(poll.ServerInfo{
		Name:      "gopher hideout",
		OwnerName: lo.ToPtr("dave"),
	}, nil).Times(1)

	cfg := poll.ServerConfig{}
	cfg.Features.Experiments.Moderation = true
	cfg.Security.BlockedUsers = []string{"troll-1"}
	configs.EXPECT().GetServerConfig("srv").Return(cfg, nil).Times(1)
	roster.EXPECT().Size().Return(12, nil).Times(1)

	registry.Add(poll.Session{ServerID: "srv", TargetID: "u-1", TargetName: "alice", InitiatorID: "bob"})

	svc := NewSummaryService(directory, configs, roster, registry, slog.Default())
	out, err := svc.Render("srv")

	req.NoError(err)
	req.Contains(out, "gopher hideout")
	req.Contains(out, "dave")
	req.Contains(out, "12")
	req.Contains(out, "enabled")
	req.Contains(out, "alice")
}

func TestSummaryService_OptionalFieldsFallBackAtRenderTime(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	directory := mocks.NewMockServerDirectory(ctrl)
	configs := mocks.NewMockConfigStore(ctrl)
	roster := mocks.NewMockRoster(ctrl)

	// No profile stored at all: name falls back to the server id, the
	// optional fields to n/a.
	directory.EXPECT().GetServerInfo("srv").Return(poll.ServerInfo{}, nil).Times(1)
	configs.EXPECT().GetServerConfig("srv").Return(poll.ServerConfig{}, nil).Times(1)
	roster.EXPECT().Size().Return(0, nil).Times(1)

	svc := NewSummaryService(directory, configs, roster, runtime.NewRegistry(), slog.Default())
	out, err := svc.Render("srv")

	req.NoError(err)
	req.Contains(out, "srv")
	req.Contains(out, "n/a")
	req.Contains(out, "disabled")
}
