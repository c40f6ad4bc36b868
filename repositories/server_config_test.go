package repositories

import (
	"log/slog"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"votekick-lab/domain/poll"
)

// SetupTestDB initializes a temporary Badger instance for testing
func SetupTestDB(t *testing.T) (*badger.DB, func()) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)

	return db, func() {
		db.Close()
	}
}

func TestServerConfigRepository_RoundTrip(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()

	repo := NewServerConfigRepository(db, slog.Default())

	cfg := poll.ServerConfig{}
	cfg.Features.Experiments.Moderation = true
	cfg.Security.BlockedUsers = []string{"troll-1", "troll-2"}

	req.NoError(repo.PutServerConfig("srv-1", cfg))

	loaded, err := repo.GetServerConfig("srv-1")
	req.NoError(err)
	req.True(loaded.ModerationEnabled())
	req.True(loaded.Security.IsBlocked("troll-1"))
	req.False(loaded.Security.IsBlocked("alice"))
}

func TestServerConfigRepository_UnknownServerIsDisabled(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()

	repo := NewServerConfigRepository(db, slog.Default())

	cfg, err := repo.GetServerConfig("never-seen")
	req.NoError(err)
	req.False(cfg.ModerationEnabled())
}

func TestServerConfigRepository_ServerInfoOptionalFields(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()

	repo := NewServerConfigRepository(db, slog.Default())

	// Owner present, icon and description absent: absence must survive the
	// round trip as nil, not as empty strings.
	info := poll.ServerInfo{
		Name:      "gopher hideout",
		OwnerName: lo.ToPtr("dave"),
	}
	req.NoError(repo.PutServerInfo("srv-1", info))

	loaded, err := repo.GetServerInfo("srv-1")
	req.NoError(err)
	req.Equal("gopher hideout", loaded.Name)
	req.Equal("dave", *loaded.OwnerName)
	req.Nil(loaded.IconURL)
	req.Nil(loaded.Description)
}
