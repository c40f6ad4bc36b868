// Package repositories contains the platform-side adapters behind the
// contract interfaces: the persisted per-server configuration and the
// in-memory member directory and announcement board used by the gateway.
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"

	"votekick-lab/domain/poll"
)

const (
	serverConfigPrefix = "srvcfg:"
	serverInfoPrefix   = "srvinfo:"
)

// ServerConfigRepository persists per-server configuration and profile
// documents in BadgerDB as JSON. Implements contract.ConfigStore and
// contract.ServerDirectory.
type ServerConfigRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewServerConfigRepository(db *badger.DB, log *slog.Logger) *ServerConfigRepository {
	return &ServerConfigRepository{db: db, log: log}
}

// GetServerConfig loads the stored configuration. An unknown server yields
// the zero config, which has moderation disabled: safe by default.
func (r *ServerConfigRepository) GetServerConfig(serverID string) (poll.ServerConfig, error) {
	var cfg poll.ServerConfig
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(serverConfigPrefix + serverID))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &cfg)
		})
	})
	if err == badger.ErrKeyNotFound {
		r.log.Debug("No stored config for server, moderation stays off", "server", serverID)
		return poll.ServerConfig{}, nil
	}
	if err != nil {
		return poll.ServerConfig{}, fmt.Errorf("server config read: %w", err)
	}
	return cfg, nil
}

func (r *ServerConfigRepository) PutServerConfig(serverID string, cfg poll.ServerConfig) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(serverConfigPrefix+serverID), data)
	})
}

// GetServerInfo loads the informational profile for the summary command.
// Unknown servers get an empty profile; the renderer applies fallbacks.
func (r *ServerConfigRepository) GetServerInfo(serverID string) (poll.ServerInfo, error) {
	var info poll.ServerInfo
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(serverInfoPrefix + serverID))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &info)
		})
	})
	if err == badger.ErrKeyNotFound {
		return poll.ServerInfo{}, nil
	}
	if err != nil {
		return poll.ServerInfo{}, fmt.Errorf("server info read: %w", err)
	}
	return info, nil
}

func (r *ServerConfigRepository) PutServerInfo(serverID string, info poll.ServerInfo) error {
	data, err := json.Marshal(info)
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(serverInfoPrefix+serverID), data)
	})
}
