package internal

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/dgraph-io/badger/v4"

	"votekick-lab/observability"
)

// InspectRow is one stored entry rendered for the debug endpoint.
type InspectRow struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// StartDebugServer exposes the badger contents and the poll counters over
// plain JSON, for local inspection only. It serves in a goroutine and never
// blocks the caller.
func StartDebugServer(db *badger.DB, metrics *observability.PollMetrics, port int, log *slog.Logger) {
	mux := http.NewServeMux()

	mux.HandleFunc("/inspect", func(w http.ResponseWriter, r *http.Request) {
		prefix := r.URL.Query().Get("prefix")
		if prefix == "" {
			prefix = "srvcfg:"
		}

		var rows []InspectRow
		err := db.View(func(txn *badger.Txn) error {
			opts := badger.DefaultIteratorOptions
			opts.Prefix = []byte(prefix)
			it := txn.NewIterator(opts)
			defer it.Close()

			for it.Rewind(); it.Valid(); it.Next() {
				item := it.Item()
				key := string(item.Key())
				if err := item.Value(func(val []byte) error {
					rows = append(rows, InspectRow{Key: key, Value: string(val)})
					return nil
				}); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"prefix": prefix,
			"items":  rows,
		})
	})

	mux.HandleFunc("/stats", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(metrics.Snapshot())
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("Debug server listening", "port", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Debug server stopped", "error", err)
		}
	}()
}
