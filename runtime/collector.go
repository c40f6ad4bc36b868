package runtime

import (
	"fmt"
	"log/slog"

	"votekick-lab/contract"
	"votekick-lab/domain/poll"
	"votekick-lab/errors"
)

// Collector publishes the two vote markers on a freshly posted announcement.
// Setup is all-or-nothing: either marker failing aborts the poll. A partially
// attached marker is not rolled back since the poll never reaches the tally.
type Collector struct {
	reactions contract.Reactions
	log       *slog.Logger
}

func NewCollector(reactions contract.Reactions, log *slog.Logger) *Collector {
	return &Collector{reactions: reactions, log: log}
}

// Publish attaches both markers concurrently and joins the pair.
func (c *Collector) Publish(announcementID string) error {
	markers := []string{poll.MarkerYes, poll.MarkerNo}
	results := make(chan error, len(markers))

	for _, marker := range markers {
		go func(m string) {
			results <- c.reactions.Attach(announcementID, m)
		}(marker)
	}

	var failure error
	for range markers {
		if err := <-results; err != nil && failure == nil {
			failure = err
		}
	}

	if failure != nil {
		c.log.Error("Vote marker attachment failed", "announcement", announcementID, "error", failure)
		return fmt.Errorf("%w: %w", errors.ErrReactionSetup, failure)
	}
	return nil
}
