package runtime

import (
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"votekick-lab/domain/poll"
	"votekick-lab/errors"
	"votekick-lab/mocks"
)

func TestTally_CountsBothMarkers(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	messaging := mocks.NewMockMessaging(ctrl)
	reactions := mocks.NewMockReactions(ctrl)
	roster := mocks.NewMockRoster(ctrl)

	announcement := poll.Announcement{ID: "ann-1", Content: "vote"}
	messaging.EXPECT().FetchAnnouncement("ann-1").Return(&announcement, nil).Times(1)
	reactions.EXPECT().CountFor(announcement, poll.MarkerYes).Return(7).Times(1)
	reactions.EXPECT().CountFor(announcement, poll.MarkerNo).Return(2).Times(1)
	roster.EXPECT().Size().Return(12, nil).Times(1)

	tally := NewTally(messaging, reactions, roster, slog.Default())
	votes, snapshot, err := tally.Count("ann-1")

	req.NoError(err)
	req.Equal(poll.VoteTally{Yes: 7, No: 2}, votes)
	req.Equal(poll.RosterSnapshot{Size: 12}, snapshot)
}

func TestTally_MissingMarkerCountsZero(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	messaging := mocks.NewMockMessaging(ctrl)
	reactions := mocks.NewMockReactions(ctrl)
	roster := mocks.NewMockRoster(ctrl)

	announcement := poll.Announcement{ID: "ann-1"}
	messaging.EXPECT().FetchAnnouncement("ann-1").Return(&announcement, nil).Times(1)
	// A stripped marker is zero votes for that side, not an error.
	reactions.EXPECT().CountFor(announcement, poll.MarkerYes).Return(0).Times(1)
	reactions.EXPECT().CountFor(announcement, poll.MarkerNo).Return(3).Times(1)
	roster.EXPECT().Size().Return(10, nil).Times(1)

	tally := NewTally(messaging, reactions, roster, slog.Default())
	votes, _, err := tally.Count("ann-1")

	req.NoError(err)
	req.Equal(poll.VoteTally{Yes: 0, No: 3}, votes)
}

func TestTally_AnnouncementGone(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	messaging := mocks.NewMockMessaging(ctrl)
	reactions := mocks.NewMockReactions(ctrl)
	roster := mocks.NewMockRoster(ctrl)

	messaging.EXPECT().FetchAnnouncement("ann-1").Return(nil, nil).Times(1)
	roster.EXPECT().Size().Times(0)

	tally := NewTally(messaging, reactions, roster, slog.Default())
	_, _, err := tally.Count("ann-1")

	req.ErrorIs(err, errors.ErrFetchFailure)
}

func TestTally_RosterUnreachable(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	messaging := mocks.NewMockMessaging(ctrl)
	reactions := mocks.NewMockReactions(ctrl)
	roster := mocks.NewMockRoster(ctrl)

	announcement := poll.Announcement{ID: "ann-1"}
	messaging.EXPECT().FetchAnnouncement("ann-1").Return(&announcement, nil).Times(1)
	reactions.EXPECT().CountFor(announcement, gomock.Any()).Return(1).Times(2)
	roster.EXPECT().Size().Return(0, fmt.Errorf("gateway timeout")).Times(1)

	tally := NewTally(messaging, reactions, roster, slog.Default())
	_, _, err := tally.Count("ann-1")

	req.ErrorIs(err, errors.ErrFetchFailure)
}
