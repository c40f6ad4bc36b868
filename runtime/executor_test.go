package runtime

import (
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"votekick-lab/errors"
	"votekick-lab/mocks"
)

func TestExecutor_RemovesExactlyOnce(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	membership := mocks.NewMockMembership(ctrl)
	membership.EXPECT().Remove("target-1").Return(nil).Times(1)

	executor := NewExecutor(membership, slog.Default())

	// Repeated decision evaluation must replay the first result, never
	// trigger a second removal.
	for i := 0; i < 5; i++ {
		req.NoError(executor.Remove("target-1"))
	}
}

func TestExecutor_FailureIsTerminalAndNotRetried(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	membership := mocks.NewMockMembership(ctrl)
	membership.EXPECT().Remove("target-1").
		Return(fmt.Errorf("missing permissions")).Times(1)

	executor := NewExecutor(membership, slog.Default())

	first := executor.Remove("target-1")
	req.ErrorIs(first, errors.ErrActionFailed)

	// The second call must not reach Membership again.
	second := executor.Remove("target-1")
	req.ErrorIs(second, errors.ErrActionFailed)
	req.Equal(first, second)
}
