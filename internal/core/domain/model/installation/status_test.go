package installation_test

import (
	"errors"
	"testing"

	"fulfillment/internal/core/domain/model/installation"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Status_Transitions(t *testing.T) {
	tests := []struct {
		name       string
		from       installation.Status
		transition func(installation.Status) (installation.Status, error)
		want       installation.Status
		wantErr    bool
	}{
		{"start pending", installation.StatusPending, installation.Status.Start, installation.StatusInProgress, false},
		{"cannot start in progress", installation.StatusInProgress, installation.Status.Start, 0, true},
		{"cannot start completed", installation.StatusCompleted, installation.Status.Start, 0, true},
		{"complete in progress", installation.StatusInProgress, installation.Status.Complete, installation.StatusCompleted, false},
		{"cannot complete pending", installation.StatusPending, installation.Status.Complete, 0, true},
		{"cannot complete twice", installation.StatusCompleted, installation.Status.Complete, 0, true},
		{"cancel pending", installation.StatusPending, installation.Status.Cancel, installation.StatusCancelled, false},
		{"cancel in progress", installation.StatusInProgress, installation.Status.Cancel, installation.StatusCancelled, false},
		{"cannot cancel completed", installation.StatusCompleted, installation.Status.Cancel, 0, true},
		{"cannot cancel cancelled", installation.StatusCancelled, installation.Status.Cancel, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.transition(tt.from)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, errs.ErrInvalidTransition))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_Status_IsTerminal(t *testing.T) {
	assert.True(t, installation.StatusCompleted.IsTerminal())
	assert.True(t, installation.StatusCancelled.IsTerminal())

	assert.False(t, installation.StatusPending.IsTerminal())
	assert.False(t, installation.StatusInProgress.IsTerminal())
}

func Test_Status_Validate(t *testing.T) {
	assert.NoError(t, installation.StatusPending.Validate())
	assert.Error(t, installation.StatusUnknown.Validate())
	assert.Error(t, installation.Status(42).Validate())
}

func Test_Status_String(t *testing.T) {
	assert.Equal(t, "Pending", installation.StatusPending.String())
	assert.Equal(t, "InProgress", installation.StatusInProgress.String())
	assert.Equal(t, "Unknown", installation.Status(42).String())
}
