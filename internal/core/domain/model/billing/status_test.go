package billing_test

import (
	"errors"
	"testing"

	"fulfillment/internal/core/domain/model/billing"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Status_Transitions(t *testing.T) {
	tests := []struct {
		name       string
		from       billing.Status
		transition func(billing.Status) (billing.Status, error)
		want       billing.Status
		wantErr    bool
	}{
		{"send draft for approval", billing.StatusDraft, billing.Status.SendForApproval, billing.StatusPendingApproval, false},
		{"cannot re-send pending", billing.StatusPendingApproval, billing.Status.SendForApproval, 0, true},
		{"approve pending", billing.StatusPendingApproval, billing.Status.Approve, billing.StatusApproved, false},
		{"cannot approve draft", billing.StatusDraft, billing.Status.Approve, 0, true},
		{"cannot approve twice", billing.StatusApproved, billing.Status.Approve, 0, true},
		{"cannot approve rejected", billing.StatusRejected, billing.Status.Approve, 0, true},
		{"reject pending", billing.StatusPendingApproval, billing.Status.Reject, billing.StatusRejected, false},
		{"cannot reject approved", billing.StatusApproved, billing.Status.Reject, 0, true},
		{"mark approved as paid", billing.StatusApproved, billing.Status.MarkPaid, billing.StatusPaid, false},
		{"cannot pay pending", billing.StatusPendingApproval, billing.Status.MarkPaid, 0, true},
		{"cannot pay rejected", billing.StatusRejected, billing.Status.MarkPaid, 0, true},
		{"cancel draft", billing.StatusDraft, billing.Status.Cancel, billing.StatusCancelled, false},
		{"cancel pending", billing.StatusPendingApproval, billing.Status.Cancel, billing.StatusCancelled, false},
		{"cancel approved", billing.StatusApproved, billing.Status.Cancel, billing.StatusCancelled, false},
		{"cannot cancel paid", billing.StatusPaid, billing.Status.Cancel, 0, true},
		{"cannot cancel cancelled", billing.StatusCancelled, billing.Status.Cancel, 0, true},
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
	assert.True(t, billing.StatusPaid.IsTerminal())
	assert.True(t, billing.StatusRejected.IsTerminal())
	assert.True(t, billing.StatusCancelled.IsTerminal())

	assert.False(t, billing.StatusDraft.IsTerminal())
	assert.False(t, billing.StatusPendingApproval.IsTerminal())
	assert.False(t, billing.StatusApproved.IsTerminal())
}

func Test_Status_Validate(t *testing.T) {
	assert.NoError(t, billing.StatusPendingApproval.Validate())
	assert.Error(t, billing.StatusUnknown.Validate())
	assert.Error(t, billing.Status(99).Validate())
}

func Test_Status_String(t *testing.T) {
	assert.Equal(t, "PendingApproval", billing.StatusPendingApproval.String())
	assert.Equal(t, "Paid", billing.StatusPaid.String())
	assert.Equal(t, "Unknown", billing.Status(99).String())
}
