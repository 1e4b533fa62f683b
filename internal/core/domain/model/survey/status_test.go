package survey_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/survey"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	valid := []survey.Status{
		survey.StatusScheduled, survey.StatusInProgress, survey.StatusCompleted,
		survey.StatusApproved, survey.StatusRejected, survey.StatusCancelled,
	}
	for _, s := range valid {
		require.NoError(t, s.Validate(), s.String())
	}

	require.Error(t, survey.StatusUnknown.Validate())
	require.Error(t, survey.Status(42).Validate())
}

func TestStatus_Transitions(t *testing.T) {
	type transition func(survey.Status) (survey.Status, error)

	start := func(s survey.Status) (survey.Status, error) { return s.Start() }
	complete := func(s survey.Status) (survey.Status, error) { return s.Complete() }
	approve := func(s survey.Status) (survey.Status, error) { return s.Approve() }
	reject := func(s survey.Status) (survey.Status, error) { return s.Reject() }
	reassign := func(s survey.Status) (survey.Status, error) { return s.Reassign() }

	cases := []struct {
		name    string
		from    survey.Status
		apply   transition
		want    survey.Status
		wantErr bool
	}{
		{"scheduled starts", survey.StatusScheduled, start, survey.StatusInProgress, false},
		{"in progress cannot start again", survey.StatusInProgress, start, 0, true},
		{"in progress completes", survey.StatusInProgress, complete, survey.StatusCompleted, false},
		{"scheduled cannot complete", survey.StatusScheduled, complete, 0, true},
		{"completed approves", survey.StatusCompleted, approve, survey.StatusApproved, false},
		{"in progress cannot approve", survey.StatusInProgress, approve, 0, true},
		{"approved re-approves", survey.StatusApproved, approve, survey.StatusApproved, false},
		{"rejected cannot approve", survey.StatusRejected, approve, 0, true},
		{"in progress rejects", survey.StatusInProgress, reject, survey.StatusRejected, false},
		{"completed rejects", survey.StatusCompleted, reject, survey.StatusRejected, false},
		{"approved cannot reject", survey.StatusApproved, reject, 0, true},
		{"rejected reassigns", survey.StatusRejected, reassign, survey.StatusInProgress, false},
		{"completed cannot reassign", survey.StatusCompleted, reassign, 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.apply(tc.from)
			if tc.wantErr {
				require.ErrorIs(t, err, errs.ErrInvalidTransition)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestStatus_Cancel(t *testing.T) {
	cancellable := []survey.Status{
		survey.StatusScheduled, survey.StatusInProgress, survey.StatusCompleted,
		survey.StatusApproved, survey.StatusRejected,
	}
	for _, s := range cancellable {
		got, err := s.Cancel()
		require.NoError(t, err, s.String())
		assert.Equal(t, survey.StatusCancelled, got)
	}

	_, err := survey.StatusCancelled.Cancel()
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, survey.StatusApproved.IsTerminal())
	assert.True(t, survey.StatusCancelled.IsTerminal())
	assert.False(t, survey.StatusCompleted.IsTerminal())
	assert.False(t, survey.StatusRejected.IsTerminal())
}
