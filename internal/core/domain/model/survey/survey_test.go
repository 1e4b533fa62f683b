package survey_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/survey"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScheduledSurvey(t *testing.T) *survey.SiteSurvey {
	t.Helper()
	loc, err := kernel.NewLocation(41.0082, 28.9784)
	require.NoError(t, err)
	s, err := survey.NewSiteSurvey(kernel.NewUUID(), kernel.NewUUID(), loc)
	require.NoError(t, err)
	return s
}

func newCompletedSurvey(t *testing.T, requiresEquipment bool) *survey.SiteSurvey {
	t.Helper()
	s := newScheduledSurvey(t)
	require.NoError(t, s.Start(kernel.NewUUID()))

	var items []*survey.AdditionalCost
	justification := ""
	if requiresEquipment {
		items = []*survey.AdditionalCost{mustCost(t, "antenna", 2, "45.00")}
		justification = "no line of sight from the standard mount"
	}
	require.NoError(t, s.Complete(requiresEquipment, justification, items))
	return s
}

func TestNewSiteSurvey(t *testing.T) {
	s := newScheduledSurvey(t)

	require.NoError(t, s.Validate())
	assert.Equal(t, survey.StatusScheduled, s.Status())
	assert.Nil(t, s.TechnicianID())
	assert.Empty(t, s.CostItems())
	assert.False(t, s.RequiresAdditionalEquipment())
}

func TestSiteSurvey_Start(t *testing.T) {
	s := newScheduledSurvey(t)
	technician := kernel.NewUUID()

	require.NoError(t, s.Start(technician))
	assert.Equal(t, survey.StatusInProgress, s.Status())
	require.NotNil(t, s.TechnicianID())
	assert.True(t, s.TechnicianID().IsEqual(technician))

	require.ErrorIs(t, s.Start(kernel.NewUUID()), errs.ErrInvalidTransition)
}

func TestSiteSurvey_Complete(t *testing.T) {
	t.Run("with equipment", func(t *testing.T) {
		s := newCompletedSurvey(t, true)

		assert.Equal(t, survey.StatusCompleted, s.Status())
		assert.True(t, s.RequiresAdditionalEquipment())
		assert.Len(t, s.CostItems(), 1)
		assert.Equal(t, "90.00", s.Subtotal().StringFixed(2))
	})

	t.Run("without equipment drops any items", func(t *testing.T) {
		s := newScheduledSurvey(t)
		require.NoError(t, s.Start(kernel.NewUUID()))

		items := []*survey.AdditionalCost{mustCost(t, "antenna", 1, "45.00")}
		require.NoError(t, s.Complete(false, "", items))

		assert.False(t, s.RequiresAdditionalEquipment())
		assert.Empty(t, s.CostItems())
	})

	t.Run("equipment without justification fails", func(t *testing.T) {
		s := newScheduledSurvey(t)
		require.NoError(t, s.Start(kernel.NewUUID()))

		err := s.Complete(true, "", nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, survey.StatusInProgress, s.Status())
	})

	t.Run("cannot complete scheduled survey", func(t *testing.T) {
		s := newScheduledSurvey(t)
		require.ErrorIs(t, s.Complete(false, "", nil), errs.ErrInvalidTransition)
	})
}

func TestSiteSurvey_Approve(t *testing.T) {
	t.Run("completed survey approves", func(t *testing.T) {
		s := newCompletedSurvey(t, false)
		actor := kernel.NewUUID()
		now := time.Now()

		require.NoError(t, s.Approve(actor, now))
		assert.True(t, s.IsApproved())
		require.NotNil(t, s.ApprovedBy())
		assert.True(t, s.ApprovedBy().IsEqual(actor))
		require.NotNil(t, s.ApprovedAt())
		assert.Equal(t, now, *s.ApprovedAt())
	})

	t.Run("approved survey re-approves with new reviewer", func(t *testing.T) {
		s := newCompletedSurvey(t, true)
		require.NoError(t, s.Approve(kernel.NewUUID(), time.Now()))

		reviewer := kernel.NewUUID()
		later := time.Now().Add(time.Hour)
		require.NoError(t, s.Approve(reviewer, later))

		assert.True(t, s.IsApproved())
		assert.True(t, s.ApprovedBy().IsEqual(reviewer))
		assert.Equal(t, later, *s.ApprovedAt())
	})

	t.Run("in progress survey cannot approve", func(t *testing.T) {
		s := newScheduledSurvey(t)
		require.NoError(t, s.Start(kernel.NewUUID()))

		require.ErrorIs(t, s.Approve(kernel.NewUUID(), time.Now()), errs.ErrInvalidTransition)
	})
}

func TestSiteSurvey_Reject(t *testing.T) {
	s := newCompletedSurvey(t, true)

	require.ErrorIs(t, s.Reject(""), errs.ErrValueIsRequired)

	require.NoError(t, s.Reject("wrong mounting point measured"))
	assert.Equal(t, survey.StatusRejected, s.Status())
	assert.Equal(t, "wrong mounting point measured", s.RejectionReason())
}

func TestSiteSurvey_Reassign(t *testing.T) {
	t.Run("rejected survey re-enters in progress and keeps items", func(t *testing.T) {
		s := newCompletedSurvey(t, true)
		require.NoError(t, s.Reject("incomplete assessment"))

		newTechnician := kernel.NewUUID()
		require.NoError(t, s.Reassign(newTechnician))

		assert.Equal(t, survey.StatusInProgress, s.Status())
		assert.True(t, s.TechnicianID().IsEqual(newTechnician))
		// Prior findings are retained until the next completion replaces them.
		assert.Len(t, s.CostItems(), 1)
		assert.Nil(t, s.ApprovedBy())
		assert.Nil(t, s.ApprovedAt())
	})

	t.Run("next completion replaces items wholesale", func(t *testing.T) {
		s := newCompletedSurvey(t, true)
		require.NoError(t, s.Reject("incomplete assessment"))
		require.NoError(t, s.Reassign(kernel.NewUUID()))

		replacement := []*survey.AdditionalCost{
			mustCost(t, "extender", 1, "35.00"),
			mustCost(t, "cable", 2, "10.00"),
		}
		require.NoError(t, s.Complete(true, "two floors need coverage", replacement))

		assert.Len(t, s.CostItems(), 2)
		assert.Equal(t, "55.00", s.Subtotal().StringFixed(2))
	})

	t.Run("completed survey cannot be reassigned", func(t *testing.T) {
		s := newCompletedSurvey(t, false)
		require.ErrorIs(t, s.Reassign(kernel.NewUUID()), errs.ErrInvalidTransition)
	})
}

func TestSiteSurvey_Cancel(t *testing.T) {
	s := newCompletedSurvey(t, true)

	require.NoError(t, s.Cancel())
	assert.Equal(t, survey.StatusCancelled, s.Status())
	require.ErrorIs(t, s.Cancel(), errs.ErrInvalidTransition)
}

func TestRestoreSiteSurvey(t *testing.T) {
	loc, err := kernel.NewLocation(41.0082, 28.9784)
	require.NoError(t, err)

	technician := kernel.NewUUID()
	approver := kernel.NewUUID()
	approvedAt := time.Now()
	items := []*survey.AdditionalCost{mustCost(t, "antenna", 2, "45.00")}

	s, err := survey.RestoreSiteSurvey(
		kernel.NewUUID(), kernel.NewUUID(), loc, &technician,
		survey.StatusApproved, true, "no line of sight", items,
		&approver, &approvedAt, "")

	require.NoError(t, err)
	assert.True(t, s.IsApproved())
	assert.Len(t, s.CostItems(), 1)
	assert.Equal(t, "90.00", s.Subtotal().StringFixed(2))
}

func TestSiteSurvey_Validate(t *testing.T) {
	var s survey.SiteSurvey
	require.ErrorIs(t, s.Validate(), survey.ErrSurveyIsNotConstructed)

	var nilSurvey *survey.SiteSurvey
	require.ErrorIs(t, nilSurvey.Validate(), survey.ErrSurveyIsNotConstructed)
}
