package lifecycle_test

import (
	"summit/internal/domains/booking/lifecycle"
	"summit/shared/constant"
	"summit/shared/failure"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string {
	return &s
}

var parties = lifecycle.Parties{
	CustomerID: "customer-1",
	GuideID:    ptr("guide-1"),
	PorterID:   ptr("porter-1"),
}

var (
	customer  = lifecycle.Actor{ID: "customer-1", Role: constant.RoleCustomer}
	guide     = lifecycle.Actor{ID: "guide-1", Role: constant.RoleGuide}
	porter    = lifecycle.Actor{ID: "porter-1", Role: constant.RolePorter}
	otherGuide = lifecycle.Actor{ID: "guide-2", Role: constant.RoleGuide}
	stranger  = lifecycle.Actor{ID: "customer-2", Role: constant.RoleCustomer}
	admin     = lifecycle.Actor{ID: "admin-1", Role: constant.RoleAdmin}
)

func TestTransition(t *testing.T) {
	tests := []struct {
		name   string
		from   lifecycle.Status
		to     lifecycle.Status
		actor  lifecycle.Actor
		reason string
	}{
		{name: "guide confirms", from: lifecycle.StatusPending, to: lifecycle.StatusConfirmed, actor: guide},
		{name: "porter confirms", from: lifecycle.StatusPending, to: lifecycle.StatusConfirmed, actor: porter},
		{name: "admin confirms", from: lifecycle.StatusPending, to: lifecycle.StatusConfirmed, actor: admin},
		{name: "customer cannot confirm", from: lifecycle.StatusPending, to: lifecycle.StatusConfirmed, actor: customer, reason: failure.ReasonAuthorization},
		{name: "unassigned guide cannot confirm", from: lifecycle.StatusPending, to: lifecycle.StatusConfirmed, actor: otherGuide, reason: failure.ReasonAuthorization},
		{name: "guide starts", from: lifecycle.StatusConfirmed, to: lifecycle.StatusInProgress, actor: guide},
		{name: "guide completes", from: lifecycle.StatusInProgress, to: lifecycle.StatusCompleted, actor: guide},
		{name: "customer cancels pending", from: lifecycle.StatusPending, to: lifecycle.StatusCancelled, actor: customer},
		{name: "customer cancels confirmed", from: lifecycle.StatusConfirmed, to: lifecycle.StatusCancelled, actor: customer},
		{name: "third party cannot cancel", from: lifecycle.StatusPending, to: lifecycle.StatusCancelled, actor: stranger, reason: failure.ReasonAuthorization},
		{name: "guide cannot cancel", from: lifecycle.StatusPending, to: lifecycle.StatusCancelled, actor: guide, reason: failure.ReasonAuthorization},
		{name: "admin refunds completed", from: lifecycle.StatusCompleted, to: lifecycle.StatusRefunded, actor: admin},
		{name: "admin refunds cancelled", from: lifecycle.StatusCancelled, to: lifecycle.StatusRefunded, actor: admin},
		{name: "customer cannot refund", from: lifecycle.StatusCancelled, to: lifecycle.StatusRefunded, actor: customer, reason: failure.ReasonAuthorization},
		{name: "completed to confirmed", from: lifecycle.StatusCompleted, to: lifecycle.StatusConfirmed, actor: admin, reason: failure.ReasonInvalidTransition},
		{name: "in progress cannot cancel", from: lifecycle.StatusInProgress, to: lifecycle.StatusCancelled, actor: customer, reason: failure.ReasonInvalidTransition},
		{name: "pending cannot complete", from: lifecycle.StatusPending, to: lifecycle.StatusCompleted, actor: guide, reason: failure.ReasonInvalidTransition},
		{name: "refunded is terminal", from: lifecycle.StatusRefunded, to: lifecycle.StatusCancelled, actor: admin, reason: failure.ReasonInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := lifecycle.Transition(tt.from, tt.to, tt.actor, parties)

			if tt.reason == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.reason, failure.GetReason(err))
		})
	}
}

func TestAuthorizeProgress(t *testing.T) {
	next, err := lifecycle.AuthorizeProgress(lifecycle.StatusConfirmed, guide, parties)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.StatusInProgress, next)

	next, err = lifecycle.AuthorizeProgress(lifecycle.StatusInProgress, porter, parties)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.StatusInProgress, next)

	_, err = lifecycle.AuthorizeProgress(lifecycle.StatusInProgress, customer, parties)
	assert.True(t, failure.IsReason(err, failure.ReasonAuthorization))

	_, err = lifecycle.AuthorizeProgress(lifecycle.StatusPending, guide, parties)
	assert.True(t, failure.IsReason(err, failure.ReasonInvalidTransition))

	_, err = lifecycle.AuthorizeProgress(lifecycle.StatusCompleted, admin, parties)
	assert.True(t, failure.IsReason(err, failure.ReasonInvalidTransition))
}

func TestStatus(t *testing.T) {
	status, err := lifecycle.ParseStatus("in_progress")
	require.NoError(t, err)
	assert.Equal(t, lifecycle.StatusInProgress, status)

	_, err = lifecycle.ParseStatus("archived")
	assert.Error(t, err)

	assert.True(t, lifecycle.StatusRefunded.IsTerminal())
	assert.False(t, lifecycle.StatusCompleted.IsTerminal())
}

func TestParties_NoAssignedStaff(t *testing.T) {
	solo := lifecycle.Parties{CustomerID: "customer-1"}

	assert.False(t, solo.IsAssignedStaff(guide))
	assert.True(t, failure.IsReason(lifecycle.Transition(lifecycle.StatusPending, lifecycle.StatusConfirmed, guide, solo), failure.ReasonAuthorization))
	assert.NoError(t, lifecycle.Transition(lifecycle.StatusPending, lifecycle.StatusConfirmed, admin, solo))
}
