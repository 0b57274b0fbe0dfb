//go:build unit

package booking_test

import (
	"testing"

	"fleetbook/internal/domain/booking"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanChargeAndRefund(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()
	allocs := []booking.Allocation{
		{MemberID: alice, Credits: 5},
		{MemberID: bob, Credits: 3},
	}

	charge := booking.PlanCharge(allocs)
	if diff := cmp.Diff([]booking.BalanceDelta{
		{MemberID: alice, Delta: -5},
		{MemberID: bob, Delta: -3},
	}, charge); diff != "" {
		t.Errorf("charge plan mismatch (-want +got):\n%s", diff)
	}

	refund := booking.PlanRefund(allocs)
	if diff := cmp.Diff([]booking.BalanceDelta{
		{MemberID: alice, Delta: 5},
		{MemberID: bob, Delta: 3},
	}, refund); diff != "" {
		t.Errorf("refund plan mismatch (-want +got):\n%s", diff)
	}
}

func TestPlanChargeSkipsZeroShares(t *testing.T) {
	passenger := uuid.New()
	payer := uuid.New()
	allocs := []booking.Allocation{
		{MemberID: payer, Credits: 8},
		{MemberID: passenger, Credits: 0},
	}

	charge := booking.PlanCharge(allocs)
	require.Len(t, charge, 1)
	assert.Equal(t, payer, charge[0].MemberID)
}

func TestPlanEdit(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()
	carol := uuid.New()

	t.Run("identical sets net to nothing", func(t *testing.T) {
		allocs := []booking.Allocation{
			{MemberID: alice, Credits: 5},
			{MemberID: bob, Credits: 3},
		}
		assert.Empty(t, booking.PlanEdit(allocs, allocs))
	})

	t.Run("changed, added and dropped members", func(t *testing.T) {
		oldAllocs := []booking.Allocation{
			{MemberID: alice, Credits: 5},
			{MemberID: bob, Credits: 3},
		}
		newAllocs := []booking.Allocation{
			{MemberID: alice, Credits: 8},
			{MemberID: carol, Credits: 2},
		}

		deltas := booking.PlanEdit(oldAllocs, newAllocs)
		if diff := cmp.Diff([]booking.BalanceDelta{
			{MemberID: alice, Delta: -3}, // 5 refunded, 8 charged
			{MemberID: carol, Delta: -2}, // newly added
			{MemberID: bob, Delta: 3},    // dropped, refunded in full
		}, deltas); diff != "" {
			t.Errorf("edit plan mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("at most one delta per member", func(t *testing.T) {
		oldAllocs := []booking.Allocation{{MemberID: alice, Credits: 4}}
		newAllocs := []booking.Allocation{{MemberID: alice, Credits: 9}}

		deltas := booking.PlanEdit(oldAllocs, newAllocs)
		require.Len(t, deltas, 1)
		assert.Equal(t, -5, deltas[0].Delta)
	})
}

func TestCheckAffordability(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()

	t.Run("create is checked against raw balances", func(t *testing.T) {
		balances := map[uuid.UUID]int{alice: 10, bob: 2}
		err := booking.CheckAffordability(balances, nil, []booking.Allocation{
			{MemberID: alice, Credits: 10},
			{MemberID: bob, Credits: 2},
		})
		assert.NoError(t, err)
	})

	t.Run("one short member rejects the whole set", func(t *testing.T) {
		balances := map[uuid.UUID]int{alice: 10, bob: 2}
		err := booking.CheckAffordability(balances, nil, []booking.Allocation{
			{MemberID: alice, Credits: 1},
			{MemberID: bob, Credits: 3},
		})
		assert.ErrorIs(t, err, booking.ErrInsufficientCredits)
	})

	t.Run("edit counts the old share as refunded first", func(t *testing.T) {
		// Balance 3 with 5 already charged: raising to 8 is exactly
		// affordable because the 5 comes back before the 8 goes out.
		balances := map[uuid.UUID]int{alice: 3}
		oldAllocs := []booking.Allocation{{MemberID: alice, Credits: 5}}
		newAllocs := []booking.Allocation{{MemberID: alice, Credits: 8}}
		assert.NoError(t, booking.CheckAffordability(balances, oldAllocs, newAllocs))
	})

	t.Run("edit beyond the refunded headroom is rejected", func(t *testing.T) {
		balances := map[uuid.UUID]int{alice: 2}
		oldAllocs := []booking.Allocation{{MemberID: alice, Credits: 5}}
		newAllocs := []booking.Allocation{{MemberID: alice, Credits: 8}}
		err := booking.CheckAffordability(balances, oldAllocs, newAllocs)
		assert.ErrorIs(t, err, booking.ErrInsufficientCredits)
	})

	t.Run("member added by the edit gets no headroom", func(t *testing.T) {
		balances := map[uuid.UUID]int{alice: 3, bob: 1}
		oldAllocs := []booking.Allocation{{MemberID: alice, Credits: 5}}
		newAllocs := []booking.Allocation{
			{MemberID: alice, Credits: 5},
			{MemberID: bob, Credits: 2},
		}
		err := booking.CheckAffordability(balances, oldAllocs, newAllocs)
		assert.ErrorIs(t, err, booking.ErrInsufficientCredits)
	})

	t.Run("unknown member", func(t *testing.T) {
		err := booking.CheckAffordability(map[uuid.UUID]int{}, nil, []booking.Allocation{
			{MemberID: alice, Credits: 1},
		})
		assert.ErrorIs(t, err, booking.ErrUnknownMember)
	})
}
