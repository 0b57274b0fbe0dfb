package booking

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrInsufficientCredits = errors.New("member does not have enough credits")
	ErrUnknownMember       = errors.New("allocation references unknown member")
)

// BalanceDelta is a single pending write to one member's credit
// balance. Positive credits the member (refund), negative charges.
// A plan carries at most one delta per member, so applying it in any
// order is safe and each balance is written at most once.
type BalanceDelta struct {
	MemberID uuid.UUID
	Delta    int
}

// PlanCharge turns a booking's allocations into charge deltas.
func PlanCharge(allocs []Allocation) []BalanceDelta {
	deltas := make([]BalanceDelta, 0, len(allocs))
	for _, a := range allocs {
		if a.Credits == 0 {
			continue
		}
		deltas = append(deltas, BalanceDelta{MemberID: a.MemberID, Delta: -a.Credits})
	}
	return deltas
}

// PlanRefund reverses a booking's allocations in full.
func PlanRefund(allocs []Allocation) []BalanceDelta {
	deltas := make([]BalanceDelta, 0, len(allocs))
	for _, a := range allocs {
		if a.Credits == 0 {
			continue
		}
		deltas = append(deltas, BalanceDelta{MemberID: a.MemberID, Delta: a.Credits})
	}
	return deltas
}

// PlanEdit reconciles an edit: each member kept across the edit gets a
// single netted delta (refund of the old share against the charge of
// the new), members added get a plain charge, and members dropped get
// their old share refunded. Zero net deltas are omitted.
func PlanEdit(oldAllocs, newAllocs []Allocation) []BalanceDelta {
	oldByMember := make(map[uuid.UUID]int, len(oldAllocs))
	for _, a := range oldAllocs {
		oldByMember[a.MemberID] = a.Credits
	}

	deltas := make([]BalanceDelta, 0, len(newAllocs)+len(oldAllocs))
	for _, a := range newAllocs {
		old, kept := oldByMember[a.MemberID]
		if kept {
			delete(oldByMember, a.MemberID)
		}
		if net := old - a.Credits; net != 0 {
			deltas = append(deltas, BalanceDelta{MemberID: a.MemberID, Delta: net})
		}
	}

	// Dropped members are refunded; ordering follows the old list so
	// the plan is deterministic.
	for _, a := range oldAllocs {
		if old, dropped := oldByMember[a.MemberID]; dropped && old != 0 {
			deltas = append(deltas, BalanceDelta{MemberID: a.MemberID, Delta: old})
		}
	}
	return deltas
}

// CheckAffordability verifies every new allocation fits within the
// member's balance, counting the matched old allocation as notionally
// refunded first. It must run over the whole member set before any
// balance is mutated; one failure rejects the entire operation.
func CheckAffordability(balances map[uuid.UUID]int, oldAllocs, newAllocs []Allocation) error {
	oldByMember := make(map[uuid.UUID]int, len(oldAllocs))
	for _, a := range oldAllocs {
		oldByMember[a.MemberID] = a.Credits
	}

	for _, a := range newAllocs {
		balance, known := balances[a.MemberID]
		if !known {
			return ErrUnknownMember
		}
		if balance+oldByMember[a.MemberID] < a.Credits {
			return ErrInsufficientCredits
		}
	}
	return nil
}
