package request

import (
	"time"

	"fleetbook/internal/usecase/commands"

	"github.com/google/uuid"
)

type AllocationRequest struct {
	MemberID uuid.UUID `json:"member_id" binding:"required"`
	Credits  int       `json:"credits" binding:"min=0"`
}

type CreateBookingRequest struct {
	BoatID      uuid.UUID           `json:"boat_id" binding:"required"`
	StartTime   time.Time           `json:"start_time" binding:"required"`
	EndTime     time.Time           `json:"end_time" binding:"required"`
	Allocations []AllocationRequest `json:"allocations" binding:"required,min=1,dive"`
}

func (r *CreateBookingRequest) ToCommand() commands.CreateBookingCommand {
	return commands.CreateBookingCommand{
		BoatID:      r.BoatID,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Allocations: toAllocationInputs(r.Allocations),
	}
}

// UpdateBookingRequest carries the full replacement state, same shape
// as create.
type UpdateBookingRequest struct {
	BoatID      uuid.UUID           `json:"boat_id" binding:"required"`
	StartTime   time.Time           `json:"start_time" binding:"required"`
	EndTime     time.Time           `json:"end_time" binding:"required"`
	Allocations []AllocationRequest `json:"allocations" binding:"required,min=1,dive"`
}

func (r *UpdateBookingRequest) ToCommand() commands.UpdateBookingCommand {
	return commands.UpdateBookingCommand{
		BoatID:      r.BoatID,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Allocations: toAllocationInputs(r.Allocations),
	}
}

func toAllocationInputs(reqs []AllocationRequest) []commands.AllocationInput {
	inputs := make([]commands.AllocationInput, len(reqs))
	for i, a := range reqs {
		inputs[i] = commands.AllocationInput{MemberID: a.MemberID, Credits: a.Credits}
	}
	return inputs
}
