package request

import (
	"fleetbook/internal/usecase/commands"
)

type CreateBoatRequest struct {
	Name        string `json:"name" binding:"required"`
	HourlyRate  int    `json:"hourly_rate" binding:"min=0"`
	Operational *bool  `json:"operational" binding:"required"`
}

func (r *CreateBoatRequest) ToCommand() commands.CreateBoatCommand {
	return commands.CreateBoatCommand{
		Name:        r.Name,
		HourlyRate:  r.HourlyRate,
		Operational: *r.Operational,
	}
}

type RegisterMemberRequest struct {
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required,min=8"`
	Role          string `json:"role" binding:"required"`
	Standing      string `json:"standing" binding:"required"`
	SkipperRating string `json:"skipper_rating" binding:"required"`
	Credits       int    `json:"credits" binding:"min=0"`
}

func (r *RegisterMemberRequest) ToCommand() commands.RegisterMemberCommand {
	return commands.RegisterMemberCommand{
		Email:         r.Email,
		Password:      r.Password,
		Role:          r.Role,
		Standing:      r.Standing,
		SkipperRating: r.SkipperRating,
		Credits:       r.Credits,
	}
}
