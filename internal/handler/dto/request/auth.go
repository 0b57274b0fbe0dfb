package request

import (
	"fleetbook/internal/domain/member"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *LoginRequest) ToDomain() (member.Credentials, error) {
	return member.NewCredentials(r.Email, r.Password)
}
