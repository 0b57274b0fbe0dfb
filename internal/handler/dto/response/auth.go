package response

import "fleetbook/internal/usecase/queries"

type LoginResponse struct {
	AccessToken string                        `json:"access_token"`
	Member      *queries.AuthorizedMemberView `json:"member"`
}
