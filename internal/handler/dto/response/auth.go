package response

import "tourdesk/internal/usecase"

type LoginResponse struct {
	AccessToken string                   `json:"access_token"`
	Staff       *usecase.AuthorizedStaff `json:"staff"`
}
