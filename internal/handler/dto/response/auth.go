package response

import (
	"azulhomes/internal/usecase"
)

type LoginResponse struct {
	AccessToken string                `json:"accessToken"`
	User        *usecase.AuthUserView `json:"user"`
}
