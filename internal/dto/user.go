package dto

import (
	"github.com/taskflow-dev/taskflow-api/internal/models"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID       uint64          `json:"id"`
	Username string          `json:"username"`
	Email    string          `json:"email,omitempty"`
	Profile  *models.Profile `json:"profile,omitempty"`
}

// ToUserDTO converts a User model to UserDTO, including the email.
// Intended for the user's own account responses.
func ToUserDTO(user models.User) UserDTO {
	profile := user.Profile
	return UserDTO{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Profile:  &profile,
	}
}

// ToUserSummaryDTO converts a User model to a display summary without the
// email. Used wherever other users are listed (members, creators).
func ToUserSummaryDTO(user models.User) UserDTO {
	profile := user.Profile
	return UserDTO{
		ID:       user.ID,
		Username: user.Username,
		Profile:  &profile,
	}
}
