package dto

import "github.com/Anand4756/assessment-Connectverse/internal/domain"

// UserView is the public projection of a user. Password hash and
// timestamps never leave the service.
type UserView struct {
	ID         int64  `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	IsVerified bool   `json:"isVerified"`
}

func NewUserView(u domain.User) UserView {
	return UserView{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		IsVerified: u.IsVerified,
	}
}

type LoginResponse struct {
	Message      string `json:"message"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
}

type UserDetailResponse struct {
	User UserView `json:"user"`
}
