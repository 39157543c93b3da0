package dto

import (
	"github.com/go-playground/validator/v10"

	"github.com/Anand4756/assessment-Connectverse/internal/domain"
)

var validate = validator.New()

// -------- Core auth --------

// Any missing field collapses to the single fixed message; clients branch
// on the message, not on field names.

type SignupRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r *SignupRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return domain.ErrAllFieldsRequired()
	}
	return nil
}

type LoginRequest struct {
	// Identifier accepts either the account email or the username.
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

func (r *LoginRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return domain.ErrAllFieldsRequired()
	}
	return nil
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// -------- Email verification --------

type VerifyEmailRequest struct {
	Token string `json:"token" validate:"required"`
}

func (r *VerifyEmailRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return domain.ErrInvalidToken()
	}
	return nil
}

// -------- Password reset --------

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required"`
}

func (r *ForgotPasswordRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return domain.ErrEmailRequired()
	}
	return nil
}

type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

func (r *ResetPasswordRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return domain.ErrInvalidOrExpiredToken()
	}
	return nil
}
