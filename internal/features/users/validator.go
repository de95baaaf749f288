package users

import (
	"errors"
	"strings"

	"github.com/amestri/cineshelf/internal/pkg/validator"
)

func ValidateSignUp(req *SignUpRequest) error {
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	if !validator.IsValidEmail(req.Email) {
		return errors.New("a valid email is required")
	}
	if len(req.Password) < 6 {
		return errors.New("password must be at least 6 characters")
	}
	return nil
}

func ValidateSignIn(req *SignInRequest) error {
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	if req.Email == "" || req.Password == "" {
		return errors.New("email and password are required")
	}
	return nil
}

func ValidateChangePassword(req *ChangePasswordRequest) error {
	if req.OldPassword == "" {
		return errors.New("old password is required")
	}
	if len(req.NewPassword) < 6 {
		return errors.New("new password must be at least 6 characters")
	}
	if req.NewPassword == req.OldPassword {
		return errors.New("new password must differ from the old one")
	}
	return nil
}
