package users

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateSignUpNormalizesEmail(t *testing.T) {
	req := &SignUpRequest{Email: "  User@Example.COM ", Password: "hunter22"}
	require.NoError(t, ValidateSignUp(req))
	require.Equal(t, "user@example.com", req.Email)
}

func TestValidateSignUpRejectsBadInput(t *testing.T) {
	require.Error(t, ValidateSignUp(&SignUpRequest{Email: "not-an-email", Password: "hunter22"}))
	require.Error(t, ValidateSignUp(&SignUpRequest{Email: "user@example.com", Password: "short"}))
}

func TestValidateChangePassword(t *testing.T) {
	require.NoError(t, ValidateChangePassword(&ChangePasswordRequest{OldPassword: "hunter22", NewPassword: "hunter23"}))
	require.Error(t, ValidateChangePassword(&ChangePasswordRequest{OldPassword: "", NewPassword: "hunter23"}))
	require.Error(t, ValidateChangePassword(&ChangePasswordRequest{OldPassword: "hunter22", NewPassword: "short"}))
	require.Error(t, ValidateChangePassword(&ChangePasswordRequest{OldPassword: "same-pass", NewPassword: "same-pass"}))
}
