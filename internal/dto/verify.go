package dto

import "strings"

type VerifyRequest struct {
	Email string `json:"email"`
}

func (r VerifyRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return invalid("email", "Email is required")
	}
	if !validEmail(r.Email) {
		return invalid("email", "Email should be valid")
	}
	return nil
}

type VerifyConfirmRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

func (r VerifyConfirmRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return invalid("email", "Email is required")
	}
	if !validEmail(r.Email) {
		return invalid("email", "Email should be valid")
	}
	if strings.TrimSpace(r.Code) == "" {
		return invalid("code", "Code is required")
	}
	return nil
}

type ResetPasswordRequest struct {
	Email       string `json:"email"`
	NewPassword string `json:"newPassword"`
	Code        string `json:"code"`
}

func (r ResetPasswordRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return invalid("email", "Email is required")
	}
	if !validEmail(r.Email) {
		return invalid("email", "Email should be valid")
	}
	if r.NewPassword == "" {
		return invalid("newPassword", "Password is required")
	}
	if len(r.NewPassword) < 8 {
		return invalid("newPassword", "Password must be at least 8 characters long")
	}
	if strings.TrimSpace(r.Code) == "" {
		return invalid("code", "Code is required")
	}
	return nil
}

type VerifyResponse struct {
	Message    string `json:"message"`
	IsVerified bool   `json:"isVerified"`
}
