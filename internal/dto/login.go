package dto

import "strings"

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return invalid("email", "Email is required")
	}
	if !validEmail(r.Email) {
		return invalid("email", "Email should be valid")
	}
	if r.Password == "" {
		return invalid("password", "Password is required")
	}
	return nil
}
