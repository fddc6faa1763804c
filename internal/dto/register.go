package dto

import "strings"

type RegisterRequest struct {
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r RegisterRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return invalid("name", "Name is required")
	}
	if strings.TrimSpace(r.Surname) == "" {
		return invalid("surname", "Surname is required")
	}
	if strings.TrimSpace(r.Email) == "" {
		return invalid("email", "Email is required")
	}
	if !validEmail(r.Email) {
		return invalid("email", "Email should be valid")
	}
	if r.Password == "" {
		return invalid("password", "Password is required")
	}
	if len(r.Password) < 8 {
		return invalid("password", "Password must be at least 8 characters long")
	}
	return nil
}

type AuthResponse struct {
	Message       string `json:"message"`
	Email         string `json:"email,omitempty"`
	EmailVerified bool   `json:"emailVerified"`
	Token         string `json:"token,omitempty"`
}
