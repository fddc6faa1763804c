package service

import "solara-auth/internal/domain"

type TokenService interface {
	Mint(user *domain.User) (string, error)
}
