package impl

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"solara-auth/internal/domain"
	"solara-auth/internal/dto"
	"solara-auth/internal/observability/metrics"
	"solara-auth/internal/service"
	"solara-auth/internal/store"
)

var _ service.AuthService = (*AuthServiceImpl)(nil)

const defaultRole = "user"

type AuthServiceImpl struct {
	Store     dataStore
	Passwords service.PasswordService
	Tokens    service.TokenService

	now func() time.Time
}

func NewAuthServiceImpl(st *store.Store, passwords service.PasswordService, tokens service.TokenService) *AuthServiceImpl {
	return &AuthServiceImpl{
		Store:     gormStoreAdapter{store: st},
		Passwords: passwords,
		Tokens:    tokens,
	}
}

func (a *AuthServiceImpl) Register(ctx context.Context, r dto.RegisterRequest) (*dto.AuthResponse, error) {
	result := "success"
	defer func() {
		metrics.RegistrationsTotal.WithLabelValues(result).Inc()
	}()

	hash, err := a.Passwords.Hash(r.Password)
	if err != nil {
		result = "failure"
		return nil, err
	}

	now := a.nowTime()
	user := &domain.User{
		ID:            uuid.New(),
		Name:          r.Name,
		Surname:       r.Surname,
		Email:         r.Email,
		PasswordHash:  hash,
		Role:          defaultRole,
		EmailVerified: false, // stays false until ConfirmVerification succeeds
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err = a.Store.WithTx(ctx, func(tx storeTx) error {
		taken, err := tx.Users().ExistsByEmail(ctx, r.Email)
		if err != nil {
			return err
		}
		if taken {
			return domain.ErrEmailTaken
		}
		return tx.Users().Create(ctx, user)
	})
	if err != nil {
		result = "failure"
		return nil, err
	}

	token, err := a.Tokens.Mint(user)
	if err != nil {
		result = "failure"
		return nil, err
	}

	slog.Info("user registered", "user_id", user.ID, "email", user.Email)

	return &dto.AuthResponse{
		Message: "User registered successfully",
		Email:   user.Email,
		Token:   token,
	}, nil
}

// Login authenticates by password. An unknown email and a wrong password are
// indistinguishable in the response. An unverified account is not an error:
// the caller gets a token-less response and routes to verification.
func (a *AuthServiceImpl) Login(ctx context.Context, r dto.LoginRequest) (*dto.AuthResponse, error) {
	result := "success"
	defer func() {
		metrics.LoginsTotal.WithLabelValues(result).Inc()
	}()

	user, err := a.Store.Users().GetByEmail(ctx, r.Email)
	if err != nil {
		result = "failure"
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !a.Passwords.Verify(r.Password, user.PasswordHash) {
		result = "failure"
		return nil, domain.ErrInvalidCredentials
	}

	if !user.EmailVerified {
		result = "unverified"
		return &dto.AuthResponse{
			Message:       "Email not verified",
			Email:         user.Email,
			EmailVerified: false,
		}, nil
	}

	token, err := a.Tokens.Mint(user)
	if err != nil {
		result = "failure"
		return nil, err
	}

	slog.Info("user logged in", "user_id", user.ID)

	return &dto.AuthResponse{
		Message:       "Login successful",
		Email:         user.Email,
		EmailVerified: true,
		Token:         token,
	}, nil
}

func (a *AuthServiceImpl) nowTime() time.Time {
	if a.now != nil {
		return a.now()
	}
	return time.Now().UTC()
}
