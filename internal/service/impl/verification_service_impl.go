package impl

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"solara-auth/internal/domain"
	"solara-auth/internal/dto"
	"solara-auth/internal/observability/metrics"
	"solara-auth/internal/service"
	"solara-auth/internal/store"
)

var _ service.VerificationService = (*VerificationServiceImpl)(nil)

// codeSpace bounds the random draw: 6 decimal digits, 000000–999999.
const codeSpace = 1000000

type VerificationServiceImpl struct {
	Store     dataStore
	Passwords service.PasswordService
	Mailer    service.EmailService
	CodeTTL   time.Duration

	now      func() time.Time
	dispatch func(func())
}

func NewVerificationServiceImpl(st *store.Store, passwords service.PasswordService, mailer service.EmailService, codeTTL time.Duration) *VerificationServiceImpl {
	return &VerificationServiceImpl{
		Store:     gormStoreAdapter{store: st},
		Passwords: passwords,
		Mailer:    mailer,
		CodeTTL:   codeTTL,
	}
}

// RequestVerification issues a fresh code for an existing account. Prior
// codes for the email are deleted in the same transaction as the insert, so
// re-issuance silently invalidates earlier requests (last write wins). The
// email itself is dispatched after commit and never blocks or fails the call.
func (s *VerificationServiceImpl) RequestVerification(ctx context.Context, r dto.VerifyRequest) (*dto.VerifyResponse, error) {
	result := "success"
	defer func() {
		metrics.VerificationRequestsTotal.WithLabelValues(result).Inc()
	}()

	email := r.Email

	if _, err := s.Store.Users().GetByEmail(ctx, email); err != nil {
		result = "failure"
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}

	code, err := generateCode()
	if err != nil {
		result = "failure"
		return nil, err
	}

	err = s.Store.WithTx(ctx, func(tx storeTx) error {
		if err := tx.Codes().DeleteByEmail(ctx, email); err != nil {
			return err
		}
		return tx.Codes().Create(ctx, &domain.VerificationCode{
			Email:     email,
			Code:      code,
			ExpiresAt: s.nowTime().Add(s.CodeTTL),
		})
	})
	if err != nil {
		result = "failure"
		return nil, err
	}

	// Fire and forget: a delivery fault is observed, never surfaced to the
	// caller, and never invalidates the already-committed code.
	s.dispatchFn()(func() {
		if err := s.Mailer.SendVerificationCode(context.Background(), email, code); err != nil {
			metrics.EmailDeliveryFailuresTotal.WithLabelValues().Inc()
			slog.Error("verification email delivery failed", "email", email, "error", err)
		}
	})

	return &dto.VerifyResponse{
		Message: fmt.Sprintf("Verification code sent to %s", email),
	}, nil
}

// ConfirmVerification marks the account's email verified. The code row is
// deliberately NOT deleted here: a forgot-password flow confirms first and
// then resets with the same code, which is where consumption happens.
func (s *VerificationServiceImpl) ConfirmVerification(ctx context.Context, r dto.VerifyConfirmRequest) (*dto.VerifyResponse, error) {
	result := "success"
	defer func() {
		metrics.VerificationConfirmsTotal.WithLabelValues(result).Inc()
	}()

	if _, err := s.checkValidCode(ctx, r.Email, r.Code); err != nil {
		result = "failure"
		return nil, err
	}

	user, err := s.Store.Users().GetByEmail(ctx, r.Email)
	switch {
	case errors.Is(err, store.ErrRecordNotFound):
		// Code checked out but the account is gone; nothing to flag.
	case err != nil:
		result = "failure"
		return nil, err
	default:
		if err := s.Store.Users().SetEmailVerified(ctx, user.ID); err != nil {
			result = "failure"
			return nil, err
		}
	}

	slog.Info("email verified", "email", r.Email)

	return &dto.VerifyResponse{
		Message:    "Email verified successfully.",
		IsVerified: true,
	}, nil
}

// ResetPassword overwrites the account's password hash after validating the
// code, then deletes the code row: single-use semantics end here. Hash
// update and code consumption commit together.
func (s *VerificationServiceImpl) ResetPassword(ctx context.Context, r dto.ResetPasswordRequest) (*dto.VerifyResponse, error) {
	result := "success"
	defer func() {
		metrics.PasswordResetsTotal.WithLabelValues(result).Inc()
	}()

	vc, err := s.checkValidCode(ctx, r.Email, r.Code)
	if err != nil {
		result = "failure"
		return nil, err
	}

	user, err := s.Store.Users().GetByEmail(ctx, r.Email)
	if err != nil {
		result = "failure"
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	hash, err := s.Passwords.Hash(r.NewPassword)
	if err != nil {
		result = "failure"
		return nil, err
	}

	err = s.Store.WithTx(ctx, func(tx storeTx) error {
		if err := tx.Users().UpdatePasswordHash(ctx, user.ID, hash); err != nil {
			return err
		}
		return tx.Codes().Delete(ctx, vc)
	})
	if err != nil {
		result = "failure"
		return nil, err
	}

	slog.Info("password reset", "email", r.Email)

	return &dto.VerifyResponse{
		Message:    "Password has been reset successfully.",
		IsVerified: true,
	}, nil
}

// checkValidCode looks up the exact (email, code) pair and enforces expiry.
// A code is valid only while now < expiresAt. An expired row is deleted as a
// side effect before the error is returned; the delete runs outside any
// caller transaction so the cleanup sticks even though the operation fails.
func (s *VerificationServiceImpl) checkValidCode(ctx context.Context, email, code string) (*domain.VerificationCode, error) {
	vc, err := s.Store.Codes().GetByEmailAndCode(ctx, email, code)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCode
		}
		return nil, err
	}
	if !vc.ExpiresAt.After(s.nowTime()) {
		if err := s.Store.Codes().Delete(ctx, vc); err != nil {
			return nil, err
		}
		return nil, domain.ErrCodeExpired
	}
	return vc, nil
}

// generateCode draws uniformly from the 6-digit space. The zero-padded
// format matters: 1234 must come out as "001234".
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeSpace))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func (s *VerificationServiceImpl) nowTime() time.Time {
	if s.now != nil {
		return s.now()
	}
	return time.Now().UTC()
}

func (s *VerificationServiceImpl) dispatchFn() func(func()) {
	if s.dispatch != nil {
		return s.dispatch
	}
	return func(fn func()) { go fn() }
}
