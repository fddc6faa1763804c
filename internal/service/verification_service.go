package service

import (
	"context"

	"solara-auth/internal/dto"
)

// VerificationService owns the verification-code lifecycle: issuance with a
// TTL, single-active-code-per-email, and flow-dependent consumption.
// Confirming an email does NOT consume the code (a chained password reset
// may still need it); resetting a password does.
type VerificationService interface {
	RequestVerification(ctx context.Context, r dto.VerifyRequest) (*dto.VerifyResponse, error)
	ConfirmVerification(ctx context.Context, r dto.VerifyConfirmRequest) (*dto.VerifyResponse, error)
	ResetPassword(ctx context.Context, r dto.ResetPasswordRequest) (*dto.VerifyResponse, error)
}
