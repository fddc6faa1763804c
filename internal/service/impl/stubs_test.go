package impl

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"solara-auth/internal/domain"
)

type stubPasswordService struct {
	hashCalls []string
}

func (s *stubPasswordService) Hash(password string) (string, error) {
	s.hashCalls = append(s.hashCalls, password)
	if password == "" {
		return "", ErrEmptyPassword
	}
	return "hashed:" + password, nil
}

func (s *stubPasswordService) Verify(password, encoded string) bool {
	return encoded == "hashed:"+password
}

type stubTokenService struct {
	mintErr   error
	mintCalls []uuid.UUID
}

func (s *stubTokenService) Mint(user *domain.User) (string, error) {
	s.mintCalls = append(s.mintCalls, user.ID)
	if s.mintErr != nil {
		return "", s.mintErr
	}
	return "token-for-" + user.Email, nil
}

type sentMail struct {
	To   string
	Code string
}

type stubMailer struct {
	sendErr error
	sent    []sentMail
}

func (s *stubMailer) SendVerificationCode(ctx context.Context, to, code string) error {
	s.sent = append(s.sent, sentMail{To: to, Code: code})
	if s.sendErr != nil {
		return s.sendErr
	}
	return nil
}

var errSMTPDown = errors.New("smtp connection refused")

// syncDispatch makes the fire-and-forget mail path run inline so tests can
// observe it deterministically.
func syncDispatch(fn func()) { fn() }
