package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"solara-auth/internal/domain"
)

type VerificationStore struct{ db *gorm.DB }

func (s *Store) Codes() *VerificationStore { return &VerificationStore{db: s.DB} }

func (vs *VerificationStore) Create(ctx context.Context, vc *domain.VerificationCode) error {
	return vs.db.WithContext(ctx).Create(vc).Error
}

// GetByEmailAndCode matches on the exact (email, code) pair. Codes are not
// globally unique; the same code value may exist for different emails.
func (vs *VerificationStore) GetByEmailAndCode(ctx context.Context, email, code string) (*domain.VerificationCode, error) {
	var vc domain.VerificationCode
	err := vs.db.WithContext(ctx).
		First(&vc, "email = ? AND code = ?", email, code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &vc, nil
}

// DeleteByEmail removes every code row for an email, active or not. Called
// before inserting a fresh code so re-issuance silently invalidates prior
// requests.
func (vs *VerificationStore) DeleteByEmail(ctx context.Context, email string) error {
	return vs.db.WithContext(ctx).
		Where("email = ?", email).
		Delete(&domain.VerificationCode{}).Error
}

func (vs *VerificationStore) Delete(ctx context.Context, vc *domain.VerificationCode) error {
	return vs.db.WithContext(ctx).Delete(vc).Error
}
