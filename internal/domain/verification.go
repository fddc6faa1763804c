package domain

import "time"

// VerificationCode is a short-lived secret proving control of an email
// address. At most one row per email is active at any time: issuing a new
// code deletes all prior rows for that email first.
type VerificationCode struct {
	ID        uint      `gorm:"primaryKey" db:"id"`
	Email     string    `gorm:"type:text;index:ix_verification_codes_email" db:"email"`
	Code      string    `gorm:"type:text;not null" db:"code"`
	ExpiresAt time.Time `gorm:"not null" db:"expires_at"`
	CreatedAt time.Time `gorm:"not null" db:"created_at"`
}

func (VerificationCode) TableName() string { return "verification_codes" }
