package domain

import "time"

type User struct {
	ID            UserID    `gorm:"type:uuid;primaryKey" db:"id" json:"id"`
	Name          string    `gorm:"type:text;not null" db:"name" json:"name"`
	Surname       string    `gorm:"type:text;not null" db:"surname" json:"surname"`
	Email         string    `gorm:"type:text;uniqueIndex:ux_users_email" db:"email" json:"email"`
	PasswordHash  string    `gorm:"type:text;not null" db:"password_hash" json:"-"`
	Role          string    `gorm:"type:text;not null;default:'user'" db:"role" json:"role"`
	EmailVerified bool      `gorm:"not null;default:false" db:"email_verified" json:"emailVerified"`
	CreatedAt     time.Time `gorm:"not null" db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"not null" db:"updated_at" json:"updatedAt"`
}

func (User) TableName() string { return "users" }
