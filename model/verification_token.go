package model

import "time"

// VerificationToken is a single-use random credential proving control of a
// user record. The same record serves email verification and password reset;
// it is deleted on first successful consumption.
type VerificationToken struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	UserID    uint64    `gorm:"not null;index" json:"user_id"`
	Token     string    `gorm:"not null;size:64" json:"-"` // 32 random bytes, hex encoded
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
