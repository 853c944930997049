package model

import "time"

// DefaultProfilePhotoURL is used until the user uploads their own photo.
const DefaultProfilePhotoURL = "https://cdn.pixabay.com/photo/2015/10/05/22/37/blank-profile-picture-973460_640.png"

// User 用户模型
type User struct {
	ID                uint64    `gorm:"primarykey" json:"id"`
	Email             string    `gorm:"uniqueIndex;not null;size:100" json:"email"`
	Username          string    `gorm:"not null;size:200" json:"username"`
	Password          string    `gorm:"not null;size:255" json:"-"` // bcrypt hash, never serialized
	ProfilePhotoURL   string    `gorm:"size:255" json:"profile_photo_url"`
	ProfilePhotoID    string    `gorm:"size:255" json:"profile_photo_id,omitempty"` // image-host public id, empty for the placeholder
	Bio               string    `gorm:"type:text" json:"bio"`
	IsAdmin           bool      `gorm:"default:false" json:"is_admin"`
	IsAccountVerified bool      `gorm:"default:false" json:"is_account_verified"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
