package model

import "time"

// Category 分类模型
type Category struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	UserID    uint64    `gorm:"not null" json:"user_id"` // admin who created it
	Title     string    `gorm:"not null;size:100" json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
