package model

import "time"

// Post 帖子模型
type Post struct {
	ID          uint64     `gorm:"primarykey" json:"id"`
	UserID      uint64     `gorm:"not null;index" json:"user_id"`
	Title       string     `gorm:"not null;size:200" json:"title"`
	Description string     `gorm:"type:text;not null" json:"description"`
	Category    string     `gorm:"not null;size:100;index" json:"category"`
	ImageURL    string     `gorm:"size:255" json:"image_url"`
	ImageID     string     `gorm:"size:255" json:"image_id,omitempty"` // image-host public id
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	User        *User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Likes       []PostLike `gorm:"foreignKey:PostID" json:"likes,omitempty"`
}

// PostLike is one membership row in a post's like set. The composite unique
// index gives the set semantics: a user appears at most once per post.
type PostLike struct {
	ID     uint64 `gorm:"primarykey" json:"-"`
	PostID uint64 `gorm:"not null;uniqueIndex:idx_post_user" json:"-"`
	UserID uint64 `gorm:"not null;uniqueIndex:idx_post_user" json:"user_id"`
}
