package model

import "time"

// Post represents a blog post. AuthorID is set once at creation and is
// never reassigned; only the author may update or delete the post.
type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"size:255;not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	Tags      []string  `json:"tags" gorm:"serializer:json"`
	Published bool      `json:"published" gorm:"default:false;index"`
	AuthorID  uint      `json:"author_id" gorm:"not null;index"`
	Author    User      `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
	UpdatedAt time.Time `json:"updated_at"`
}
