package model

import (
	"time"

	"github.com/google/uuid"
)

// PostModel mirrors the 'posts' table.
type PostModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AuthorID  uuid.UUID `gorm:"type:uuid;not null;index:idx_posts_author"`
	Content   string    `gorm:"type:text;not null"`
	Type      string    `gorm:"type:varchar(32);not null"`
	Likes     int       `gorm:"not null;default:0"`
	Comments  int       `gorm:"not null;default:0"`
	Shares    int       `gorm:"not null;default:0"`
	Tags      []string  `gorm:"serializer:json"`
	PhotoKey  string    `gorm:"type:varchar(255)"`
	CreatedAt time.Time `gorm:"index:idx_posts_created_at"`
	UpdatedAt time.Time

	Author *UserModel `gorm:"foreignKey:AuthorID"`
}

// TableName explicitly sets the table name for GORM.
func (PostModel) TableName() string {
	return "posts"
}

// CommentModel mirrors the 'comments' table.
type CommentModel struct {
	ID             uuid.UUID   `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PostID         uuid.UUID   `gorm:"type:uuid;not null;index:idx_comments_post"`
	AuthorID       uuid.UUID   `gorm:"type:uuid;not null"`
	Content        string      `gorm:"type:text;not null"`
	Likes          int         `gorm:"not null;default:0"`
	MentionedUsers []uuid.UUID `gorm:"serializer:json"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (CommentModel) TableName() string {
	return "comments"
}

// CommentReplyModel mirrors the 'comment_replies' table.
type CommentReplyModel struct {
	ID             uuid.UUID   `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CommentID      uuid.UUID   `gorm:"type:uuid;not null;index:idx_replies_comment"`
	AuthorID       uuid.UUID   `gorm:"type:uuid;not null"`
	Content        string      `gorm:"type:text;not null"`
	MentionedUsers []uuid.UUID `gorm:"serializer:json"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (CommentReplyModel) TableName() string {
	return "comment_replies"
}
