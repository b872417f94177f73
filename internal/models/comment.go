package models

import "time"

// Comment represents a comment on a post. The post reference is not
// enforced with a foreign key; a comment may outlive or predate its post.
type Comment struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id"`
	PostID    int64     `gorm:"not null;index;column:post_id"`
	UserID    string    `gorm:"type:varchar(64);not null;column:user_id"`
	Text      string    `gorm:"type:text;not null;column:text"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime;column:created_at"`
}

// TableName specifies the table name for Comment
func (Comment) TableName() string {
	return "cutty_comments"
}
