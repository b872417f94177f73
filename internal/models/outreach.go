package models

import "time"

// NewsletterSignup represents a newsletter subscription
type NewsletterSignup struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id"`
	Email     string    `gorm:"type:varchar(255);not null;column:email"`
	Name      string    `gorm:"type:varchar(64);column:name"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime;column:created_at"`
}

// TableName specifies the table name for NewsletterSignup
func (NewsletterSignup) TableName() string {
	return "cutty_newsletter_signups"
}

// ContactMessage represents a contact form submission
type ContactMessage struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id"`
	Name      string    `gorm:"type:varchar(64);not null;column:name"`
	Email     string    `gorm:"type:varchar(255);not null;column:email"`
	Message   string    `gorm:"type:text;not null;column:message"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime;column:created_at"`
}

// TableName specifies the table name for ContactMessage
func (ContactMessage) TableName() string {
	return "cutty_contact_messages"
}
