package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// StringList stores a list of strings as a JSON text column
type StringList []string

// Value implements driver.Valuer
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type for StringList: %T", value)
	}
}

// Post represents a community post
type Post struct {
	ID        int64      `gorm:"primaryKey;autoIncrement;column:id"`
	UserID    string     `gorm:"type:varchar(64);not null;column:user_id"`
	Caption   string     `gorm:"type:text;not null;column:caption"`
	ImageURL  string     `gorm:"type:text;column:image_url"`
	Hashtags  StringList `gorm:"type:text;column:hashtags"`
	Stage     string     `gorm:"type:varchar(32);column:stage"`
	Cheers    int64      `gorm:"not null;default:0;column:cheers"`
	CreatedAt time.Time  `gorm:"not null;autoCreateTime;column:created_at"`
}

// TableName specifies the table name for Post
func (Post) TableName() string {
	return "cutty_posts"
}
