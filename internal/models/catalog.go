package models

import "time"

// Product represents a shop item
type Product struct {
	ID          int64   `gorm:"primaryKey;autoIncrement;column:id"`
	Title       string  `gorm:"type:varchar(255);not null;column:title"`
	Description string  `gorm:"type:text;column:description"`
	Price       float64 `gorm:"type:decimal(10,2);not null;column:price"`
	ImageURL    string  `gorm:"type:text;column:image_url"`
	InStock     bool    `gorm:"not null;default:true;column:in_stock"`
}

// TableName specifies the table name for Product
func (Product) TableName() string {
	return "cutty_products"
}

// Event represents a seasonal community event
type Event struct {
	ID          int64      `gorm:"primaryKey;autoIncrement;column:id"`
	Title       string     `gorm:"type:varchar(255);not null;column:title"`
	Season      string     `gorm:"type:varchar(16);not null;column:season"`
	Description string     `gorm:"type:text;column:description"`
	Hashtag     string     `gorm:"type:varchar(64);column:hashtag"`
	Date        *time.Time `gorm:"column:date"`
	Location    string     `gorm:"type:varchar(255);column:location"`
}

// TableName specifies the table name for Event
func (Event) TableName() string {
	return "cutty_events"
}
