package models

import "time"

// ContentBlock is an editable piece of storefront copy or media (header
// logo, footer text, hero slides), addressed by a stable key.
type ContentBlock struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Key       string    `gorm:"unique;not null" json:"key"`
	ARText    string    `gorm:"type:text" json:"ar_text"`
	FRText    string    `gorm:"type:text" json:"fr_text"`
	Image     string    `json:"image"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SiteSetting struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Key       string    `gorm:"unique;not null" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ContactMessage struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Phone     string    `gorm:"not null" json:"phone"`
	Email     string    `json:"email"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
