package model

import "time"

// MessageTemplate holds a campaign message with {{field}} placeholders
// bound to customer fields.
type MessageTemplate struct {
	ID         int64     `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	BusinessID int64     `gorm:"column:business_id;index"`
	Body       string    `gorm:"column:body;type:text"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`

	Business Business `gorm:"foreignKey:BusinessID"`
}
