package model

import "time"

// WebhookRegistration records an email-provider webhook subscription and
// the secret used to verify its deliveries.
type WebhookRegistration struct {
	ID          int64     `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	WebhookID   string    `gorm:"column:webhook_id;uniqueIndex"`
	SecretKey   string    `gorm:"column:secret_key"`
	TriggerType string    `gorm:"column:trigger_type"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}
