package model

import "time"

type Business struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	Username  string    `gorm:"column:username;uniqueIndex"`
	Name      string    `gorm:"column:name"`
	APIKey    string    `gorm:"column:api_key;uniqueIndex"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}
