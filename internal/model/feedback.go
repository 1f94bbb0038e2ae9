package model

import "time"

type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// Feedback is an inbound customer reply. Sentiment stays null until the
// classifier has run.
type Feedback struct {
	ID         int64      `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	CustomerID int64      `gorm:"column:customer_id;index"`
	Message    string     `gorm:"column:message;type:text"`
	Source     Channel    `gorm:"column:source"`
	Sentiment  *Sentiment `gorm:"column:sentiment"`
	CreatedAt  time.Time  `gorm:"column:created_at"`
	UpdatedAt  time.Time  `gorm:"column:updated_at"`

	Customer Customer `gorm:"foreignKey:CustomerID"`
}
