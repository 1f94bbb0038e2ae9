package model

import "time"

type DeliveryStatus string

const (
	DeliveryStatusQueued      DeliveryStatus = "queued"
	DeliveryStatusSending     DeliveryStatus = "sending"
	DeliveryStatusSent        DeliveryStatus = "sent"
	DeliveryStatusDelivered   DeliveryStatus = "delivered"
	DeliveryStatusUndelivered DeliveryStatus = "undelivered"
	DeliveryStatusFailed      DeliveryStatus = "failed"
)

type Channel string

const (
	ChannelSMS   Channel = "sms"
	ChannelEmail Channel = "email"
)

// NonTerminalStatuses are the delivery states the status tracker still
// reconciles against the transport provider.
var NonTerminalStatuses = []DeliveryStatus{
	DeliveryStatusQueued,
	DeliveryStatusSending,
	DeliveryStatusSent,
}

// DeliveryRecord is the persisted outcome of one dispatch attempt. A
// customer may own several records across campaigns; the provider message
// id is the correlation key for inbound reply matching.
type DeliveryRecord struct {
	ID            int64          `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	CustomerID    int64          `gorm:"column:customer_id;index"`
	Channel       Channel        `gorm:"column:channel"`
	ProviderMsgID string         `gorm:"column:provider_msg_id;uniqueIndex"`
	Status        DeliveryStatus `gorm:"column:status;index"`
	AttemptCount  int            `gorm:"column:attempt_count"`
	LastError     *string        `gorm:"column:last_error;type:text"`
	CreatedAt     time.Time      `gorm:"column:created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at"`

	Customer Customer `gorm:"foreignKey:CustomerID"`
}
