package service

import "time"

// DispatchCommand asks the dispatch worker to notify one customer. The
// CSV upload collaborator enqueues one of these per customer row.
type DispatchCommand struct {
	CustomerID int64      `json:"customer_id"`
	SendAt     *time.Time `json:"send_at,omitempty"`
}

type SMSReplyCommand struct {
	From  string
	Body  string
	Email string
}

type EmailReplyCommand struct {
	RootMessageID string
	MessageID     string
}

type IngestFeedbackResponse struct {
	FeedbackID int64
	Sentiment  string
}
