package v1

type DispatchCampaignRequest struct {
	CustomerIDs []int64 `json:"customer_ids"`
	SendAt      string  `json:"send_at,omitempty"`
}

// NylasEvent is the provider's webhook envelope. Only thread.replied
// events are handled; the root message id correlates the reply with the
// delivery record that started the thread.
type NylasEvent struct {
	Type string         `json:"type"`
	Data NylasEventData `json:"data"`
}

type NylasEventData struct {
	Object NylasEventObject `json:"object"`
}

type NylasEventObject struct {
	MessageID     string `json:"message_id"`
	RootMessageID string `json:"root_message_id"`
	ThreadID      string `json:"thread_id"`
}
