package v1

type DispatchCampaignResponse struct {
	Queued int `json:"queued"`
	Total  int `json:"total"`
}

type FeedbackReceivedResponse struct {
	Status     string `json:"status"`
	FeedbackID int64  `json:"feedback_id"`
}
