package nylas

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Onwuagba/Telinga/pkg/httpclient"
)

const apiBase = "https://api.us.nylas.com/v3"

type Client interface {
	SendMessage(ctx context.Context, req SendMessageRequest) (Message, error)
	GetMessage(ctx context.Context, messageID string) (Message, error)
	ListCalendars(ctx context.Context) ([]Calendar, error)
	CreateEvent(ctx context.Context, calendarID string, req CreateEventRequest) (Event, error)
	UpdateEvent(ctx context.Context, calendarID string, eventID string, req UpdateEventRequest) (Event, error)
	CreateWebhook(ctx context.Context, req CreateWebhookRequest) (Webhook, error)
}

type Config struct {
	APIKey  string        `mapstructure:"api_key"`
	BaseURL string        `mapstructure:"base_url"`
	GrantID string        `mapstructure:"grant_id"`
	From    string        `mapstructure:"from"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type Participant struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

type TrackingOptions struct {
	ThreadReplies bool `json:"thread_replies"`
}

type SendMessageRequest struct {
	To              []Participant    `json:"to"`
	ReplyTo         []Participant    `json:"reply_to,omitempty"`
	Subject         string           `json:"subject"`
	Body            string           `json:"body"`
	TrackingOptions *TrackingOptions `json:"tracking_options,omitempty"`
}

type Message struct {
	ID       string `json:"id"`
	ThreadID string `json:"thread_id"`
	Subject  string `json:"subject"`
	Body     string `json:"body"`
}

type Calendar struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IsPrimary bool   `json:"is_primary"`
}

type EventWhen struct {
	StartTime int64 `json:"start_time"`
	EndTime   int64 `json:"end_time"`
}

type CreateEventRequest struct {
	Title string    `json:"title"`
	When  EventWhen `json:"when"`
}

type UpdateEventRequest struct {
	Participants       []Participant `json:"participants"`
	NotifyParticipants bool          `json:"notify_participants"`
}

type Event struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type CreateWebhookRequest struct {
	TriggerTypes               []string `json:"trigger_types"`
	WebhookURL                 string   `json:"webhook_url"`
	Description                string   `json:"description,omitempty"`
	NotificationEmailAddresses []string `json:"notification_email_addresses,omitempty"`
}

type Webhook struct {
	ID            string `json:"id"`
	WebhookSecret string `json:"webhook_secret"`
}

type NylasClient struct {
	cfg    Config
	client httpclient.HTTPClient
}

func NewClient(cfg Config, client httpclient.HTTPClient) Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = apiBase
	}
	return &NylasClient{cfg: cfg, client: client}
}

func (n *NylasClient) SendMessage(ctx context.Context, req SendMessageRequest) (Message, error) {
	endpoint := fmt.Sprintf("%s/grants/%s/messages/send", n.cfg.BaseURL, n.cfg.GrantID)

	var msg Message
	if err := n.post(ctx, endpoint, req, &msg); err != nil {
		return Message{}, err
	}

	return msg, nil
}

func (n *NylasClient) GetMessage(ctx context.Context, messageID string) (Message, error) {
	endpoint := fmt.Sprintf("%s/grants/%s/messages/%s", n.cfg.BaseURL, n.cfg.GrantID, messageID)

	resp, err := n.client.Get(ctx, endpoint, n.authHeaders())
	if err != nil {
		return Message{}, mapTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Message{}, mapStatusError(resp.StatusCode)
	}

	var envelope struct {
		Data Message `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return Message{}, errors.New(ErrorCodeServerError)
	}

	return envelope.Data, nil
}

func (n *NylasClient) ListCalendars(ctx context.Context) ([]Calendar, error) {
	endpoint := fmt.Sprintf("%s/grants/%s/calendars", n.cfg.BaseURL, n.cfg.GrantID)

	resp, err := n.client.Get(ctx, endpoint, n.authHeaders())
	if err != nil {
		return nil, mapTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, mapStatusError(resp.StatusCode)
	}

	var envelope struct {
		Data []Calendar `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, errors.New(ErrorCodeServerError)
	}

	return envelope.Data, nil
}

func (n *NylasClient) CreateEvent(ctx context.Context, calendarID string, req CreateEventRequest) (Event, error) {
	endpoint := fmt.Sprintf("%s/grants/%s/events?calendar_id=%s", n.cfg.BaseURL, n.cfg.GrantID, calendarID)

	var event Event
	if err := n.post(ctx, endpoint, req, &event); err != nil {
		return Event{}, err
	}

	return event, nil
}

func (n *NylasClient) UpdateEvent(ctx context.Context, calendarID string, eventID string, req UpdateEventRequest) (Event, error) {
	endpoint := fmt.Sprintf("%s/grants/%s/events/%s?calendar_id=%s", n.cfg.BaseURL, n.cfg.GrantID, eventID, calendarID)

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(req); err != nil {
		return Event{}, fmt.Errorf("encoding error: %w", err)
	}

	resp, err := n.client.Put(ctx, endpoint, &buf, n.authHeaders())
	if err != nil {
		return Event{}, mapTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Event{}, mapStatusError(resp.StatusCode)
	}

	var envelope struct {
		Data Event `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return Event{}, errors.New(ErrorCodeServerError)
	}

	return envelope.Data, nil
}

func (n *NylasClient) CreateWebhook(ctx context.Context, req CreateWebhookRequest) (Webhook, error) {
	endpoint := fmt.Sprintf("%s/webhooks", n.cfg.BaseURL)

	var webhook Webhook
	if err := n.post(ctx, endpoint, req, &webhook); err != nil {
		return Webhook{}, err
	}

	return webhook, nil
}

func (n *NylasClient) post(ctx context.Context, endpoint string, in interface{}, out interface{}) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(in); err != nil {
		return fmt.Errorf("encoding error: %w", err)
	}

	resp, err := n.client.Post(ctx, endpoint, &buf, n.authHeaders())
	if err != nil {
		return mapTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return mapStatusError(resp.StatusCode)
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return errors.New(ErrorCodeServerError)
	}

	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return errors.New(ErrorCodeServerError)
	}

	return nil
}

func (n *NylasClient) authHeaders() map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + n.cfg.APIKey,
		"Content-Type":  "application/json",
		"Accept":        "application/json",
	}
}

func mapTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return errors.New(ErrorCodeTimeout)
	}

	return errors.New(ErrorCodeNetworkError)
}

func mapStatusError(statusCode int) error {
	switch statusCode {
	case http.StatusNotFound:
		return errors.New(ErrorCodeNotFound)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return errors.New(ErrorCodeSendFailed)
	default:
		return errors.New(ErrorCodeServerError)
	}
}
