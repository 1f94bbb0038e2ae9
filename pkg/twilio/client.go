package twilio

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Onwuagba/Telinga/pkg/httpclient"
)

const apiBase = "https://api.twilio.com/2010-04-01"

type Client interface {
	SendSMS(ctx context.Context, to string, body string) (Message, error)
	FetchMessage(ctx context.Context, sid string) (Message, error)
	CreateCall(ctx context.Context, to string, twiml string) (Call, error)
}

type Config struct {
	AccountSID string        `mapstructure:"account_sid"`
	AuthToken  string        `mapstructure:"auth_token"`
	FromNumber string        `mapstructure:"from_number"`
	BaseURL    string        `mapstructure:"base_url"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

type Message struct {
	SID    string `json:"sid"`
	Status string `json:"status"`
	To     string `json:"to"`
	From   string `json:"from"`
}

type Call struct {
	SID    string `json:"sid"`
	Status string `json:"status"`
}

type TwilioClient struct {
	cfg    Config
	client httpclient.HTTPClient
}

func NewClient(cfg Config, client httpclient.HTTPClient) Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = apiBase
	}
	return &TwilioClient{cfg: cfg, client: client}
}

func (t *TwilioClient) SendSMS(ctx context.Context, to string, body string) (Message, error) {
	if !strings.HasPrefix(to, "+") {
		to = "+" + to
	}

	form := url.Values{}
	form.Set("To", to)
	form.Set("From", t.cfg.FromNumber)
	form.Set("Body", body)

	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", t.cfg.BaseURL, t.cfg.AccountSID)

	var msg Message
	if err := t.postForm(ctx, endpoint, form, &msg); err != nil {
		return Message{}, err
	}

	return msg, nil
}

func (t *TwilioClient) FetchMessage(ctx context.Context, sid string) (Message, error) {
	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages/%s.json", t.cfg.BaseURL, t.cfg.AccountSID, sid)

	resp, err := t.client.Get(ctx, endpoint, t.authHeaders())
	if err != nil {
		return Message{}, mapTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Message{}, mapStatusError(resp.StatusCode)
	}

	var msg Message
	if err := json.NewDecoder(resp.Body).Decode(&msg); err != nil {
		return Message{}, errors.New(ErrorCodeServerError)
	}

	return msg, nil
}

func (t *TwilioClient) CreateCall(ctx context.Context, to string, twiml string) (Call, error) {
	form := url.Values{}
	form.Set("To", to)
	form.Set("From", t.cfg.FromNumber)
	form.Set("Twiml", twiml)

	endpoint := fmt.Sprintf("%s/Accounts/%s/Calls.json", t.cfg.BaseURL, t.cfg.AccountSID)

	var call Call
	if err := t.postForm(ctx, endpoint, form, &call); err != nil {
		return Call{}, err
	}

	return call, nil
}

func (t *TwilioClient) postForm(ctx context.Context, endpoint string, form url.Values, out interface{}) error {
	resp, err := t.client.PostForm(ctx, endpoint, form, t.authHeaders())
	if err != nil {
		return mapTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return mapStatusError(resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.New(ErrorCodeServerError)
	}

	return nil
}

func (t *TwilioClient) authHeaders() map[string]string {
	creds := base64.StdEncoding.EncodeToString([]byte(t.cfg.AccountSID + ":" + t.cfg.AuthToken))
	return map[string]string{"Authorization": "Basic " + creds}
}

func mapTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return errors.New(ErrorCodeTimeout)
	}

	return errors.New(ErrorCodeNetworkError)
}

func mapStatusError(statusCode int) error {
	switch statusCode {
	case http.StatusBadRequest, http.StatusNotFound:
		return errors.New(ErrorCodeInvalidNumber)
	case http.StatusUnauthorized, http.StatusForbidden:
		return errors.New(ErrorCodeUnauthorized)
	default:
		return errors.New(ErrorCodeServerError)
	}
}
