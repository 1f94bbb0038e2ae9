package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Onwuagba/Telinga/pkg/httpclient"
)

const (
	apiBase      = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel = "gemini-1.5-flash"
)

const (
	ErrorCodeEmptyResponse = "EMPTY_RESPONSE"
	ErrorCodeTimeout       = "TIMEOUT"
	ErrorCodeServerError   = "SERVER_ERROR"
	ErrorCodeNetworkError  = "NETWORK_ERROR"
)

type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Config struct {
	APIKey  string        `mapstructure:"api_key"`
	BaseURL string        `mapstructure:"base_url"`
	Model   string        `mapstructure:"model"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

type GeminiClient struct {
	cfg    Config
	client httpclient.HTTPClient
}

func NewClient(cfg Config, client httpclient.HTTPClient) Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = apiBase
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	return &GeminiClient{cfg: cfg, client: client}
}

func (g *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	request := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(request); err != nil {
		return "", fmt.Errorf("encoding error: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.cfg.BaseURL, g.cfg.Model, g.cfg.APIKey)

	headers := map[string]string{"Content-Type": "application/json"}

	resp, err := g.client.Post(ctx, endpoint, &buf, headers)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return "", errors.New(ErrorCodeTimeout)
		}

		return "", errors.New(ErrorCodeNetworkError)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.New(ErrorCodeServerError)
	}

	var response generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", errors.New(ErrorCodeServerError)
	}

	if len(response.Candidates) == 0 || len(response.Candidates[0].Content.Parts) == 0 {
		return "", errors.New(ErrorCodeEmptyResponse)
	}

	text := strings.TrimSpace(response.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", errors.New(ErrorCodeEmptyResponse)
	}

	return text, nil
}
