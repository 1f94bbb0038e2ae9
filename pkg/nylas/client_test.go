package nylas_test

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/Onwuagba/Telinga/pkg/mocks"
	"github.com/Onwuagba/Telinga/pkg/nylas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

func newTestClient(mockHTTP *mocks.HTTPClient) nylas.Client {
	return nylas.NewClient(nylas.Config{
		APIKey:  "test-key",
		BaseURL: "https://api.test.local/v3",
		GrantID: "grant-1",
		From:    "support@example.com",
		Timeout: 5 * time.Second,
	}, mockHTTP)
}

func TestClient_SendMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("unwraps the data envelope", func(t *testing.T) {
		mockHTTP := &mocks.HTTPClient{}
		mockHTTP.On("Post", ctx, "https://api.test.local/v3/grants/grant-1/messages/send",
			mock.Anything, mock.MatchedBy(func(headers map[string]string) bool {
				return headers["Authorization"] == "Bearer test-key"
			})).Return(jsonResponse(200, `{"data": {"id": "msg-1", "thread_id": "thr-1"}}`), nil)

		client := newTestClient(mockHTTP)

		msg, err := client.SendMessage(ctx, nylas.SendMessageRequest{
			To:      []nylas.Participant{{Email: "ada@example.com"}},
			Subject: "Hello",
			Body:    "Hi there",
		})

		require.NoError(t, err)
		assert.Equal(t, "msg-1", msg.ID)
		assert.Equal(t, "thr-1", msg.ThreadID)
	})

	t.Run("non-2xx maps to an error code", func(t *testing.T) {
		mockHTTP := &mocks.HTTPClient{}
		mockHTTP.On("Post", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(jsonResponse(500, `{"error": "boom"}`), nil)

		client := newTestClient(mockHTTP)

		_, err := client.SendMessage(ctx, nylas.SendMessageRequest{})

		assert.EqualError(t, err, nylas.ErrorCodeServerError)
	})
}

func TestClient_GetMessage(t *testing.T) {
	ctx := context.Background()

	mockHTTP := &mocks.HTTPClient{}
	mockHTTP.On("Get", ctx, "https://api.test.local/v3/grants/grant-1/messages/msg-2", mock.Anything).
		Return(jsonResponse(200, `{"data": {"id": "msg-2", "body": "Loved it"}}`), nil)

	client := newTestClient(mockHTTP)

	msg, err := client.GetMessage(ctx, "msg-2")

	require.NoError(t, err)
	assert.Equal(t, "Loved it", msg.Body)
}

func TestClient_ListCalendars(t *testing.T) {
	ctx := context.Background()

	mockHTTP := &mocks.HTTPClient{}
	mockHTTP.On("Get", ctx, "https://api.test.local/v3/grants/grant-1/calendars", mock.Anything).
		Return(jsonResponse(200, `{"data": [{"id": "cal-1", "is_primary": true}]}`), nil)

	client := newTestClient(mockHTTP)

	calendars, err := client.ListCalendars(ctx)

	require.NoError(t, err)
	require.Len(t, calendars, 1)
	assert.True(t, calendars[0].IsPrimary)
}

func TestClient_UpdateEvent(t *testing.T) {
	ctx := context.Background()

	mockHTTP := &mocks.HTTPClient{}
	mockHTTP.On("Put", ctx,
		"https://api.test.local/v3/grants/grant-1/events/evt-1?calendar_id=cal-1",
		mock.Anything, mock.Anything).
		Return(jsonResponse(200, `{"data": {"id": "evt-1"}}`), nil)

	client := newTestClient(mockHTTP)

	event, err := client.UpdateEvent(ctx, "cal-1", "evt-1", nylas.UpdateEventRequest{
		Participants:       []nylas.Participant{{Email: "ada@example.com"}},
		NotifyParticipants: true,
	})

	require.NoError(t, err)
	assert.Equal(t, "evt-1", event.ID)
}

func TestClient_CreateWebhook(t *testing.T) {
	ctx := context.Background()

	mockHTTP := &mocks.HTTPClient{}
	mockHTTP.On("Post", ctx, "https://api.test.local/v3/webhooks", mock.Anything, mock.Anything).
		Return(jsonResponse(201, `{"data": {"id": "wh-1", "webhook_secret": "s3cret"}}`), nil)

	client := newTestClient(mockHTTP)

	webhook, err := client.CreateWebhook(ctx, nylas.CreateWebhookRequest{
		TriggerTypes: []string{"thread.replied"},
		WebhookURL:   "https://app.example.com/webhooks/nylas",
	})

	require.NoError(t, err)
	assert.Equal(t, "wh-1", webhook.ID)
	assert.Equal(t, "s3cret", webhook.WebhookSecret)
}
