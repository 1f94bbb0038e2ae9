package nylas_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/Onwuagba/Telinga/pkg/nylas"
	"github.com/stretchr/testify/assert"
)

func sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	body := []byte(`{"type":"thread.replied","data":{"object":{"root_message_id":"msg-1"}}}`)

	assert.True(t, nylas.VerifySignature("secret", body, sign("secret", body)))
}

func TestVerifySignature_WrongSecret(t *testing.T) {
	body := []byte(`{"type":"thread.replied"}`)

	assert.False(t, nylas.VerifySignature("secret", body, sign("other", body)))
}

func TestVerifySignature_TamperedBody(t *testing.T) {
	body := []byte(`{"type":"thread.replied"}`)
	signature := sign("secret", body)

	assert.False(t, nylas.VerifySignature("secret", []byte(`{"type":"message.created"}`), signature))
}
