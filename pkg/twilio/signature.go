package twilio

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"sort"
)

// ComputeSignature builds the form-webhook signature: base64 HMAC-SHA1 of
// the full request URL followed by every POST parameter name and value in
// lexicographic order of the names.
func ComputeSignature(authToken string, url string, params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	payload := url
	for _, k := range keys {
		payload += k + params[k]
	}

	mac := hmac.New(sha1.New, []byte(authToken))
	mac.Write([]byte(payload))

	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// ValidateSignature compares the signature header against the expected
// value in constant time.
func ValidateSignature(authToken string, url string, params map[string]string, signature string) bool {
	expected := ComputeSignature(authToken, url, params)
	return hmac.Equal([]byte(expected), []byte(signature))
}
