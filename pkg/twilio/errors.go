package twilio

const (
	ErrorCodeServerError   = "SERVER_ERROR"   // 5xx from the provider
	ErrorCodeTimeout       = "TIMEOUT"        // context timeout
	ErrorCodeInvalidNumber = "INVALID_NUMBER" // 400/validation rejection
	ErrorCodeUnauthorized  = "UNAUTHORIZED"   // bad account credentials
	ErrorCodeNetworkError  = "NETWORK_ERROR"  // connection failure
)

// Permanent reports whether an error code is a provider rejection that
// must not be retried.
func Permanent(code string) bool {
	return code == ErrorCodeInvalidNumber || code == ErrorCodeUnauthorized
}
