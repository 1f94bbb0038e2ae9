package nylas

const (
	ErrorCodeSendFailed   = "SEND_FAILED"
	ErrorCodeNotFound     = "NOT_FOUND"
	ErrorCodeTimeout      = "TIMEOUT"
	ErrorCodeServerError  = "SERVER_ERROR"
	ErrorCodeNetworkError = "NETWORK_ERROR"
)
