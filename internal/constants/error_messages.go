package constants

const (
	ErrCodeCustomerNotFound       = "CUSTOMER_NOT_FOUND"
	ErrCodeDeliveryRecordNotFound = "DELIVERY_RECORD_NOT_FOUND"
	ErrCodeNoContactChannel       = "NO_CONTACT_CHANNEL"
	ErrCodeInvalidSignature       = "INVALID_SIGNATURE"
	ErrCodeInvalidTemplate        = "INVALID_TEMPLATE"
	ErrCodeInternalError          = "INTERNAL_ERROR"
	ErrCodeInvalidRequestBody     = "INVALID_REQUEST_BODY"
)

const (
	ErrMsgCustomerNotFound       = "customer not found"
	ErrMsgDeliveryRecordNotFound = "delivery record not found"
	ErrMsgNoContactChannel       = "customer has no phone number or email"
	ErrMsgInvalidSignature       = "webhook signature verification failed"
	ErrMsgInvalidTemplate        = "template contains unknown placeholders"
	ErrMsgInternalError          = "Internal server error"
	ErrMsgInvalidRequestBody     = "failed to parse request body"
)

var errorMessages = map[string]string{
	ErrCodeCustomerNotFound:       ErrMsgCustomerNotFound,
	ErrCodeDeliveryRecordNotFound: ErrMsgDeliveryRecordNotFound,
	ErrCodeNoContactChannel:       ErrMsgNoContactChannel,
	ErrCodeInvalidSignature:       ErrMsgInvalidSignature,
	ErrCodeInvalidTemplate:        ErrMsgInvalidTemplate,
	ErrCodeInternalError:          ErrMsgInternalError,
	ErrCodeInvalidRequestBody:     ErrMsgInvalidRequestBody,
}

func GetErrorMessage(code string) string {
	if msg, exists := errorMessages[code]; exists {
		return msg
	}
	return ErrMsgInternalError
}

func GetHTTPStatus(code string) int {
	switch code {
	case ErrCodeInvalidRequestBody, ErrCodeInvalidTemplate, ErrCodeNoContactChannel:
		return 400
	case ErrCodeInvalidSignature:
		return 403
	case ErrCodeCustomerNotFound, ErrCodeDeliveryRecordNotFound:
		return 404
	case ErrCodeInternalError:
		return 500
	default:
		return 500
	}
}
