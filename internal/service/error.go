package service

import "errors"

var (
	ErrCustomerNotFound       = errors.New("CUSTOMER_NOT_FOUND")
	ErrDeliveryRecordNotFound = errors.New("DELIVERY_RECORD_NOT_FOUND")
	ErrNoContactChannel       = errors.New("NO_CONTACT_CHANNEL")
	ErrInvalidSignature       = errors.New("INVALID_SIGNATURE")
	ErrInvalidTemplate        = errors.New("INVALID_TEMPLATE")
	ErrDatabase               = errors.New("DATABASE_ERROR")
)

type Error struct {
	Code  string
	Cause error
}

func NewServiceError(code string, cause error) error {
	return Error{Code: code, Cause: cause}
}

func (e Error) Error() string {
	return e.Cause.Error()
}

func (e Error) Unwrap() error {
	return e.Cause
}
