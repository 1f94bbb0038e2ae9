package mq

type TempError struct {
	Err error
}

func (e TempError) Error() string {
	return e.Err.Error()
}

func (e TempError) Temporary() bool {
	return true
}

func (e TempError) Unwrap() error {
	return e.Err
}

func Temporary(err error) error {
	return TempError{Err: err}
}
