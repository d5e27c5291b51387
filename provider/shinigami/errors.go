package shinigami

import "errors"

var (
	// ErrInvalidResponse is returned when a list or detail payload lacks its data field.
	ErrInvalidResponse = errors.New("invalid response from API")

	// ErrPagesNotFound is returned when no page layout matches or the page list is empty.
	ErrPagesNotFound = errors.New("invalid response from API - pages not found or empty")
)

// OpError records which operation failed.
type OpError struct {
	Op  string
	Err error
}

func (e *OpError) Error() string {
	return "Failed to " + e.Op + ": " + e.Err.Error()
}

func (e *OpError) Unwrap() error {
	return e.Err
}
