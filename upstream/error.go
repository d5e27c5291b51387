package upstream

import (
	"fmt"
	"strconv"
)

// Error reports a failed exchange with the provider.
// Status is zero when no response was received, in which case Err holds the transport failure.
type Error struct {
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%d - %s", e.Status, e.Message)
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// statusMessage is used when the provider does not explain a failure.
func statusMessage(status int) string {
	return "Request failed with status code " + strconv.Itoa(status)
}
