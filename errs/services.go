package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Third-party integration errors
var (
	ErrNotificationFailed = errors.New("notification failed")
	ErrConfigMissing      = errors.New("configuration missing")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// NewNotificationError wraps a failed outbound message (WhatsApp, email).
func NewNotificationError(channel string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        ErrNotificationFailed,
		Details:    fmt.Sprintf("Failed to deliver %s notification", channel),
		Cause:      cause,
	}
}

func NewConfigMissingError(key string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrConfigMissing,
		Details:    fmt.Sprintf("%s is not configured", key),
		Field:      key,
	}
}

func NewStorageError(operation string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        ErrStorageUnavailable,
		Details:    fmt.Sprintf("Failed to %s", operation),
		Cause:      cause,
	}
}

func IsNotificationError(err error) bool {
	return errors.Is(err, ErrNotificationFailed)
}

func IsConfigMissingError(err error) bool {
	return errors.Is(err, ErrConfigMissing)
}
