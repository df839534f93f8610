package notestore

import (
	"errors"
	"fmt"
)

// Service error codes.
const (
	CodeUnknown          = 1
	CodeBadDataFormat    = 2
	CodePermissionDenied = 3
	CodeDataRequired     = 5
	CodeLimitReached     = 6
	CodeAuthExpired      = 9
	CodeRateLimitReached = 19
)

var (
	// ErrAuthExpired means the session token is no longer accepted.
	ErrAuthExpired = errors.New("your session has expired, please log in again")

	// ErrPermission means the token does not allow the operation.
	ErrPermission = errors.New("Sorry, you are not authorized to perform this operation.")
)

// RateLimitError is returned when the service throttles the client.
type RateLimitError struct {
	// Duration is the wait the service asked for, in seconds.
	Duration int
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("Rate Limit Hit: Please wait %d seconds before continuing", e.Duration)
}

// NotFoundError is returned when a referenced object does not exist.
type NotFoundError struct {
	Identifier string
	Key        string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("not found: %s with key %s", e.Identifier, e.Key)
}

// ServiceError is any other error reported by the service.
type ServiceError struct {
	Code    int
	Message string
}

func (e *ServiceError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("service error %d", e.Code)
	}
	return fmt.Sprintf("service error %d: %s", e.Code, e.Message)
}

// StatusError is returned for HTTP failures without a service error body.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server returned status %d", e.StatusCode)
}

// wireError is the error object of a response.
type wireError struct {
	Code              int    `json:"code"`
	Message           string `json:"message,omitempty"`
	Identifier        string `json:"identifier,omitempty"`
	Key               string `json:"key,omitempty"`
	RateLimitDuration int    `json:"rateLimitDuration,omitempty"`
}

func (w *wireError) err() error {
	switch {
	case w.Identifier != "":
		return &NotFoundError{Identifier: w.Identifier, Key: w.Key}
	case w.Code == CodeAuthExpired:
		return ErrAuthExpired
	case w.Code == CodePermissionDenied:
		return ErrPermission
	case w.Code == CodeRateLimitReached:
		return &RateLimitError{Duration: w.RateLimitDuration}
	default:
		return &ServiceError{Code: w.Code, Message: w.Message}
	}
}
