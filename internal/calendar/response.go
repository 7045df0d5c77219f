package calendar

import "fmt"

// ErrorCode classifies why an action failed.
type ErrorCode string

const (
	ErrorCodeValidation     ErrorCode = "VALIDATION_ERROR"
	ErrorCodeRequestFailed  ErrorCode = "REQUEST_FAILED"
	ErrorCodeParse          ErrorCode = "PARSE_ERROR"
	ErrorCodeTransformation ErrorCode = "TRANSFORMATION_ERROR"
)

// Error is the failure half of a Response.
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Response is the envelope returned by every action. Data is set only on
// success and may be nil even then.
type Response[T any] struct {
	Success bool   `json:"success"`
	Data    *T     `json:"data,omitempty"`
	Error   *Error `json:"error,omitempty"`
}

// Success wraps data in a successful Response.
func Success[T any](data T) Response[T] {
	return Response[T]{Success: true, Data: &data}
}

// Empty is a successful Response that carries no data.
func Empty[T any]() Response[T] {
	return Response[T]{Success: true}
}

// Failure builds a failed Response.
func Failure[T any](code ErrorCode, message string) Response[T] {
	return Response[T]{Error: &Error{Code: code, Message: message}}
}

// Err returns the failure as an error, or nil on success.
func (r Response[T]) Err() error {
	if r.Success || r.Error == nil {
		return nil
	}
	return r.Error
}
