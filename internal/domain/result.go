package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrInvalidInput    = errors.New("invalid input")
)

// RemoteError carries a failure reported by the backing store. Code is the
// driver error number when one is available.
type RemoteError struct {
	Code    string
	Message string
	Cause   error
}

func (e *RemoteError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("remote request failed (%s): %s", e.Code, e.Message)
	}
	return "remote request failed: " + e.Message
}

func (e *RemoteError) Unwrap() error { return e.Cause }

// Result is the {data, error} pair returned by every service operation.
// It is built only through Ok or Fail, so a failed result never carries data.
type Result[T any] struct {
	data T
	err  error
}

func Ok[T any](data T) Result[T] {
	return Result[T]{data: data}
}

func Fail[T any](err error) Result[T] {
	if err == nil {
		err = errors.New("unknown error")
	}
	return Result[T]{err: err}
}

func (r Result[T]) Data() T    { return r.data }
func (r Result[T]) Err() error { return r.err }
func (r Result[T]) OK() bool   { return r.err == nil }

// Unwrap returns the pair in Go's usual (value, error) order.
func (r Result[T]) Unwrap() (T, error) { return r.data, r.err }

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorBodyOf maps an error to its wire representation.
func ErrorBodyOf(err error) *ErrorBody {
	if err == nil {
		return nil
	}

	var remote *RemoteError
	switch {
	case errors.Is(err, ErrUnauthenticated):
		return &ErrorBody{Code: "unauthenticated", Message: err.Error()}
	case errors.Is(err, ErrInvalidInput):
		return &ErrorBody{Code: "invalid_input", Message: err.Error()}
	case errors.As(err, &remote):
		code := remote.Code
		if code == "" {
			code = "remote_error"
		}
		return &ErrorBody{Code: code, Message: remote.Message}
	default:
		return &ErrorBody{Code: "internal", Message: err.Error()}
	}
}

func (r Result[T]) MarshalJSON() ([]byte, error) {
	envelope := struct {
		Data  any        `json:"data"`
		Error *ErrorBody `json:"error"`
	}{Error: ErrorBodyOf(r.err)}
	if r.err == nil {
		envelope.Data = r.data
	}
	return json.Marshal(envelope)
}
