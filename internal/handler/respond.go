package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/yusufkecer/jarosmart-backend/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, domain.Fail[any](err))
}

// writeResult writes a service result as the {data, error} envelope.
func writeResult[T any](w http.ResponseWriter, okStatus int, r domain.Result[T]) {
	writeJSON(w, statusFor(r.Err(), okStatus), r)
}

func statusFor(err error, okStatus int) int {
	var remote *domain.RemoteError
	switch {
	case err == nil:
		return okStatus
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.As(err, &remote):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, msg)
}
