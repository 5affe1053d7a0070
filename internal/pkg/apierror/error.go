package apierror

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// GenericMessage is shown when the backend fails without a
// human-readable message in the response body.
const GenericMessage = "An error occurred"

type Kind int

const (
	KindNetwork Kind = iota
	KindAuth
	KindValidation
	KindServer
)

type Error struct {
	Kind       Kind
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("api call failed: %s", e.Message)
	}
	return fmt.Sprintf("api call failed with status %d: %s", e.StatusCode, e.Message)
}

// FromResponse classifies a completed call into the error taxonomy.
// A transport failure maps to KindNetwork, 401 to KindAuth, remaining
// 4xx to KindValidation and 5xx to KindServer. A 2xx response maps
// to no error.
func FromResponse(resp *resty.Response, err error) error {
	if err != nil {
		return &Error{
			Kind:    KindNetwork,
			Message: err.Error(),
		}
	}

	statusCode := resp.StatusCode()
	switch {
	case statusCode < http.StatusBadRequest:
		return nil
	case statusCode == http.StatusUnauthorized:
		return &Error{
			Kind:       KindAuth,
			StatusCode: statusCode,
			Message:    serverMessage(resp.Body()),
		}
	case statusCode < http.StatusInternalServerError:
		return &Error{
			Kind:       KindValidation,
			StatusCode: statusCode,
			Message:    serverMessage(resp.Body()),
		}
	default:
		return &Error{
			Kind:       KindServer,
			StatusCode: statusCode,
			Message:    serverMessage(resp.Body()),
		}
	}
}

func IsNetwork(err error) bool {
	return isKind(err, KindNetwork)
}

func IsAuth(err error) bool {
	return isKind(err, KindAuth)
}

func IsValidation(err error) bool {
	return isKind(err, KindValidation)
}

func IsServer(err error) bool {
	return isKind(err, KindServer)
}

func isKind(err error, kind Kind) bool {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Kind == kind
}

func serverMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.Message == "" {
		return GenericMessage
	}
	return payload.Message
}
