package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/trustme/models"
)

// ResponseError is a non-2xx reply. Status is one of the sentinels of this
// package and Body is the server's {"error": ...} message.
type ResponseError struct {
	Status error
	Body   string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Status, e.Body)
}

func (e *ResponseError) Unwrap() error {
	return e.Status
}

// Message returns the server's error message carried by err, or an empty
// string if err did not come from a non-2xx response.
func Message(err error) string {
	var respErr *ResponseError
	if errors.As(err, &respErr) {
		return respErr.Body
	}
	return ""
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	message := responseMessage(resp.Body())

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return &ResponseError{Status: ErrBadRequest, Body: message}
	case http.StatusUnauthorized:
		return &ResponseError{Status: ErrUnauthorized, Body: message}
	case http.StatusForbidden:
		return &ResponseError{Status: ErrForbidden, Body: message}
	case http.StatusNotFound:
		return &ResponseError{Status: ErrNotFound, Body: message}
	case http.StatusConflict:
		return &ResponseError{Status: ErrConflict, Body: message}
	case http.StatusBadGateway:
		return &ResponseError{Status: ErrBadGateway, Body: message}
	case http.StatusInternalServerError:
		return &ResponseError{Status: ErrInternalServerError, Body: message}
	default:
		if message == "" {
			message = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), message)
	}
}

// responseMessage reads {"error": ...} and falls back to the raw body.
func responseMessage(body []byte) string {
	var errResp models.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return errResp.Error
	}
	return strings.TrimSpace(string(body))
}
