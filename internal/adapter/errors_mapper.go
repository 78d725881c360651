package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusInternalServerError: ErrInternalServerError,
}

// mapHTTPError turns a non-2xx response into "<sentinel>: <body>", the form
// the service layer's reverse mapper splits again. Gateway statuses mean a
// proxy answered for a server that did not, so they also wrap ErrUnreachable.
func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch status {
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return fmt.Errorf("%w (%w): %s", ErrBadGateway, ErrUnreachable, body)
	}

	if sentinel, ok := statusErrors[status]; ok {
		return fmt.Errorf("%w: %s", sentinel, body)
	}

	if body == "" {
		body = http.StatusText(status)
	}
	return fmt.Errorf("http %d: %s", status, body)
}
