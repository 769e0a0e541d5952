package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-w3s-wallet/models"
	"github.com/go-resty/resty/v2"
)

// mapHTTPError turns a non-2xx response into an error. A {code, message}
// body becomes [*APIError]; anything else is reported as [ErrDecode].
func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	var errResp models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &errResp); err == nil && errResp.Code != 0 {
		return &APIError{
			Status:  resp.StatusCode(),
			Code:    errResp.Code,
			Message: errResp.Message,
		}
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("%w: http %d: %s", ErrDecode, resp.StatusCode(), body)
}

func decodeBody[T any](resp *resty.Response, op string) (T, error) {
	var v T
	if err := json.Unmarshal(resp.Body(), &v); err != nil {
		return v, fmt.Errorf("%w: decode %s response: %w", ErrDecode, op, err)
	}
	return v, nil
}
