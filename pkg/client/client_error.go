package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Error is returned for every non-200 response of the server.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

func readError(resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	var body struct {
		Error string `json:"error"`
	}

	message := strings.TrimSpace(string(data))

	if err := json.Unmarshal(data, &body); err == nil && body.Error != "" {
		message = body.Error
	}

	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}

	return &Error{
		StatusCode: resp.StatusCode,
		Message:    message,
	}
}
