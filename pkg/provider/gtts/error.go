package gtts

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/adrianliechti/text2speech/pkg/provider"
)

var (
	ErrNoText            = fmt.Errorf("no text to send to TTS API: %w", provider.ErrEmptyInput)
	ErrUnsupportedFormat = errors.New("unsupported audio format")
)

// Error is returned when the upstream endpoint answers but the answer holds
// no usable audio.
type Error struct {
	StatusCode int

	Cause string
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%d (%s) from TTS API", e.StatusCode, http.StatusText(e.StatusCode))

	if e.Cause != "" {
		msg += ". Probable cause: " + e.Cause
	}

	return msg
}

func convertError(resp *http.Response, tld string) error {
	err := &Error{
		StatusCode: resp.StatusCode,
	}

	switch {
	case resp.StatusCode == http.StatusForbidden:
		err.Cause = "Bad token or upstream API changes"

	case resp.StatusCode == http.StatusNotFound && tld != "com":
		err.Cause = fmt.Sprintf("Unsupported tld '%s'", tld)

	case resp.StatusCode == http.StatusTooManyRequests:
		err.Cause = "Too many requests from this IP. Try again later"

	case resp.StatusCode >= 500:
		err.Cause = "Upstream API error. Try again later"

	default:
		err.Cause = "Unknown"
	}

	return err
}
