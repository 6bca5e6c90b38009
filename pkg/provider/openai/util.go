package openai

import (
	"errors"
	"fmt"

	"github.com/openai/openai-go/v3"
)

// convertError keeps the upstream error in the chain and prefixes it with
// the status code so the message stays readable on its own.
func convertError(err error) error {
	var apierr *openai.Error

	if errors.As(err, &apierr) {
		return fmt.Errorf("openai: status %d: %w", apierr.StatusCode, err)
	}

	return err
}
