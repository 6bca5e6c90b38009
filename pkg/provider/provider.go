package provider

import (
	"errors"
)

var (
	ErrEmptyInput = errors.New("no text provided")
)
