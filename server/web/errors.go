package web

import (
	"fmt"
)

type RenderError struct {
	Name string
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s: %v", e.Name, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
