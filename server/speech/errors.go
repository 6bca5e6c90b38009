package speech

// ValidationError reports a request the handler refuses to forward.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// SynthesisError wraps a provider failure. Its message is the provider's
// message, unmodified.
type SynthesisError struct {
	Err error
}

func (e *SynthesisError) Error() string {
	return e.Err.Error()
}

func (e *SynthesisError) Unwrap() error {
	return e.Err
}

var errNoText = &ValidationError{
	Message: "No text provided",
}
