package llm

import "errors"

// Sentinel errors for generation calls. Callers match them with
// errors.Is and typically fall back to the offline draft stub.
var (
	ErrOllamaUnavailable = errors.New("ollama is not reachable")
	ErrTimeout           = errors.New("llm call exceeded its deadline")
	ErrInvalidOutput     = errors.New("llm output is not valid structured data")
	ErrRetryExhausted    = errors.New("llm call failed after all retries")
)
