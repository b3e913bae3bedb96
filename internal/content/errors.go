package content

import "fmt"

// LoadError represents a content file that could not be read or decoded
type LoadError struct {
	File    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("content load error: %s: %s: %v", e.File, e.Message, e.Cause)
	}
	return fmt.Sprintf("content load error: %s: %s", e.File, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
