package rewriting

import "fmt"

// FilterError represents an invalid filter configuration
type FilterError struct {
	Message string
	Cause   error
}

func (e *FilterError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("filter error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("filter error: %s", e.Message)
}

func (e *FilterError) Unwrap() error {
	return e.Cause
}

// TranslationLoadError represents a failure to read a translation table
type TranslationLoadError struct {
	Message string
	Cause   error
}

func (e *TranslationLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("translation load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("translation load error: %s", e.Message)
}

func (e *TranslationLoadError) Unwrap() error {
	return e.Cause
}
