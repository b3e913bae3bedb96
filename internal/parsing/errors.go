package parsing

import "fmt"

// Warning is a non-fatal problem found while parsing. Parsing continues past it.
type Warning struct {
	Section string `json:"section"`
	Line    int    `json:"line,omitempty"`
	Message string `json:"message"`
}

func (w Warning) String() string {
	if w.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", w.Section, w.Line, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Section, w.Message)
}

// ParseError represents a failure to read the source being parsed
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
