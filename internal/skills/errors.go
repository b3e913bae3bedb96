package skills

import "fmt"

// TableError represents an unreadable or invalid keyword table
type TableError struct {
	Message string
	Cause   error
}

func (e *TableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("keyword table error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("keyword table error: %s", e.Message)
}

func (e *TableError) Unwrap() error {
	return e.Cause
}
