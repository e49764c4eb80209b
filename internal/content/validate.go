package content

import (
	"fmt"
	"strings"
)

// ValidationError reports a missing or malformed required field.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field %q is required", e.Field)
}

func requireField(value, name string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: name}
	}
	return nil
}
