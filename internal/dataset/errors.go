package dataset

import (
	"fmt"
	"strings"
)

// SchemaError reports required columns missing from an input file.
type SchemaError struct {
	Path    string
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: missing required columns: %s", e.Path, strings.Join(e.Missing, ", "))
}
