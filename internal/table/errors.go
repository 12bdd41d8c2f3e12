package table

import "fmt"

// SchemaError reports a required column missing from an input table. It is
// always fatal to the call that raised it; callers never default the column.
type SchemaError struct {
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required column: %s", e.Column)
}
