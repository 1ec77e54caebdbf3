package catalog

// ValidationError carries per-field messages from entity validation, surfaced
// to the dashboard as a 422 with the field map in the error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "catalog: invalid entity" }
