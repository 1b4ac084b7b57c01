package wire

import (
	"sort"
	"strings"
)

// ValidationError carries per-field messages for a rejected payload.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Add(field, msg string) {
	if e.Fields == nil {
		e.Fields = map[string][]string{}
	}
	e.Fields[field] = append(e.Fields[field], msg)
}

func (e *ValidationError) FieldNames() []string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	return names
}

func (e *ValidationError) Error() string {
	return "invalid fields: " + strings.Join(e.FieldNames(), ", ")
}
