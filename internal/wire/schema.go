// Package wire converts domain records to and from their JSON mapping.
// Each resource declares a static field table: name, read-only flag,
// required flag, assigner. The table is checked once when the codec is
// built, so a malformed schema fails at startup rather than per request.
package wire

type fieldSpec[D any] struct {
	name     string
	required bool
	readOnly bool
	assign   func(v any, d *D) string // empty string means accepted
}

type schema[D any] struct {
	fields []fieldSpec[D]
}

func newSchema[D any](fields []fieldSpec[D]) schema[D] {
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		switch {
		case f.name == "":
			panic("wire: unnamed field")
		case seen[f.name]:
			panic("wire: duplicate field " + f.name)
		case f.readOnly && f.assign != nil:
			panic("wire: read-only field " + f.name + " has an assigner")
		case f.readOnly && f.required:
			panic("wire: read-only field " + f.name + " marked required")
		case !f.readOnly && f.assign == nil:
			panic("wire: writable field " + f.name + " lacks an assigner")
		}
		seen[f.name] = true
	}
	return schema[D]{fields: fields}
}

// decode applies body onto a fresh draft. Read-only fields in the input
// are ignored, never applied. With partial set, absent fields are left
// unset instead of failing the required check.
func (s schema[D]) decode(body map[string]any, partial bool) (*D, *ValidationError) {
	d := new(D)
	verr := &ValidationError{}
	for _, f := range s.fields {
		if f.readOnly {
			continue
		}
		v, ok := body[f.name]
		if !ok || v == nil {
			if f.required && !partial {
				verr.Add(f.name, "this field is required")
			}
			continue
		}
		if msg := f.assign(v, d); msg != "" {
			verr.Add(f.name, msg)
		}
	}
	if len(verr.Fields) > 0 {
		return nil, verr
	}
	return d, nil
}
