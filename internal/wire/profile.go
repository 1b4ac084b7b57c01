package wire

import (
	"stockroom/internal/domain"
	"stockroom/internal/validate"
)

type ProfileDraft struct {
	Email    *string
	Name     *string
	Password *string
}

type ProfileCodec struct {
	schema schema[ProfileDraft]
}

// NewProfileCodec builds the profile field table. The password is
// write-only: accepted on input, never emitted.
func NewProfileCodec() *ProfileCodec {
	return &ProfileCodec{schema: newSchema([]fieldSpec[ProfileDraft]{
		{name: "id", readOnly: true},
		{name: "email", required: true, assign: assignEmail},
		{name: "name", required: true, assign: assignProfileName},
		{name: "password", required: true, assign: assignPassword},
		{name: "created", readOnly: true},
		{name: "updated", readOnly: true},
	})}
}

func (c *ProfileCodec) ToWire(u domain.User) map[string]any {
	return map[string]any{
		"id":      u.ID,
		"email":   u.Email,
		"name":    u.Name,
		"created": u.CreatedAt,
		"updated": u.UpdatedAt,
	}
}

func (c *ProfileCodec) FromWire(body map[string]any, partial bool) (*ProfileDraft, *ValidationError) {
	return c.schema.decode(body, partial)
}

func assignEmail(v any, d *ProfileDraft) string {
	s, ok := v.(string)
	if !ok {
		return "must be a string"
	}
	s, ok = validate.Email(s)
	if !ok {
		return "must be a valid email address"
	}
	d.Email = &s
	return ""
}

func assignProfileName(v any, d *ProfileDraft) string {
	s, ok := v.(string)
	if !ok {
		return "must be a string"
	}
	s, ok = validate.Name(s)
	if !ok {
		return "must be 1 to 50 characters"
	}
	d.Name = &s
	return ""
}

func assignPassword(v any, d *ProfileDraft) string {
	s, ok := v.(string)
	if !ok {
		return "must be a string"
	}
	if !validate.Password(s) {
		return "must be 8 to 72 characters"
	}
	d.Password = &s
	return ""
}
