package wire

import (
	"stockroom/internal/domain"
	"stockroom/internal/validate"
)

type FeedDraft struct {
	StatusText *string
}

type FeedCodec struct {
	schema schema[FeedDraft]
}

func NewFeedCodec() *FeedCodec {
	return &FeedCodec{schema: newSchema([]fieldSpec[FeedDraft]{
		{name: "id", readOnly: true},
		{name: "status_text", required: true, assign: assignStatusText},
		{name: "created", readOnly: true},
		{name: "updated", readOnly: true},
	})}
}

func (c *FeedCodec) ToWire(it domain.FeedItem) map[string]any {
	return map[string]any{
		"id":          it.ID,
		"status_text": it.StatusText,
		"created":     it.CreatedAt,
		"updated":     it.UpdatedAt,
	}
}

func (c *FeedCodec) FromWire(body map[string]any, partial bool) (*FeedDraft, *ValidationError) {
	return c.schema.decode(body, partial)
}

func assignStatusText(v any, d *FeedDraft) string {
	s, ok := v.(string)
	if !ok {
		return "must be a string"
	}
	s, ok = validate.StatusText(s)
	if !ok {
		return "must be 1 to 255 characters"
	}
	d.StatusText = &s
	return ""
}
