package wire

import (
	"math"
	"strconv"
	"strings"

	"stockroom/internal/domain"
	"stockroom/internal/validate"
)

// ProductDraft holds the writable fields parsed from a request body.
// Nil pointers mean "not supplied" so partial updates can skip them.
type ProductDraft struct {
	Name        *string
	Description *string
	PriceCents  *int64
	Stock       *int
}

type ProductCodec struct {
	schema schema[ProductDraft]
}

// NewProductCodec builds the product field table. allowBackorder switches
// the stock validator between non-negative and any integer.
func NewProductCodec(allowBackorder bool) *ProductCodec {
	return &ProductCodec{schema: newSchema([]fieldSpec[ProductDraft]{
		{name: "id", readOnly: true},
		{name: "name", required: true, assign: assignName},
		{name: "description", assign: assignDescription},
		{name: "price", required: true, assign: assignPrice},
		{name: "stock", required: true, assign: assignStock(allowBackorder)},
		{name: "created", readOnly: true},
		{name: "updated", readOnly: true},
		{name: "is_in_stock", readOnly: true},
	})}
}

func (c *ProductCodec) ToWire(p domain.Product) map[string]any {
	return map[string]any{
		"id":          p.ID,
		"name":        p.Name,
		"description": p.Description,
		"price":       FormatPrice(p.PriceCents),
		"stock":       p.Stock,
		"created":     p.CreatedAt,
		"updated":     p.UpdatedAt,
		"is_in_stock": p.InStock(),
	}
}

func (c *ProductCodec) FromWire(body map[string]any, partial bool) (*ProductDraft, *ValidationError) {
	return c.schema.decode(body, partial)
}

func assignName(v any, d *ProductDraft) string {
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

func assignDescription(v any, d *ProductDraft) string {
	s, ok := v.(string)
	if !ok {
		return "must be a string"
	}
	d.Description = &s
	return ""
}

func assignPrice(v any, d *ProductDraft) string {
	cents, err := ParsePrice(v)
	if err != nil {
		return err.Error()
	}
	d.PriceCents = &cents
	return ""
}

func assignStock(allowBackorder bool) func(v any, d *ProductDraft) string {
	return func(v any, d *ProductDraft) string {
		n, ok := intValue(v)
		if !ok {
			return "must be an integer"
		}
		if n < 0 && !allowBackorder {
			return "may not be negative"
		}
		d.Stock = &n
		return ""
	}
}

func intValue(v any) (int, bool) {
	switch x := v.(type) {
	case float64:
		if x != math.Trunc(x) {
			return 0, false
		}
		return int(x), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(x))
		if err != nil {
			return 0, false
		}
		return n, true
	case int:
		return x, true
	}
	return 0, false
}
