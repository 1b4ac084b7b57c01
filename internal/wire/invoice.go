package wire

import (
	"stockroom/internal/domain"
	"stockroom/internal/validate"
)

type InvoiceLineDraft struct {
	ProductID string
	Quantity  int
}

type InvoiceDraft struct {
	Lines []InvoiceLineDraft
}

type InvoiceCodec struct {
	schema schema[InvoiceDraft]
}

// NewInvoiceCodec builds the invoice field table. Lines are the only
// writable input; prices and totals are captured server-side at issue.
func NewInvoiceCodec() *InvoiceCodec {
	return &InvoiceCodec{schema: newSchema([]fieldSpec[InvoiceDraft]{
		{name: "id", readOnly: true},
		{name: "items", required: true, assign: assignInvoiceItems},
		{name: "total", readOnly: true},
		{name: "created", readOnly: true},
	})}
}

func (c *InvoiceCodec) ToWire(inv domain.Invoice, items []domain.InvoiceItem) map[string]any {
	var total int64
	lines := make([]map[string]any, 0, len(items))
	for _, it := range items {
		total += it.TotalCents
		lines = append(lines, map[string]any{
			"product":  it.ProductID,
			"quantity": it.Quantity,
			"price":    FormatPrice(it.PriceCents),
			"total":    FormatPrice(it.TotalCents),
		})
	}
	return map[string]any{
		"id":      inv.ID,
		"items":   lines,
		"total":   FormatPrice(total),
		"created": inv.CreatedAt,
	}
}

func (c *InvoiceCodec) FromWire(body map[string]any, partial bool) (*InvoiceDraft, *ValidationError) {
	return c.schema.decode(body, partial)
}

func assignInvoiceItems(v any, d *InvoiceDraft) string {
	list, ok := v.([]any)
	if !ok {
		return "must be a list of items"
	}
	if len(list) == 0 {
		return "may not be empty"
	}
	lines := make([]InvoiceLineDraft, 0, len(list))
	for _, raw := range list {
		m, ok := raw.(map[string]any)
		if !ok {
			return "each item must be an object"
		}
		pid, _ := m["product"].(string)
		if pid, ok = validate.ID(pid); !ok {
			return "each item needs a product id"
		}
		qty, ok := intValue(m["quantity"])
		if !ok || qty < 1 {
			return "each item needs a positive integer quantity"
		}
		lines = append(lines, InvoiceLineDraft{ProductID: pid, Quantity: qty})
	}
	d.Lines = lines
	return ""
}
