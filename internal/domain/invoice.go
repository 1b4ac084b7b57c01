package domain

// Invoice is a bill issued to its owner; line items are immutable once
// the invoice is created.
type Invoice struct {
	ID        string `db:"id"`
	OwnerID   string `db:"owner_id"`
	CreatedAt string `db:"created_at"`
}

// InvoiceItem is one invoice line. Price and total are captured at issue
// time so later product edits do not rewrite history.
type InvoiceItem struct {
	InvoiceID  string `db:"invoice_id"`
	ProductID  string `db:"product_id"`
	Quantity   int    `db:"quantity"`
	PriceCents int64  `db:"price_cents"`
	TotalCents int64  `db:"total_cents"`
}
