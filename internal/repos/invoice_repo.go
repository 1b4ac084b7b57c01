package repos

import (
	"stockroom/internal/domain"

	"github.com/jmoiron/sqlx"
)

type InvoiceRepo struct{ db *sqlx.DB }

func NewInvoiceRepo(db *sqlx.DB) *InvoiceRepo { return &InvoiceRepo{db: db} }

func (r *InvoiceRepo) ListByOwner(ownerID string) ([]domain.Invoice, error) {
	var out []domain.Invoice
	err := r.db.Select(&out, `
		SELECT id, owner_id, created_at FROM invoices
		WHERE owner_id = ? ORDER BY created_at DESC, id`, ownerID)
	return out, err
}

func (r *InvoiceRepo) Get(id string) (domain.Invoice, error) {
	var inv domain.Invoice
	err := r.db.Get(&inv, `SELECT id, owner_id, created_at FROM invoices WHERE id = ?`, id)
	return inv, notFound(err)
}

func (r *InvoiceRepo) Items(invoiceID string) ([]domain.InvoiceItem, error) {
	var out []domain.InvoiceItem
	err := r.db.Select(&out, `
		SELECT invoice_id, product_id, quantity, price_cents, total_cents
		FROM invoice_items WHERE invoice_id = ? ORDER BY product_id`, invoiceID)
	return out, err
}

// Create writes the invoice and its lines in one transaction.
func (r *InvoiceRepo) Create(inv domain.Invoice, items []domain.InvoiceItem) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.NamedExec(`
		INSERT INTO invoices(id, owner_id, created_at)
		VALUES(:id, :owner_id, :created_at)`, inv); err != nil {
		return err
	}
	for _, it := range items {
		if _, err := tx.NamedExec(`
			INSERT INTO invoice_items(invoice_id, product_id, quantity, price_cents, total_cents)
			VALUES(:invoice_id, :product_id, :quantity, :price_cents, :total_cents)`, it); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Delete removes the invoice; its lines go with it via ON DELETE CASCADE.
func (r *InvoiceRepo) Delete(id string) error {
	res, err := r.db.Exec(`DELETE FROM invoices WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
