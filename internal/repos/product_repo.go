package repos

import (
	"stockroom/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

const productCols = `id, owner_id, name, description, price_cents, stock, created_at, updated_at`

func (r *ProductRepo) List() ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `SELECT `+productCols+` FROM products ORDER BY created_at DESC, id`)
	return out, err
}

func (r *ProductRepo) ListByOwner(ownerID string) ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `SELECT `+productCols+` FROM products WHERE owner_id = ? ORDER BY created_at DESC, id`, ownerID)
	return out, err
}

func (r *ProductRepo) Get(id string) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `SELECT `+productCols+` FROM products WHERE id = ?`, id)
	return p, notFound(err)
}

func (r *ProductRepo) Create(p domain.Product) error {
	_, err := r.db.NamedExec(`
		INSERT INTO products(id, owner_id, name, description, price_cents, stock, created_at, updated_at)
		VALUES(:id, :owner_id, :name, :description, :price_cents, :stock, :created_at, :updated_at)`, p)
	return err
}

// Update rewrites the mutable columns; owner and created are immutable.
func (r *ProductRepo) Update(p domain.Product) error {
	res, err := r.db.NamedExec(`
		UPDATE products
		SET name = :name, description = :description, price_cents = :price_cents,
		    stock = :stock, updated_at = :updated_at
		WHERE id = :id`, p)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ProductRepo) Delete(id string) error {
	res, err := r.db.Exec(`DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
