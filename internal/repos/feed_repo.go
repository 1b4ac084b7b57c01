package repos

import (
	"stockroom/internal/domain"

	"github.com/jmoiron/sqlx"
)

type FeedRepo struct{ db *sqlx.DB }

func NewFeedRepo(db *sqlx.DB) *FeedRepo { return &FeedRepo{db: db} }

const feedCols = `id, owner_id, status_text, created_at, updated_at`

func (r *FeedRepo) List() ([]domain.FeedItem, error) {
	var out []domain.FeedItem
	err := r.db.Select(&out, `SELECT `+feedCols+` FROM feed_items ORDER BY created_at DESC, id`)
	return out, err
}

func (r *FeedRepo) ListByOwner(ownerID string) ([]domain.FeedItem, error) {
	var out []domain.FeedItem
	err := r.db.Select(&out, `SELECT `+feedCols+` FROM feed_items WHERE owner_id = ? ORDER BY created_at DESC, id`, ownerID)
	return out, err
}

func (r *FeedRepo) Get(id string) (domain.FeedItem, error) {
	var it domain.FeedItem
	err := r.db.Get(&it, `SELECT `+feedCols+` FROM feed_items WHERE id = ?`, id)
	return it, notFound(err)
}

func (r *FeedRepo) Create(it domain.FeedItem) error {
	_, err := r.db.NamedExec(`
		INSERT INTO feed_items(id, owner_id, status_text, created_at, updated_at)
		VALUES(:id, :owner_id, :status_text, :created_at, :updated_at)`, it)
	return err
}

func (r *FeedRepo) Update(it domain.FeedItem) error {
	res, err := r.db.NamedExec(`
		UPDATE feed_items SET status_text = :status_text, updated_at = :updated_at WHERE id = :id`, it)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *FeedRepo) Delete(id string) error {
	res, err := r.db.Exec(`DELETE FROM feed_items WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
