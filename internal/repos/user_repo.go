package repos

import (
	"stockroom/internal/domain"

	"github.com/jmoiron/sqlx"
)

type UserRepo struct{ DB *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{DB: db} }

const userCols = `id, email, name, password_hash, created_at, updated_at`

func (r *UserRepo) ByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT `+userCols+` FROM users WHERE LOWER(email)=LOWER(?)`, email)
	if err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r *UserRepo) ByID(id string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT `+userCols+` FROM users WHERE id=?`, id)
	if err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r *UserRepo) List() ([]domain.User, error) {
	var out []domain.User
	err := r.DB.Select(&out, `SELECT `+userCols+` FROM users ORDER BY created_at, id`)
	return out, err
}

func (r *UserRepo) EmailExists(email string) (bool, error) {
	var n int
	err := r.DB.Get(&n, `SELECT COUNT(*) FROM users WHERE LOWER(email)=LOWER(?)`, email)
	return n > 0, err
}

func (r *UserRepo) Create(u domain.User) error {
	_, err := r.DB.NamedExec(`
		INSERT INTO users(id, email, name, password_hash, created_at, updated_at)
		VALUES(:id, :email, :name, :password_hash, :created_at, :updated_at)`, u)
	return err
}

func (r *UserRepo) Update(u domain.User) error {
	res, err := r.DB.NamedExec(`
		UPDATE users
		SET email = :email, name = :name, password_hash = :password_hash, updated_at = :updated_at
		WHERE id = :id`, u)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the user; owned products, feed items and refresh tokens
// go with it via ON DELETE CASCADE.
func (r *UserRepo) Delete(id string) error {
	res, err := r.DB.Exec(`DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
