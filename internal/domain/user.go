package domain

type User struct {
	ID        string `db:"id"`
	Email     string `db:"email"`
	Name      string `db:"name"`
	Hash      string `db:"password_hash"`
	CreatedAt string `db:"created_at"`
	UpdatedAt string `db:"updated_at"`
}
