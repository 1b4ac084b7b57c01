package repos

import (
	"time"

	"github.com/jmoiron/sqlx"
)

// RefreshTokenRepo tracks issued refresh tokens by jti so rotation can
// invalidate a token the first time it is redeemed.
type RefreshTokenRepo struct{ db *sqlx.DB }

func NewRefreshTokenRepo(db *sqlx.DB) *RefreshTokenRepo { return &RefreshTokenRepo{db: db} }

func (r *RefreshTokenRepo) Store(jti, userID string, expires time.Time) error {
	_, err := r.db.Exec(`
		INSERT INTO refresh_tokens(jti, user_id, expires_at) VALUES(?,?,?)`,
		jti, userID, expires.UTC().Format(time.RFC3339))
	return err
}

// Redeem revokes the token and reports whether it was still live. A second
// redemption of the same jti returns false.
func (r *RefreshTokenRepo) Redeem(jti string, now time.Time) (bool, error) {
	res, err := r.db.Exec(`
		UPDATE refresh_tokens SET revoked = 1
		WHERE jti = ? AND revoked = 0 AND expires_at > ?`,
		jti, now.UTC().Format(time.RFC3339))
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n == 1, err
}

// Discard drops a token that was stored but never handed out.
func (r *RefreshTokenRepo) Discard(jti string) error {
	_, err := r.db.Exec(`DELETE FROM refresh_tokens WHERE jti = ?`, jti)
	return err
}

func (r *RefreshTokenRepo) PurgeExpired(now time.Time) error {
	_, err := r.db.Exec(`DELETE FROM refresh_tokens WHERE expires_at <= ?`,
		now.UTC().Format(time.RFC3339))
	return err
}
