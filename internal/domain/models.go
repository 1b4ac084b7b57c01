package domain

// Product is the owned catalog record exposed by the API.
type Product struct {
	ID          string `db:"id"`
	OwnerID     string `db:"owner_id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	PriceCents  int64  `db:"price_cents"`
	Stock       int    `db:"stock"`
	CreatedAt   string `db:"created_at"`
	UpdatedAt   string `db:"updated_at"`
}

// InStock reports whether any units remain.
func (p Product) InStock() bool { return p.Stock > 0 }

// ShortDescription returns the first 50 characters of the description.
func (p Product) ShortDescription() string {
	r := []rune(p.Description)
	if len(r) <= 50 {
		return p.Description
	}
	return string(r[:50])
}

// FeedItem is a status update posted by a user.
type FeedItem struct {
	ID         string `db:"id"`
	OwnerID    string `db:"owner_id"`
	StatusText string `db:"status_text"`
	CreatedAt  string `db:"created_at"`
	UpdatedAt  string `db:"updated_at"`
}
