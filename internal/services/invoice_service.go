package services

import (
	"errors"

	"stockroom/internal/domain"
	"stockroom/internal/repos"
	"stockroom/internal/wire"

	"github.com/google/uuid"
)

type InvoiceService struct {
	Invoices *repos.InvoiceRepo
	Products *repos.ProductRepo
}

func NewInvoiceService(invoices *repos.InvoiceRepo, products *repos.ProductRepo) *InvoiceService {
	return &InvoiceService{Invoices: invoices, Products: products}
}

func (s *InvoiceService) ListByOwner(ownerID string) ([]domain.Invoice, error) {
	return s.Invoices.ListByOwner(ownerID)
}

func (s *InvoiceService) Get(id string) (domain.Invoice, []domain.InvoiceItem, error) {
	inv, err := s.Invoices.Get(id)
	if err != nil {
		return domain.Invoice{}, nil, err
	}
	items, err := s.Invoices.Items(id)
	if err != nil {
		return domain.Invoice{}, nil, err
	}
	return inv, items, nil
}

// Create issues an invoice for the caller. Each line's price comes from
// the referenced product as it stands now; an unknown product is a field
// error, not a 404, since the id arrived inside the payload.
func (s *InvoiceService) Create(ownerID string, d *wire.InvoiceDraft) (domain.Invoice, []domain.InvoiceItem, error) {
	inv := domain.Invoice{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		CreatedAt: nowStamp(),
	}
	items := make([]domain.InvoiceItem, 0, len(d.Lines))
	for _, line := range d.Lines {
		p, err := s.Products.Get(line.ProductID)
		if err != nil {
			if errors.Is(err, repos.ErrNotFound) {
				verr := &wire.ValidationError{}
				verr.Add("items", "unknown product "+line.ProductID)
				return domain.Invoice{}, nil, verr
			}
			return domain.Invoice{}, nil, err
		}
		items = append(items, domain.InvoiceItem{
			InvoiceID:  inv.ID,
			ProductID:  p.ID,
			Quantity:   line.Quantity,
			PriceCents: p.PriceCents,
			TotalCents: p.PriceCents * int64(line.Quantity),
		})
	}
	if err := s.Invoices.Create(inv, items); err != nil {
		return domain.Invoice{}, nil, err
	}
	return inv, items, nil
}

func (s *InvoiceService) Delete(id string) error { return s.Invoices.Delete(id) }
