package services

import (
	"stockroom/internal/domain"
	"stockroom/internal/repos"
	"stockroom/internal/wire"

	"github.com/google/uuid"
)

type ProductService struct {
	Repo *repos.ProductRepo
}

func NewProductService(repo *repos.ProductRepo) *ProductService {
	return &ProductService{Repo: repo}
}

func (s *ProductService) List() ([]domain.Product, error) { return s.Repo.List() }

func (s *ProductService) ListByOwner(ownerID string) ([]domain.Product, error) {
	return s.Repo.ListByOwner(ownerID)
}

func (s *ProductService) Get(id string) (domain.Product, error) { return s.Repo.Get(id) }

// Create builds a record owned by the caller with created == updated.
func (s *ProductService) Create(ownerID string, d *wire.ProductDraft) (domain.Product, error) {
	now := nowStamp()
	p := domain.Product{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyProductDraft(&p, d)
	if err := s.Repo.Create(p); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

// Update applies the supplied fields and bumps updated; owner and created
// are never touched.
func (s *ProductService) Update(p domain.Product, d *wire.ProductDraft) (domain.Product, error) {
	applyProductDraft(&p, d)
	p.UpdatedAt = nowStamp()
	if err := s.Repo.Update(p); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

func (s *ProductService) Delete(id string) error { return s.Repo.Delete(id) }

func applyProductDraft(p *domain.Product, d *wire.ProductDraft) {
	if d.Name != nil {
		p.Name = *d.Name
	}
	if d.Description != nil {
		p.Description = *d.Description
	}
	if d.PriceCents != nil {
		p.PriceCents = *d.PriceCents
	}
	if d.Stock != nil {
		p.Stock = *d.Stock
	}
}
