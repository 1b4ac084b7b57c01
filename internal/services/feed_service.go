package services

import (
	"stockroom/internal/domain"
	"stockroom/internal/repos"
	"stockroom/internal/wire"

	"github.com/google/uuid"
)

type FeedService struct {
	Repo *repos.FeedRepo
}

func NewFeedService(repo *repos.FeedRepo) *FeedService { return &FeedService{Repo: repo} }

func (s *FeedService) List() ([]domain.FeedItem, error) { return s.Repo.List() }

func (s *FeedService) ListByOwner(ownerID string) ([]domain.FeedItem, error) {
	return s.Repo.ListByOwner(ownerID)
}

func (s *FeedService) Get(id string) (domain.FeedItem, error) { return s.Repo.Get(id) }

func (s *FeedService) Create(ownerID string, d *wire.FeedDraft) (domain.FeedItem, error) {
	now := nowStamp()
	it := domain.FeedItem{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if d.StatusText != nil {
		it.StatusText = *d.StatusText
	}
	if err := s.Repo.Create(it); err != nil {
		return domain.FeedItem{}, err
	}
	return it, nil
}

func (s *FeedService) Update(it domain.FeedItem, d *wire.FeedDraft) (domain.FeedItem, error) {
	if d.StatusText != nil {
		it.StatusText = *d.StatusText
	}
	it.UpdatedAt = nowStamp()
	if err := s.Repo.Update(it); err != nil {
		return domain.FeedItem{}, err
	}
	return it, nil
}

func (s *FeedService) Delete(id string) error { return s.Repo.Delete(id) }
