package services

import (
	"stockroom/internal/domain"
	"stockroom/internal/repos"
	"stockroom/internal/wire"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type ProfileService struct {
	Users *repos.UserRepo
}

func NewProfileService(users *repos.UserRepo) *ProfileService { return &ProfileService{Users: users} }

func (s *ProfileService) List() ([]domain.User, error) { return s.Users.List() }

func (s *ProfileService) Get(id string) (*domain.User, error) { return s.Users.ByID(id) }

// Register creates a new account. A taken email is reported as a field
// error so the handler returns it like any other validation failure.
func (s *ProfileService) Register(d *wire.ProfileDraft) (*domain.User, error) {
	taken, err := s.Users.EmailExists(*d.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		verr := &wire.ValidationError{}
		verr.Add("email", "a user with this email already exists")
		return nil, verr
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(*d.Password), 12)
	if err != nil {
		return nil, err
	}
	now := nowStamp()
	u := domain.User{
		ID:        uuid.NewString(),
		Email:     *d.Email,
		Name:      *d.Name,
		Hash:      string(hash),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Users.Create(u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Update applies profile changes; a supplied password is re-hashed.
func (s *ProfileService) Update(u domain.User, d *wire.ProfileDraft) (*domain.User, error) {
	if d.Email != nil && *d.Email != u.Email {
		taken, err := s.Users.EmailExists(*d.Email)
		if err != nil {
			return nil, err
		}
		if taken {
			verr := &wire.ValidationError{}
			verr.Add("email", "a user with this email already exists")
			return nil, verr
		}
		u.Email = *d.Email
	}
	if d.Name != nil {
		u.Name = *d.Name
	}
	if d.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*d.Password), 12)
		if err != nil {
			return nil, err
		}
		u.Hash = string(hash)
	}
	u.UpdatedAt = nowStamp()
	if err := s.Users.Update(u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *ProfileService) Delete(id string) error { return s.Users.Delete(id) }
