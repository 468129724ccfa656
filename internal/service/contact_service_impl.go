package service

import (
	"context"

	"github.com/contactbook/backend/internal/model"
	"github.com/contactbook/backend/internal/repository"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo repository.ContactRepository
}

// NewContactService creates a ContactService backed by the given repository.
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactServiceImpl{repo: repo}
}

// Create stores a new contact. Field values are persisted as given;
// the database assigns ID and CreatedAt.
func (s *contactServiceImpl) Create(ctx context.Context, c *model.Contact) error {
	return s.repo.Create(ctx, c)
}

func (s *contactServiceImpl) Update(ctx context.Context, c *model.Contact) error {
	return s.repo.Update(ctx, c)
}

func (s *contactServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *contactServiceImpl) List(ctx context.Context, opts model.ContactListOptions) ([]*model.Contact, error) {
	return s.repo.List(ctx, opts)
}

func (s *contactServiceImpl) GetByID(ctx context.Context, id int64) (*model.Contact, error) {
	return s.repo.GetByID(ctx, id)
}
