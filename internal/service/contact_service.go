package service

import (
	"context"

	"github.com/contactbook/backend/internal/model"
)

// ContactService defines the business operations on contacts. Handlers
// depend on this interface rather than the repository so tests can
// substitute an in-memory implementation.
type ContactService interface {
	// Create stores a new contact. c.ID and c.CreatedAt are populated
	// by the implementation.
	Create(ctx context.Context, c *model.Contact) error

	// Update overwrites the mutable fields of the contact with c.ID.
	// Updating a nonexistent id succeeds without effect.
	Update(ctx context.Context, c *model.Contact) error

	// Delete removes a contact. Deleting a nonexistent id succeeds.
	Delete(ctx context.Context, id int64) error

	// List returns contacts filtered and ordered by opts.
	List(ctx context.Context, opts model.ContactListOptions) ([]*model.Contact, error)

	// GetByID returns a single contact, or repository.ErrNotFound.
	GetByID(ctx context.Context, id int64) (*model.Contact, error)
}
