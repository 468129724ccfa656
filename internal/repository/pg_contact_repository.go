package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/contactbook/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ContactRepository defines the persistence interface for contacts.
// It is defined here (in repository) to avoid an import cycle with service.
type ContactRepository interface {
	Create(ctx context.Context, c *model.Contact) error
	Update(ctx context.Context, c *model.Contact) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, opts model.ContactListOptions) ([]*model.Contact, error)
	GetByID(ctx context.Context, id int64) (*model.Contact, error)
}

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

// Ensure PgContactRepository implements ContactRepository at compile time.
var _ ContactRepository = (*PgContactRepository)(nil)

// Create inserts a new contacts row and populates c.ID and c.CreatedAt
// from the database RETURNING clause.
func (r *PgContactRepository) Create(ctx context.Context, c *model.Contact) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO contacts (name, email, phone, notes)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		c.Name, c.Email, c.Phone, c.Notes,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("create contact: %w", err)
	}
	return nil
}

// Update overwrites the mutable fields of the contact identified by c.ID.
// Updating a missing id affects zero rows and is not an error.
func (r *PgContactRepository) Update(ctx context.Context, c *model.Contact) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE contacts SET name = $1, email = $2, phone = $3, notes = $4
		 WHERE id = $5`,
		c.Name, c.Email, c.Phone, c.Notes, c.ID,
	)
	if err != nil {
		return fmt.Errorf("update contact: %w", err)
	}
	return nil
}

// Delete removes the contact with the given id. Deleting a missing id
// is a no-op, same as Update.
func (r *PgContactRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	return nil
}

// List returns contacts matching opts.Search, ordered by opts.Sort.
// A non-empty search matches as a case-insensitive substring against
// name, email, phone or notes; a hit in any field includes the row.
func (r *PgContactRepository) List(ctx context.Context, opts model.ContactListOptions) ([]*model.Contact, error) {
	query := `SELECT id, name, COALESCE(email, ''), COALESCE(phone, ''), COALESCE(notes, ''), created_at
	          FROM contacts`
	var args []any
	if opts.Search != "" {
		query += ` WHERE name ILIKE $1 OR email ILIKE $1 OR phone ILIKE $1 OR notes ILIKE $1`
		args = append(args, "%"+opts.Search+"%")
	}
	query += " ORDER BY " + orderClause(opts.Sort)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	var contacts []*model.Contact
	for rows.Next() {
		var c model.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Notes, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		contacts = append(contacts, &c)
	}
	return contacts, rows.Err()
}

// GetByID returns the contact with the given id, or ErrNotFound.
func (r *PgContactRepository) GetByID(ctx context.Context, id int64) (*model.Contact, error) {
	var c model.Contact
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, COALESCE(email, ''), COALESCE(phone, ''), COALESCE(notes, ''), created_at
		 FROM contacts WHERE id = $1`,
		id,
	).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Notes, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get contact: %w", err)
	}
	return &c, nil
}

// orderClause maps a sort key to its ORDER BY expression. Unrecognized
// keys (including the empty string) sort newest first. No secondary
// tie-break: ties retain store order.
func orderClause(sort string) string {
	switch sort {
	case model.SortOldest:
		return "created_at ASC"
	case model.SortName:
		return "name ASC"
	case model.SortEmail:
		return "email ASC"
	default:
		return "created_at DESC"
	}
}
