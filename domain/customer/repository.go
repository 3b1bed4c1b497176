package customer

import "context"

// Repository Customer persistence.
//
// Implementations return ErrNotFound for unresolved ids and ErrEmailTaken
// when an insert or update collides with the email uniqueness constraint.
type Repository interface {
	// Insert persists a new record.
	Insert(ctx context.Context, c *Customer) error

	// FindByID looks a record up by id.
	FindByID(ctx context.Context, id string) (*Customer, error)

	// FindByEmail looks a record up by exact email. Returns (nil, nil)
	// when no record matches.
	FindByEmail(ctx context.Context, email string) (*Customer, error)

	// FindByRole returns all records with the given role.
	FindByRole(ctx context.Context, role Role) ([]*Customer, error)

	// FindAll returns every record regardless of role.
	FindAll(ctx context.Context) ([]*Customer, error)

	// Update persists changes to an existing record.
	Update(ctx context.Context, c *Customer) error

	// Delete removes a record permanently.
	Delete(ctx context.Context, id string) error

	// Count returns the number of records.
	Count(ctx context.Context) (int64, error)
}
