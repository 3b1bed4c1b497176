// Package memory holds map-backed repository implementations. They serve
// the test suites and store-less development runs.
package memory

import (
	"context"
	"sync"

	"dashboard/domain/customer"
)

// CustomerRepository In-memory customer store.
type CustomerRepository struct {
	mu      sync.RWMutex
	records map[string]*customer.Customer
}

// NewCustomerRepository creates an empty in-memory customer store.
func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{
		records: make(map[string]*customer.Customer),
	}
}

// clone detaches a record from callers so later mutations do not leak in.
func clone(c *customer.Customer) *customer.Customer {
	return customer.RebuildFromDTO(customer.ReconstructionDTO{
		ID:          c.ID(),
		Name:        c.Name(),
		Email:       c.Email(),
		Password:    c.Password(),
		City:        c.City(),
		State:       c.State(),
		Country:     c.Country(),
		Occupation:  c.Occupation(),
		PhoneNumber: c.PhoneNumber(),
		Role:        string(c.Role()),
		CreatedAt:   c.CreatedAt(),
		UpdatedAt:   c.UpdatedAt(),
	})
}

func (r *CustomerRepository) Insert(ctx context.Context, c *customer.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.records {
		if existing.Email() == c.Email() {
			return customer.ErrEmailTaken
		}
	}
	r.records[c.ID()] = clone(c)
	return nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id string) (*customer.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.records[id]
	if !ok {
		return nil, customer.ErrNotFound
	}
	return clone(c), nil
}

func (r *CustomerRepository) FindByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.records {
		if c.Email() == email {
			return clone(c), nil
		}
	}
	return nil, nil
}

func (r *CustomerRepository) FindByRole(ctx context.Context, role customer.Role) ([]*customer.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*customer.Customer
	for _, c := range r.records {
		if c.Role() == role {
			out = append(out, clone(c))
		}
	}
	return out, nil
}

func (r *CustomerRepository) FindAll(ctx context.Context) ([]*customer.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*customer.Customer, 0, len(r.records))
	for _, c := range r.records {
		out = append(out, clone(c))
	}
	return out, nil
}

func (r *CustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[c.ID()]; !ok {
		return customer.ErrNotFound
	}
	for id, existing := range r.records {
		if id != c.ID() && existing.Email() == c.Email() {
			return customer.ErrEmailTaken
		}
	}
	r.records[c.ID()] = clone(c)
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[id]; !ok {
		return customer.ErrNotFound
	}
	delete(r.records, id)
	return nil
}

func (r *CustomerRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.records)), nil
}

var _ customer.Repository = (*CustomerRepository)(nil)
