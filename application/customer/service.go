// Package customer implements the customer lifecycle operations behind
// the /client and /login surfaces.
package customer

import (
	"context"
	"errors"
	"strings"
	"time"

	"dashboard/domain/customer"
	apperrors "dashboard/pkg/errors"
)

// Service Customer lifecycle application service.
type Service struct {
	repo customer.Repository
}

// NewService creates the customer service on top of a repository.
func NewService(repo customer.Repository) *Service {
	return &Service{repo: repo}
}

// CreateRequest Create-customer input.
type CreateRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	City        string `json:"city"`
	State       string `json:"state"`
	Country     string `json:"country"`
	Occupation  string `json:"occupation"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `json:"role"`
}

// Response Full customer projection. It carries the stored password; only
// the list projections strip it.
type Response struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Password    string    `json:"password"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	Country     string    `json:"country"`
	Occupation  string    `json:"occupation"`
	PhoneNumber string    `json:"phoneNumber"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// PublicResponse Customer projection without the password field.
type PublicResponse struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	Country     string    `json:"country"`
	Occupation  string    `json:"occupation"`
	PhoneNumber string    `json:"phoneNumber"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Create validates input, enforces email uniqueness and persists a new
// customer.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Response, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, apperrors.Validation("Name, email, and password are required.")
	}

	existing, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "Server error")
	}
	if existing != nil {
		return nil, apperrors.EmailExists()
	}

	c, err := customer.New(customer.CreateFields{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		City:        req.City,
		State:       req.State,
		Country:     req.Country,
		Occupation:  req.Occupation,
		PhoneNumber: req.PhoneNumber,
		Role:        req.Role,
	})
	if err != nil {
		return nil, mapDomainError(err)
	}

	if err := s.repo.Insert(ctx, c); err != nil {
		return nil, mapDomainError(err)
	}

	return toResponse(c), nil
}

// Get returns the full record for one customer id.
func (s *Service) Get(ctx context.Context, id string) (*Response, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapDomainError(err)
	}
	return toResponse(c), nil
}

// List returns all customers holding the user role, password stripped.
func (s *Service) List(ctx context.Context) ([]PublicResponse, error) {
	return s.listByRole(ctx, customer.RoleUser)
}

// Admins returns all customers holding the admin role, password stripped.
func (s *Service) Admins(ctx context.Context) ([]PublicResponse, error) {
	return s.listByRole(ctx, customer.RoleAdmin)
}

func (s *Service) listByRole(ctx context.Context, role customer.Role) ([]PublicResponse, error) {
	records, err := s.repo.FindByRole(ctx, role)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "Server error")
	}

	out := make([]PublicResponse, len(records))
	for i, c := range records {
		out[i] = toPublicResponse(c)
	}
	return out, nil
}

// UpdateRequest Allow-listed partial update. Absent fields keep their
// stored values.
type UpdateRequest struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phoneNumber"`
	Country     *string `json:"country"`
	Occupation  *string `json:"occupation"`
	Role        *string `json:"role"`
}

// Update merges the supplied fields into the record and returns the
// updated projection.
func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (*Response, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapDomainError(err)
	}

	if err := c.Apply(customer.UpdateFields{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Country:     req.Country,
		Occupation:  req.Occupation,
		Role:        req.Role,
	}); err != nil {
		return nil, mapDomainError(err)
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, mapDomainError(err)
	}

	return toResponse(c), nil
}

// Delete removes the record permanently. A second delete for the same id
// reports not-found.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapDomainError(err)
	}
	return nil
}

// LoginUser The projection returned to a successfully logged-in user.
type LoginUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Login compares the submitted password with the stored one. Both sides
// are trimmed before comparison; the comparison itself is plaintext, a
// known gap carried over deliberately.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginUser, error) {
	c, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "Server error")
	}
	if c == nil {
		return nil, apperrors.UserNotFound()
	}

	if strings.TrimSpace(c.Password()) != strings.TrimSpace(password) {
		return nil, apperrors.InvalidPassword()
	}

	return &LoginUser{Name: c.Name(), Email: c.Email()}, nil
}

func mapDomainError(err error) error {
	switch {
	case errors.Is(err, customer.ErrNotFound):
		return apperrors.CustomerNotFound()
	case errors.Is(err, customer.ErrEmailTaken):
		return apperrors.EmailExists()
	case errors.Is(err, customer.ErrMissingRequiredFields):
		return apperrors.Validation("Name, email, and password are required.")
	case errors.Is(err, customer.ErrInvalidRole):
		return apperrors.Validation("Invalid role.")
	default:
		return apperrors.Wrap(err, apperrors.CodeInternal, "Server error")
	}
}

func toResponse(c *customer.Customer) *Response {
	return &Response{
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
	}
}

func toPublicResponse(c *customer.Customer) PublicResponse {
	return PublicResponse{
		ID:          c.ID(),
		Name:        c.Name(),
		Email:       c.Email(),
		City:        c.City(),
		State:       c.State(),
		Country:     c.Country(),
		Occupation:  c.Occupation(),
		PhoneNumber: c.PhoneNumber(),
		Role:        string(c.Role()),
		CreatedAt:   c.CreatedAt(),
		UpdatedAt:   c.UpdatedAt(),
	}
}
