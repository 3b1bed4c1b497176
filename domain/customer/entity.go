package customer

import (
	"time"

	"github.com/google/uuid"
)

// Role User role
type Role string

const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "superadmin"
)

// ParseRole validates a role value. An empty value defaults to RoleUser.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case "":
		return RoleUser, nil
	case RoleUser, RoleAdmin, RoleSuperAdmin:
		return Role(s), nil
	default:
		return "", ErrInvalidRole
	}
}

// Customer A dashboard user record. The identity is assigned on creation
// and immutable thereafter. The password is stored exactly as supplied;
// the list projection is responsible for stripping it.
type Customer struct {
	id          string
	name        string
	email       string
	password    string
	city        string
	state       string
	country     string
	occupation  string
	phoneNumber string
	role        Role
	createdAt   time.Time
	updatedAt   time.Time
}

// CreateFields Input for creating a customer. Name, Email and Password are
// required; Role defaults to "user" when empty.
type CreateFields struct {
	Name        string
	Email       string
	Password    string
	City        string
	State       string
	Country     string
	Occupation  string
	PhoneNumber string
	Role        string
}

// New creates a customer record with a fresh identity.
func New(fields CreateFields) (*Customer, error) {
	if fields.Name == "" || fields.Email == "" || fields.Password == "" {
		return nil, ErrMissingRequiredFields
	}

	role, err := ParseRole(fields.Role)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &Customer{
		id:          uuid.New().String(),
		name:        fields.Name,
		email:       fields.Email,
		password:    fields.Password,
		city:        fields.City,
		state:       fields.State,
		country:     fields.Country,
		occupation:  fields.Occupation,
		phoneNumber: fields.PhoneNumber,
		role:        role,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// UpdateFields The allow-listed partial-update surface. A nil field keeps
// the prior value. Password, city and state are not updatable here.
type UpdateFields struct {
	Name        *string
	Email       *string
	PhoneNumber *string
	Country     *string
	Occupation  *string
	Role        *string
}

// Apply merges the supplied fields into the record.
func (c *Customer) Apply(fields UpdateFields) error {
	if fields.Role != nil {
		role, err := ParseRole(*fields.Role)
		if err != nil {
			return err
		}
		c.role = role
	}
	if fields.Name != nil {
		c.name = *fields.Name
	}
	if fields.Email != nil {
		c.email = *fields.Email
	}
	if fields.PhoneNumber != nil {
		c.phoneNumber = *fields.PhoneNumber
	}
	if fields.Country != nil {
		c.country = *fields.Country
	}
	if fields.Occupation != nil {
		c.occupation = *fields.Occupation
	}
	c.updatedAt = time.Now()
	return nil
}

func (c *Customer) ID() string           { return c.id }
func (c *Customer) Name() string         { return c.name }
func (c *Customer) Email() string        { return c.email }
func (c *Customer) Password() string     { return c.password }
func (c *Customer) City() string         { return c.city }
func (c *Customer) State() string        { return c.state }
func (c *Customer) Country() string      { return c.country }
func (c *Customer) Occupation() string   { return c.occupation }
func (c *Customer) PhoneNumber() string  { return c.phoneNumber }
func (c *Customer) Role() Role           { return c.role }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }
func (c *Customer) UpdatedAt() time.Time { return c.updatedAt }

// ReconstructionDTO Rebuild input for the persistence layer. Only
// repository implementations should use it.
type ReconstructionDTO struct {
	ID          string
	Name        string
	Email       string
	Password    string
	City        string
	State       string
	Country     string
	Occupation  string
	PhoneNumber string
	Role        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RebuildFromDTO reconstructs a customer from stored data.
func RebuildFromDTO(dto ReconstructionDTO) *Customer {
	return &Customer{
		id:          dto.ID,
		name:        dto.Name,
		email:       dto.Email,
		password:    dto.Password,
		city:        dto.City,
		state:       dto.State,
		country:     dto.Country,
		occupation:  dto.Occupation,
		phoneNumber: dto.PhoneNumber,
		role:        Role(dto.Role),
		createdAt:   dto.CreatedAt,
		updatedAt:   dto.UpdatedAt,
	}
}
