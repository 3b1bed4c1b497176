package po

import (
	"time"

	"dashboard/domain/customer"
)

// CustomerPO Row shape for the users table. The unique index on email
// closes the check-then-insert race at the store; under the
// utf8mb4_unicode_ci collation it is case-insensitive.
type CustomerPO struct {
	ID          string    `gorm:"primaryKey;size:64"`
	Name        string    `gorm:"size:100;not null"`
	Email       string    `gorm:"size:255;uniqueIndex;not null"`
	Password    string    `gorm:"size:255;not null"`
	City        string    `gorm:"size:100"`
	State       string    `gorm:"size:100"`
	Country     string    `gorm:"size:100"`
	Occupation  string    `gorm:"size:100"`
	PhoneNumber string    `gorm:"size:32"`
	Role        string    `gorm:"size:20;not null;default:user;index"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (CustomerPO) TableName() string {
	return "users"
}

func FromCustomerDomain(c *customer.Customer) *CustomerPO {
	return &CustomerPO{
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

func (po *CustomerPO) ToDomain() *customer.Customer {
	return customer.RebuildFromDTO(customer.ReconstructionDTO{
		ID:          po.ID,
		Name:        po.Name,
		Email:       po.Email,
		Password:    po.Password,
		City:        po.City,
		State:       po.State,
		Country:     po.Country,
		Occupation:  po.Occupation,
		PhoneNumber: po.PhoneNumber,
		Role:        po.Role,
		CreatedAt:   po.CreatedAt,
		UpdatedAt:   po.UpdatedAt,
	})
}
