package mysql

import (
	"context"
	"errors"
	"strings"

	"dashboard/domain/customer"
	"dashboard/infrastructure/persistence/mysql/po"

	"gorm.io/gorm"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	errStr := err.Error()
	return strings.Contains(errStr, "Duplicate entry") ||
		strings.Contains(errStr, "1062")
}

func (r *CustomerRepository) Insert(ctx context.Context, c *customer.Customer) error {
	customerPO := po.FromCustomerDomain(c)
	if err := r.db.WithContext(ctx).Create(customerPO).Error; err != nil {
		if isDuplicateKeyError(err) {
			return customer.ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id string) (*customer.Customer, error) {
	var customerPO po.CustomerPO
	result := r.db.WithContext(ctx).First(&customerPO, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, customer.ErrNotFound
		}
		return nil, result.Error
	}
	return customerPO.ToDomain(), nil
}

func (r *CustomerRepository) FindByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	var customerPO po.CustomerPO
	result := r.db.WithContext(ctx).First(&customerPO, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return customerPO.ToDomain(), nil
}

func (r *CustomerRepository) FindByRole(ctx context.Context, role customer.Role) ([]*customer.Customer, error) {
	var customerPOs []po.CustomerPO
	if err := r.db.WithContext(ctx).Where("role = ?", string(role)).Find(&customerPOs).Error; err != nil {
		return nil, err
	}
	return toDomainSlice(customerPOs), nil
}

func (r *CustomerRepository) FindAll(ctx context.Context) ([]*customer.Customer, error) {
	var customerPOs []po.CustomerPO
	if err := r.db.WithContext(ctx).Find(&customerPOs).Error; err != nil {
		return nil, err
	}
	return toDomainSlice(customerPOs), nil
}

func toDomainSlice(pos []po.CustomerPO) []*customer.Customer {
	customers := make([]*customer.Customer, len(pos))
	for i := range pos {
		customers[i] = pos[i].ToDomain()
	}
	return customers
}

func (r *CustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	customerPO := po.FromCustomerDomain(c)

	result := r.db.WithContext(ctx).Model(&po.CustomerPO{}).
		Where("id = ?", c.ID()).
		Updates(map[string]interface{}{
			"name":         customerPO.Name,
			"email":        customerPO.Email,
			"phone_number": customerPO.PhoneNumber,
			"country":      customerPO.Country,
			"occupation":   customerPO.Occupation,
			"role":         customerPO.Role,
			"updated_at":   customerPO.UpdatedAt,
		})
	if result.Error != nil {
		if isDuplicateKeyError(result.Error) {
			return customer.ErrEmailTaken
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&po.CustomerPO{}).Where("id = ?", c.ID()).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return customer.ErrNotFound
		}
	}
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&po.CustomerPO{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return customer.ErrNotFound
	}
	return nil
}

func (r *CustomerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&po.CustomerPO{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

var _ customer.Repository = (*CustomerRepository)(nil)
