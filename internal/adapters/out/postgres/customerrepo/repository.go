package customerrepo

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCustomerRepository implements CustomerRepository using GORM.
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GORM customer repository.
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// Get retrieves a customer by ID.
func (r *GormCustomerRepository) Get(ctx context.Context, id kernel.UUID) (ports.Customer, error) {
	if err := id.Validate(); err != nil {
		return ports.Customer{}, err
	}

	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Customer{}, errs.NewObjectNotFoundError("customer", id.String())
		}
		return ports.Customer{}, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.Customer{}, err
	}

	return ports.Customer{
		ID:    customerID,
		Name:  dto.Name,
		Phone: dto.Phone,
	}, nil
}
