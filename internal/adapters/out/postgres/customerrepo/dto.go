// Package customerrepo provides read access to customer reference data.
// Account management lives outside this service; notifications only need the
// customer's name and phone number.
package customerrepo

import (
	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for customers.
type CustomerDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string
	Phone string
}

// TableName specifies the database table name for customers.
func (CustomerDTO) TableName() string {
	return "customers"
}
