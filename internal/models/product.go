package models

import (
	"time"

	"github.com/google/uuid"
)

// Product represents a catalog item. State changes go through NewProduct and
// Update so the audit fields stay consistent.
type Product struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ProductName string    `json:"productName" gorm:"type:varchar(50)" validate:"required,min=1,max=50"`
	Price       float64   `json:"price" validate:"required,gt=0"`
	Description string    `json:"description" validate:"required"`
	CreatedBy   string    `json:"createdBy"`
	CreatedDate time.Time `json:"createdDate"`
	UpdatedBy   string    `json:"updatedBy"`
	UpdatedDate time.Time `json:"updatedDate"`
}

// NewProduct creates a product with a fresh ID and audit fields set.
func NewProduct(productName string, price float64, description, createdBy string) *Product {
	now := time.Now().UTC()
	return &Product{
		ID:          uuid.New().String(),
		ProductName: productName,
		Price:       price,
		Description: description,
		CreatedBy:   createdBy,
		CreatedDate: now,
		UpdatedDate: now,
	}
}

// Update replaces the mutable fields and stamps the update audit fields.
func (p *Product) Update(productName string, price float64, description, updatedBy string) {
	p.ProductName = productName
	p.Price = price
	p.Description = description
	p.UpdatedBy = updatedBy
	p.UpdatedDate = time.Now().UTC()
}
