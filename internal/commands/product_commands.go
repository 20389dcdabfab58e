package commands

import "io"

// CreateProductCommand describes a single product creation.
type CreateProductCommand struct {
	ProductName string  `json:"productName"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	CreatedBy   string  `json:"-"`
}

// UpdateProductCommand describes a full update of one product.
type UpdateProductCommand struct {
	ProductID   string  `json:"-"`
	ProductName string  `json:"productName"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	UpdatedBy   string  `json:"-"`
}

// DeleteProductCommand deletes one product by id.
type DeleteProductCommand struct {
	ProductID string `json:"-"`
}

// CreateBulkProductCommand imports products from a spreadsheet. Rows start at
// row 2; row 1 is the header.
type CreateBulkProductCommand struct {
	File      io.Reader `json:"-"`
	CreatedBy string    `json:"-"`
}

// DeleteBulkProductCommand deletes every listed product, all-or-nothing.
type DeleteBulkProductCommand struct {
	ProductIDs []string `json:"listProductId"`
}

// GetAllProductsQuery lists the whole catalog.
type GetAllProductsQuery struct{}

// GetProductByIDQuery fetches one product.
type GetProductByIDQuery struct {
	ProductID string
}
