package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"shopapi/internal/commands"
	"shopapi/internal/models"
	"shopapi/internal/repositories"
	"shopapi/pkg/rabbitmq"
)

// Messages returned by the product operations.
const (
	MsgCreateProductSuccess = "Create product success"
	MsgUpdateProductSuccess = "Update product success"
	MsgDeleteProductSuccess = "Delete product success"
	MsgProductListEmpty     = "Product list cannot be empty"
	MsgFileEmpty            = "File cannot be empty"
)

// MsgProductNotFound formats the not-found message for a product id.
func MsgProductNotFound(id string) string {
	return fmt.Sprintf("No find Product with ID %s", id)
}

// ProductService handles the catalog operations. Mutations run in one
// transaction and publish a catalog event on success when a broker is
// configured.
type ProductService struct {
	uow      repositories.UnitOfWork
	repos    repositories.Repositories
	mqClient *rabbitmq.Client
}

// NewProductService creates a new ProductService. mqClient may be nil; event
// publishing is then skipped.
func NewProductService(uow repositories.UnitOfWork, repos repositories.Repositories, mqClient *rabbitmq.Client) *ProductService {
	return &ProductService{uow: uow, repos: repos, mqClient: mqClient}
}

// GetAllProducts retrieves the whole catalog.
func (s *ProductService) GetAllProducts(ctx context.Context, _ commands.GetAllProductsQuery) *models.OperationResult[[]models.Product] {
	result := models.NewOperationResult[[]models.Product]()

	products, err := s.repos.Products().GetAll(ctx)
	if err != nil {
		return internalError(result, err)
	}

	result.Data = products
	return result
}

// GetProductByID retrieves a single product.
func (s *ProductService) GetProductByID(ctx context.Context, query commands.GetProductByIDQuery) *models.OperationResult[models.Product] {
	result := models.NewOperationResult[models.Product]()

	product, err := s.repos.Products().GetByID(ctx, query.ProductID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			result.AddError(models.ErrNotFound, MsgProductNotFound(query.ProductID))
			return result
		}
		return internalError(result, err)
	}

	result.Data = *product
	return result
}

// CreateProduct constructs the entity, validates the constructed entity, and
// persists it.
func (s *ProductService) CreateProduct(ctx context.Context, cmd commands.CreateProductCommand) *models.OperationResult[string] {
	result := models.NewOperationResult[string]()

	product := models.NewProduct(cmd.ProductName, cmd.Price, cmd.Description, cmd.CreatedBy)
	if addValidationErrors(result, product) {
		return result
	}

	err := s.uow.Do(ctx, func(tx repositories.Repositories) error {
		return tx.Products().Create(ctx, product)
	})
	if err != nil {
		return internalError(result, err)
	}

	s.publishEvent(ctx, "product.created", product.ID)
	result.Data = MsgCreateProductSuccess
	return result
}

// UpdateProduct fetches the product, applies the update, validates the
// resulting entity, and persists it in one transaction.
func (s *ProductService) UpdateProduct(ctx context.Context, cmd commands.UpdateProductCommand) *models.OperationResult[string] {
	result := models.NewOperationResult[string]()

	err := s.uow.Do(ctx, func(tx repositories.Repositories) error {
		product, err := tx.Products().GetByID(ctx, cmd.ProductID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				result.AddError(models.ErrNotFound, MsgProductNotFound(cmd.ProductID))
				return errRollback
			}
			return err
		}

		product.Update(cmd.ProductName, cmd.Price, cmd.Description, cmd.UpdatedBy)
		if addValidationErrors(result, product) {
			return errRollback
		}

		return tx.Products().Update(ctx, product)
	})
	if err != nil {
		if errors.Is(err, errRollback) {
			return result
		}
		return internalError(result, err)
	}

	s.publishEvent(ctx, "product.updated", cmd.ProductID)
	result.Data = MsgUpdateProductSuccess
	return result
}

// DeleteProduct removes one product after confirming it exists.
func (s *ProductService) DeleteProduct(ctx context.Context, cmd commands.DeleteProductCommand) *models.OperationResult[string] {
	result := models.NewOperationResult[string]()

	err := s.uow.Do(ctx, func(tx repositories.Repositories) error {
		if _, err := tx.Products().GetByID(ctx, cmd.ProductID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				result.AddError(models.ErrNotFound, MsgProductNotFound(cmd.ProductID))
				return errRollback
			}
			return err
		}
		return tx.Products().Delete(ctx, cmd.ProductID)
	})
	if err != nil {
		if errors.Is(err, errRollback) {
			return result
		}
		return internalError(result, err)
	}

	s.publishEvent(ctx, "product.deleted", cmd.ProductID)
	result.Data = MsgDeleteProductSuccess
	return result
}

// CreateBulkProduct imports products from a spreadsheet. Row 1 is the header;
// each data row is name, price, description. One invalid row aborts the whole
// batch; nothing is committed partially.
func (s *ProductService) CreateBulkProduct(ctx context.Context, cmd commands.CreateBulkProductCommand) *models.OperationResult[string] {
	result := models.NewOperationResult[string]()

	if cmd.File == nil {
		result.AddError(models.ErrBadRequest, MsgFileEmpty)
		return result
	}

	products, ok := s.parseProducts(cmd, result)
	if !ok {
		return result
	}

	err := s.uow.Do(ctx, func(tx repositories.Repositories) error {
		return tx.Products().CreateBulk(ctx, products)
	})
	if err != nil {
		return internalError(result, err)
	}

	for _, p := range products {
		s.publishEvent(ctx, "product.created", p.ID)
	}
	result.Data = MsgCreateProductSuccess
	return result
}

func (s *ProductService) parseProducts(cmd commands.CreateBulkProductCommand, result *models.OperationResult[string]) ([]models.Product, bool) {
	f, err := excelize.OpenReader(cmd.File)
	if err != nil {
		result.AddError(models.ErrBadRequest, "File is not a valid spreadsheet")
		return nil, false
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		internalError(result, err)
		return nil, false
	}
	if len(rows) < 2 {
		result.AddError(models.ErrBadRequest, MsgFileEmpty)
		return nil, false
	}

	var products []models.Product
	for i, row := range rows[1:] {
		rowNumber := i + 2

		if len(row) < 3 {
			result.AddError(models.ErrBadRequest, fmt.Sprintf("Row %d is missing columns", rowNumber))
			return nil, false
		}

		price, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			result.AddError(models.ErrBadRequest, fmt.Sprintf("Price in row %d is not a number", rowNumber))
			return nil, false
		}

		product := models.NewProduct(row[0], price, row[2], cmd.CreatedBy)
		if addValidationErrors(result, product) {
			return nil, false
		}
		products = append(products, *product)
	}

	return products, true
}

// DeleteBulkProduct resolves every requested id to an existing row first; any
// malformed or missing id aborts the entire batch before a single delete.
func (s *ProductService) DeleteBulkProduct(ctx context.Context, cmd commands.DeleteBulkProductCommand) *models.OperationResult[string] {
	result := models.NewOperationResult[string]()

	if len(cmd.ProductIDs) == 0 {
		result.AddError(models.ErrNotFound, MsgProductListEmpty)
		return result
	}

	err := s.uow.Do(ctx, func(tx repositories.Repositories) error {
		for _, id := range cmd.ProductIDs {
			if _, err := uuid.Parse(id); err != nil {
				result.AddError(models.ErrNotFound, MsgProductNotFound(id))
				return errRollback
			}
			if _, err := tx.Products().GetByID(ctx, id); err != nil {
				if errors.Is(err, repositories.ErrNotFound) {
					result.AddError(models.ErrNotFound, MsgProductNotFound(id))
					return errRollback
				}
				return err
			}
		}
		return tx.Products().DeleteBulk(ctx, cmd.ProductIDs)
	})
	if err != nil {
		if errors.Is(err, errRollback) {
			return result
		}
		return internalError(result, err)
	}

	for _, id := range cmd.ProductIDs {
		s.publishEvent(ctx, "product.deleted", id)
	}
	result.Data = MsgDeleteProductSuccess
	return result
}

// publishEvent sends a catalog event, fire-and-forget: failures are logged
// and never surfaced to the caller.
func (s *ProductService) publishEvent(ctx context.Context, action, productID string) {
	if s.mqClient == nil {
		return
	}

	body, err := json.Marshal(map[string]string{"action": action, "productId": productID})
	if err != nil {
		log.Printf("failed to marshal catalog event %s for %s: %v", action, productID, err)
		return
	}
	if err := s.mqClient.Publish(action, body); err != nil {
		log.Printf("failed to publish catalog event %s for %s: %v", action, productID, err)
	}
}
