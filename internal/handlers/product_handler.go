package handlers

import (
	"github.com/gofiber/fiber/v2"

	"shopapi/internal/cache"
	"shopapi/internal/commands"
	"shopapi/internal/middleware"
	"shopapi/internal/models"
	"shopapi/internal/services"
)

const productsController = "Products"

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	productService *services.ProductService
	cacheService   cache.ResponseCacheService
	cacheConfig    middleware.CacheConfig
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(productService *services.ProductService, cacheService cache.ResponseCacheService, cacheConfig middleware.CacheConfig) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		cacheService:   cacheService,
		cacheConfig:    cacheConfig,
	}
}

// RegisterRoutes registers the product routes. The router is expected to
// already require authentication.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	products := router.Group("/" + productsController)
	products.Get("/GetAllProducts", middleware.CacheResponse(h.cacheConfig, h.cacheService), h.HandleGetAllProducts)
	products.Get("/GetProductById/:productId", middleware.ValidateUUID("productId"), h.HandleGetProductByID)
	products.Post("/CreateProduct", h.HandleCreateProduct)
	products.Post("/CreateBulkProduct", middleware.RequireRole(models.RoleAdmin), h.HandleCreateBulkProduct)
	products.Put("/UpdateProduct/:productId", middleware.ValidateUUID("productId"), h.HandleUpdateProduct)
	products.Delete("/DeleteProduct/:productId", middleware.ValidateUUID("productId"), h.HandleDeleteProduct)
	products.Delete("/DeleteBulkProduct", middleware.RequireRole(models.RoleAdmin), h.HandleDeleteBulkProduct)
}

// HandleGetAllProducts returns the whole catalog. Cached.
func (h *ProductHandler) HandleGetAllProducts(c *fiber.Ctx) error {
	result := h.productService.GetAllProducts(c.UserContext(), commands.GetAllProductsQuery{})
	if result.IsError {
		return handleErrorResponse(c, result.Errors)
	}
	return c.JSON(result)
}

// HandleGetProductByID returns one product.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	query := commands.GetProductByIDQuery{ProductID: c.Params("productId")}

	result := h.productService.GetProductByID(c.UserContext(), query)
	if result.IsError {
		return handleErrorResponse(c, result.Errors)
	}
	return c.JSON(result)
}

// HandleCreateProduct creates one product and invalidates the product listing.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var cmd commands.CreateProductCommand
	if err := c.BodyParser(&cmd); err != nil {
		return badRequestBody(c)
	}
	cmd.CreatedBy = fullName(c)

	result := h.productService.CreateProduct(c.UserContext(), cmd)
	if result.IsError {
		return handleErrorResponse(c, result.Errors)
	}

	invalidateCache(c.UserContext(), h.cacheService, productsController, "GetAllProducts")
	return c.JSON(result)
}

// HandleCreateBulkProduct imports products from an uploaded spreadsheet.
// Admin only.
func (h *ProductHandler) HandleCreateBulkProduct(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.NewErrorResponse(
			fiber.StatusBadRequest, models.PhraseBadRequest, []string{services.MsgFileEmpty}))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.NewErrorResponse(
			fiber.StatusBadRequest, models.PhraseBadRequest, []string{services.MsgFileEmpty}))
	}
	defer file.Close()

	cmd := commands.CreateBulkProductCommand{File: file, CreatedBy: fullName(c)}

	result := h.productService.CreateBulkProduct(c.UserContext(), cmd)
	if result.IsError {
		return handleErrorResponse(c, result.Errors)
	}

	invalidateCache(c.UserContext(), h.cacheService, productsController, "GetAllProducts")
	return c.JSON(result)
}

// HandleUpdateProduct updates one product and invalidates the product listing.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	var cmd commands.UpdateProductCommand
	if err := c.BodyParser(&cmd); err != nil {
		return badRequestBody(c)
	}
	cmd.ProductID = c.Params("productId")
	cmd.UpdatedBy = fullName(c)

	result := h.productService.UpdateProduct(c.UserContext(), cmd)
	if result.IsError {
		return handleErrorResponse(c, result.Errors)
	}

	invalidateCache(c.UserContext(), h.cacheService, productsController, "GetAllProducts")
	return c.JSON(result)
}

// HandleDeleteProduct deletes one product and invalidates the product listing.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	cmd := commands.DeleteProductCommand{ProductID: c.Params("productId")}

	result := h.productService.DeleteProduct(c.UserContext(), cmd)
	if result.IsError {
		return handleErrorResponse(c, result.Errors)
	}

	invalidateCache(c.UserContext(), h.cacheService, productsController, "GetAllProducts")
	return c.JSON(result)
}

// HandleDeleteBulkProduct deletes a batch of products, all-or-nothing. Admin
// only.
func (h *ProductHandler) HandleDeleteBulkProduct(c *fiber.Ctx) error {
	var cmd commands.DeleteBulkProductCommand
	if err := c.BodyParser(&cmd); err != nil {
		return badRequestBody(c)
	}

	result := h.productService.DeleteBulkProduct(c.UserContext(), cmd)
	if result.IsError {
		return handleErrorResponse(c, result.Errors)
	}

	invalidateCache(c.UserContext(), h.cacheService, productsController, "GetAllProducts")
	return c.JSON(result)
}
