package handlers

import (
	"github.com/jinlee1703/gifthub-was-cicd/internal/core/services"
	"github.com/jinlee1703/gifthub-was-cicd/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// CatalogHandler handles brand/product lookup endpoints
type CatalogHandler struct {
	brandService   *services.BrandService
	productService *services.ProductService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(brandService *services.BrandService, productService *services.ProductService) *CatalogHandler {
	return &CatalogHandler{
		brandService:   brandService,
		productService: productService,
	}
}

// GetBrand returns a brand by name
// @Summary Brand lookup
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Param name path string true "Brand name"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /brands/{name} [get]
func (h *CatalogHandler) GetBrand(c *fiber.Ctx) error {
	name := c.Params("name")

	brand, err := h.brandService.Read(c.Context(), name)
	if err != nil {
		return mapDomainError(c, err)
	}

	return response.Success(c, "", brand)
}

// GetProduct returns a product by id
// @Summary Product lookup
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Param productId path int true "Product ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /products/{productId} [get]
func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("productId")
	if err != nil || productID <= 0 {
		return response.BadRequest(c, "Invalid product id")
	}

	product, err := h.productService.ReadByID(c.Context(), uint(productID))
	if err != nil {
		return mapDomainError(c, err)
	}

	return response.Success(c, "", product)
}
