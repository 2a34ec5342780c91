package handlers

import (
	"github.com/gofiber/fiber/v2"

	"ensabun/internal/models"
	"ensabun/internal/services"
)

const productTypeNotFound = "Product type not found"

// ProductTypeHandler handles HTTP requests for product types.
type ProductTypeHandler struct {
	service *services.ProductTypeService
	Responder
}

// NewProductTypeHandler creates a new ProductTypeHandler.
func NewProductTypeHandler(service *services.ProductTypeService, r Responder) *ProductTypeHandler {
	return &ProductTypeHandler{service: service, Responder: r}
}

// RegisterRoutes registers the product type routes with the Fiber app.
func (h *ProductTypeHandler) RegisterRoutes(router fiber.Router) {
	routes := router.Group("/product-types")
	routes.Get("/", h.HandleGetProductTypes)
	routes.Get("/:id", h.HandleGetProductTypeByID)
	routes.Post("/", h.HandleCreateProductType)
	routes.Put("/:id", h.HandleUpdateProductType)
	routes.Delete("/:id", h.HandleDeleteProductType)
}

// HandleGetProductTypes lists every product type.
func (h *ProductTypeHandler) HandleGetProductTypes(c *fiber.Ctx) error {
	types, err := h.service.GetAllProductTypes(c.UserContext())
	if err != nil {
		return h.Fail(c, err)
	}
	return list(c, types)
}

// HandleGetProductTypeByID returns one product type.
func (h *ProductTypeHandler) HandleGetProductTypeByID(c *fiber.Ctx) error {
	id, err := resourceID(c, productTypeNotFound)
	if err != nil {
		return h.Fail(c, err)
	}
	pt, err := h.service.GetProductTypeByID(c.UserContext(), id)
	if err != nil {
		return h.Fail(c, err)
	}
	return item(c, pt)
}

// HandleCreateProductType creates a product type and echoes it back.
func (h *ProductTypeHandler) HandleCreateProductType(c *fiber.Ctx) error {
	var in models.ProductTypeInput
	if err := parseBody(c, &in); err != nil {
		return h.Fail(c, err)
	}
	created, err := h.service.CreateProductType(c.UserContext(), in)
	if err != nil {
		return h.Fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(Envelope{
		Success:  true,
		Message:  "Product type created successfully",
		Data:     created,
		InsertID: &created.ProductTypeID,
	})
}

// HandleUpdateProductType renames a product type.
func (h *ProductTypeHandler) HandleUpdateProductType(c *fiber.Ctx) error {
	id, err := resourceID(c, productTypeNotFound)
	if err != nil {
		return h.Fail(c, err)
	}
	var in models.ProductTypeInput
	if err := parseBody(c, &in); err != nil {
		return h.Fail(c, err)
	}
	rows, err := h.service.UpdateProductType(c.UserContext(), id, in)
	if err != nil {
		return h.Fail(c, err)
	}
	return affected(c, "Product type updated successfully", rows)
}

// HandleDeleteProductType deletes a product type no product refers to.
func (h *ProductTypeHandler) HandleDeleteProductType(c *fiber.Ctx) error {
	id, err := resourceID(c, productTypeNotFound)
	if err != nil {
		return h.Fail(c, err)
	}
	rows, err := h.service.DeleteProductType(c.UserContext(), id)
	if err != nil {
		return h.Fail(c, err)
	}
	return affected(c, "Product type deleted successfully", rows)
}
