package handlers

import (
	"github.com/gofiber/fiber/v2"

	"ensabun/internal/models"
	"ensabun/internal/services"
)

const productNotFound = "Product not found"

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service *services.ProductService
	Responder
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService, r Responder) *ProductHandler {
	return &ProductHandler{service: service, Responder: r}
}

// RegisterRoutes registers the product routes with the Fiber app.
// The fixed-prefix listings go first so /:id does not shadow them.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	routes := router.Group("/products")
	routes.Get("/search/:name", h.HandleSearchProducts)
	routes.Get("/by-type/:typeId", h.HandleGetProductsByType)
	routes.Get("/low-stock/:threshold?", h.HandleGetLowStockProducts)

	routes.Get("/", h.HandleGetProducts)
	routes.Get("/:id", h.HandleGetProductByID)
	routes.Post("/", h.HandleCreateProduct)
	routes.Put("/:id/typeID", h.HandleUpdateProductType)
	routes.Put("/:id", h.HandleUpdateProduct)
	routes.Delete("/:id", h.HandleDeleteProduct)
}

// HandleGetProducts lists every product with its type label.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts(c.UserContext())
	if err != nil {
		return h.Fail(c, err)
	}
	return list(c, products)
}

// HandleGetProductByID returns one product.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	id, err := resourceID(c, productNotFound)
	if err != nil {
		return h.Fail(c, err)
	}
	p, err := h.service.GetProductByID(c.UserContext(), id)
	if err != nil {
		return h.Fail(c, err)
	}
	return item(c, p)
}

// HandleCreateProduct creates a product and returns its id.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var in models.ProductInput
	if err := parseBody(c, &in); err != nil {
		return h.Fail(c, err)
	}
	id, err := h.service.CreateProduct(c.UserContext(), in)
	if err != nil {
		return h.Fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(Envelope{
		Success:  true,
		Message:  "Product created successfully",
		InsertID: &id,
	})
}

// HandleUpdateProduct applies a partial update.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, err := resourceID(c, productNotFound)
	if err != nil {
		return h.Fail(c, err)
	}
	var in models.ProductInput
	if err := parseBody(c, &in); err != nil {
		return h.Fail(c, err)
	}
	rows, err := h.service.UpdateProduct(c.UserContext(), id, in)
	if err != nil {
		return h.Fail(c, err)
	}
	return affected(c, "Product updated successfully", rows)
}

// HandleUpdateProductType moves a product to another type.
func (h *ProductHandler) HandleUpdateProductType(c *fiber.Ctx) error {
	id, err := resourceID(c, productNotFound)
	if err != nil {
		return h.Fail(c, err)
	}
	var ref models.ProductTypeRef
	if err := parseBody(c, &ref); err != nil {
		return h.Fail(c, err)
	}
	rows, err := h.service.UpdateProductType(c.UserContext(), id, ref)
	if err != nil {
		return h.Fail(c, err)
	}
	return affected(c, "Product type updated successfully", rows)
}

// HandleDeleteProduct deletes a product.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := resourceID(c, productNotFound)
	if err != nil {
		return h.Fail(c, err)
	}
	rows, err := h.service.DeleteProduct(c.UserContext(), id)
	if err != nil {
		return h.Fail(c, err)
	}
	return affected(c, "Product deleted successfully", rows)
}

// HandleSearchProducts lists products whose name contains :name.
func (h *ProductHandler) HandleSearchProducts(c *fiber.Ctx) error {
	products, err := h.service.SearchProducts(c.UserContext(), c.Params("name"))
	if err != nil {
		return h.Fail(c, err)
	}
	return list(c, products)
}

// HandleGetProductsByType lists the products of one type.
func (h *ProductHandler) HandleGetProductsByType(c *fiber.Ctx) error {
	typeID, err := intParam(c, "typeId")
	if err != nil {
		return h.Fail(c, err)
	}
	products, err := h.service.GetProductsByType(c.UserContext(), typeID)
	if err != nil {
		return h.Fail(c, err)
	}
	return list(c, products)
}

// HandleGetLowStockProducts lists products at or below the threshold. The
// raw segment is bound to the query; the echoed threshold is its leading
// integer, or null when it has none.
func (h *ProductHandler) HandleGetLowStockProducts(c *fiber.Ctx) error {
	raw := c.Params("threshold")
	if raw == "" {
		raw = services.DefaultLowStockThreshold
	}
	products, err := h.service.GetLowStockProducts(c.UserContext(), raw)
	if err != nil {
		return h.Fail(c, err)
	}
	count := len(products)
	return c.JSON(lowStockEnvelope{
		Envelope:  Envelope{Success: true, Data: products, Count: &count},
		Threshold: leadingInt(raw),
	})
}
