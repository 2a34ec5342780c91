package handlers

import (
	"github.com/gofiber/fiber/v2"

	"ensabun/internal/services"
)

// GenericHandler serves read-only access to arbitrary tables.
type GenericHandler struct {
	service *services.GenericService
	Responder
}

// NewGenericHandler creates a new GenericHandler.
func NewGenericHandler(service *services.GenericService, r Responder) *GenericHandler {
	return &GenericHandler{service: service, Responder: r}
}

// RegisterRoutes registers the generic table routes with the Fiber app.
func (h *GenericHandler) RegisterRoutes(router fiber.Router) {
	routes := router.Group("/generic")
	routes.Get("/:table", h.HandleGetAll)
	routes.Get("/:table/search/:field/:value", h.HandleSearch)
	routes.Get("/:table/:id", h.HandleGetByID)
}

// HandleGetAll lists every row of :table.
func (h *GenericHandler) HandleGetAll(c *fiber.Ctx) error {
	rows, err := h.service.GetAll(c.UserContext(), c.Params("table"))
	if err != nil {
		return h.Fail(c, err)
	}
	return list(c, rows)
}

// HandleGetByID returns the row of :table whose id column equals :id.
func (h *GenericHandler) HandleGetByID(c *fiber.Ctx) error {
	row, err := h.service.GetByID(c.UserContext(), c.Params("table"), c.Params("id"))
	if err != nil {
		return h.Fail(c, err)
	}
	return item(c, row)
}

// HandleSearch lists rows of :table whose :field contains :value.
func (h *GenericHandler) HandleSearch(c *fiber.Ctx) error {
	rows, err := h.service.Search(c.UserContext(), c.Params("table"), c.Params("field"), c.Params("value"))
	if err != nil {
		return h.Fail(c, err)
	}
	return list(c, rows)
}
