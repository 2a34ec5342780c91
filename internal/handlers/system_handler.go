package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) bool
}

// SystemHandler serves the liveness and health endpoints.
type SystemHandler struct {
	store Pinger
}

// NewSystemHandler creates a new SystemHandler.
func NewSystemHandler(store Pinger) *SystemHandler {
	return &SystemHandler{store: store}
}

// RegisterRoutes registers the liveness and health routes on the root router.
func (h *SystemHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/", h.HandleRoot)
	router.Get("/health", h.HandleHealth)
}

// HandleRoot reports that the process is serving.
func (h *SystemHandler) HandleRoot(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success":   true,
		"message":   "Ensabun Backend API is running!",
		"status":    "success",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HandleHealth pings the store. An unreachable store is reported, not
// treated as a failure of the endpoint.
func (h *SystemHandler) HandleHealth(c *fiber.Ctx) error {
	database := "disconnected"
	if h.store.Ping(c.UserContext()) {
		database = "connected"
	}
	return c.JSON(fiber.Map{
		"success":   true,
		"status":    "ok",
		"database":  database,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
