package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"resto/internal/models"
	"resto/internal/query"
	"resto/internal/services"
)

// MenuHandler handles HTTP requests for menu items.
type MenuHandler struct {
	service *services.MenuService
	logger  *zap.SugaredLogger
}

// NewMenuHandler creates a new MenuHandler.
func NewMenuHandler(service *services.MenuService, logger *zap.SugaredLogger) *MenuHandler {
	return &MenuHandler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers the menu routes with the Fiber app. The static
// segments must be registered before the :menuId routes so they are not
// captured as ids.
func (h *MenuHandler) RegisterRoutes(router fiber.Router) {
	menuRoutes := router.Group("/menu")
	menuRoutes.Post("/add", h.HandleAdd)
	menuRoutes.Get("/list", h.HandleList)
	menuRoutes.Get("/restaurant/:restaurantId", h.HandleGetByRestaurant)
	menuRoutes.Get("/sort/:restaurantId", h.HandleGetSorted)
	menuRoutes.Get("/:menuId", h.HandleGetByID)
	menuRoutes.Put("/:menuId", h.HandleUpdate)
	menuRoutes.Delete("/:menuId", h.HandleDelete)
}

// createMenuRequest limits creation to the client-settable fields.
type createMenuRequest struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Price        float64  `json:"price"`
	RestaurantID string   `json:"restaurantId"`
	Type         []string `json:"type"`
	Rating       float64  `json:"rating"`
}

// HandleAdd creates a new menu item.
func (h *MenuHandler) HandleAdd(c *fiber.Ctx) error {
	var req createMenuRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	menu := &models.Menu{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		RestaurantID: req.RestaurantID,
		Type:         req.Type,
		Rating:       req.Rating,
	}
	saved, err := h.service.Create(c.Context(), menu)
	if err != nil {
		return respondError(c, h.logger, "Menu not found", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":   "Menu Added!",
		"savedMenu": saved,
	})
}

// HandleList returns a paginated, sorted, searched menu listing across all
// restaurants.
func (h *MenuHandler) HandleList(c *fiber.Ctx) error {
	params := query.ListParams{
		Page:      c.QueryInt("page"),
		Limit:     c.QueryInt("limit"),
		SortField: c.Query("sortField"),
		SortOrder: c.Query("sortOrder"),
		Search:    c.Query("search"),
	}

	menus, pagination, err := h.service.List(c.Context(), params)
	if err != nil {
		return respondError(c, h.logger, "Menu not found", err)
	}

	return c.JSON(fiber.Map{
		"message":    "Menus fetched successfully",
		"menus":      menus,
		"pagination": pagination,
	})
}

// HandleGetByID retrieves a single menu item by its own id.
func (h *MenuHandler) HandleGetByID(c *fiber.Ctx) error {
	menu, err := h.service.GetByID(c.Context(), c.Params("menuId"))
	if err != nil {
		return respondError(c, h.logger, "Menu not found", err)
	}

	return c.JSON(fiber.Map{
		"message": "Menu fetched successfully",
		"menu":    menu,
	})
}

// HandleGetByRestaurant retrieves every menu item for a restaurant. A
// restaurant with no menu items yields an empty list, not an error.
func (h *MenuHandler) HandleGetByRestaurant(c *fiber.Ctx) error {
	menus, err := h.service.GetByRestaurant(c.Context(), c.Params("restaurantId"))
	if err != nil {
		return respondError(c, h.logger, "Menu not found", err)
	}

	return c.JSON(fiber.Map{
		"message": "Menus fetched successfully",
		"menus":   menus,
	})
}

// sortRequest carries the named ordering for HandleGetSorted.
type sortRequest struct {
	SortBy string `json:"sortBy"`
}

// HandleGetSorted retrieves a restaurant's menu ordered by a named strategy
// passed in the request body. A missing body or unrecognized name falls back
// to rating-descending.
func (h *MenuHandler) HandleGetSorted(c *fiber.Ctx) error {
	var req sortRequest
	if err := c.BodyParser(&req); err != nil {
		// No usable body: keep the default ordering.
		req.SortBy = ""
	}

	menus, err := h.service.GetSorted(c.Context(), c.Params("restaurantId"), req.SortBy)
	if err != nil {
		return respondError(c, h.logger, "Menu not found", err)
	}

	return c.JSON(fiber.Map{
		"message": "Menus fetched successfully",
		"menu":    menus,
	})
}

// HandleUpdate applies a partial update to a menu item.
func (h *MenuHandler) HandleUpdate(c *fiber.Ctx) error {
	var patch models.MenuPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	menu, err := h.service.Update(c.Context(), c.Params("menuId"), patch)
	if err != nil {
		return respondError(c, h.logger, "Menu not found", err)
	}

	return c.JSON(fiber.Map{
		"message": "Menu updated successfully",
		"menu":    menu,
	})
}

// HandleDelete removes a menu item and echoes the removed record.
func (h *MenuHandler) HandleDelete(c *fiber.Ctx) error {
	menu, err := h.service.Delete(c.Context(), c.Params("menuId"))
	if err != nil {
		return respondError(c, h.logger, "Menu not found", err)
	}

	return c.JSON(fiber.Map{
		"message":     "Menu deleted successfully",
		"deletedMenu": menu,
	})
}
