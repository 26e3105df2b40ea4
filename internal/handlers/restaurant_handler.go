package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"resto/internal/models"
	"resto/internal/query"
	"resto/internal/services"
)

// RestaurantHandler handles HTTP requests for restaurants.
type RestaurantHandler struct {
	service *services.RestaurantService
	logger  *zap.SugaredLogger
}

// NewRestaurantHandler creates a new RestaurantHandler.
func NewRestaurantHandler(service *services.RestaurantService, logger *zap.SugaredLogger) *RestaurantHandler {
	return &RestaurantHandler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers the restaurant routes with the Fiber app.
func (h *RestaurantHandler) RegisterRoutes(router fiber.Router) {
	hotelRoutes := router.Group("/hotel")
	hotelRoutes.Post("/add", h.HandleAdd)
	hotelRoutes.Get("/list", h.HandleList)
	hotelRoutes.Get("/:hotelId", h.HandleGetByID)
	hotelRoutes.Put("/:hotelId", h.HandleUpdate)
}

// createRestaurantRequest limits creation to the client-settable fields.
type createRestaurantRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Postalcode  string `json:"postalcode"`
}

// HandleAdd creates a new restaurant.
func (h *RestaurantHandler) HandleAdd(c *fiber.Ctx) error {
	var req createRestaurantRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	restaurant := &models.Restaurant{
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		Postalcode:  req.Postalcode,
	}
	saved, err := h.service.Create(c.Context(), restaurant)
	if err != nil {
		return respondError(c, h.logger, "Restaurant not found", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":         "Restaurant Added!",
		"savedRestaurant": saved,
	})
}

// HandleList returns a paginated, sorted, searched restaurant listing.
func (h *RestaurantHandler) HandleList(c *fiber.Ctx) error {
	params := query.ListParams{
		Page:      c.QueryInt("page"),
		Limit:     c.QueryInt("limit"),
		SortField: c.Query("sortField"),
		SortOrder: c.Query("sortOrder"),
		Search:    c.Query("search"),
	}

	restaurants, pagination, err := h.service.List(c.Context(), params)
	if err != nil {
		return respondError(c, h.logger, "Restaurant not found", err)
	}

	return c.JSON(fiber.Map{
		"message":     "Restaurants fetched successfully",
		"restaurants": restaurants,
		"pagination":  pagination,
	})
}

// HandleGetByID retrieves a single restaurant by its id.
func (h *RestaurantHandler) HandleGetByID(c *fiber.Ctx) error {
	restaurant, err := h.service.GetByID(c.Context(), c.Params("hotelId"))
	if err != nil {
		return respondError(c, h.logger, "Restaurant not found", err)
	}

	return c.JSON(fiber.Map{
		"message":    "Restaurant fetched successfully",
		"restaurant": restaurant,
	})
}

// HandleUpdate applies a partial update to a restaurant. Fields omitted from
// the body keep their stored value.
func (h *RestaurantHandler) HandleUpdate(c *fiber.Ctx) error {
	var patch models.RestaurantPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	restaurant, err := h.service.Update(c.Context(), c.Params("hotelId"), patch)
	if err != nil {
		return respondError(c, h.logger, "Restaurant not found", err)
	}

	return c.JSON(fiber.Map{
		"message":    "Restaurant updated successfully",
		"restaurant": restaurant,
	})
}
