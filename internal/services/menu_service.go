package services

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"resto/internal/models"
	"resto/internal/query"
	"resto/internal/repositories"
	"resto/internal/validation"
)

// menuSortFields are the fields a menu listing may be sorted by.
var menuSortFields = []string{"name", "price", "rating"}

// MenuService handles business logic related to menu items.
type MenuService struct {
	repo     repositories.MenuRepository
	validate *validation.Validator
	events   EventPublisher
	logger   *zap.SugaredLogger
}

// NewMenuService creates a new MenuService. events may be nil, in which case
// no write events are published.
func NewMenuService(repo repositories.MenuRepository, validate *validation.Validator, events EventPublisher, logger *zap.SugaredLogger) *MenuService {
	return &MenuService{
		repo:     repo,
		validate: validate,
		events:   events,
		logger:   logger,
	}
}

// Create validates and persists a new menu item.
func (s *MenuService) Create(ctx context.Context, menu *models.Menu) (*models.Menu, error) {
	if err := s.validate.Struct(menu); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, menu); err != nil {
		return nil, err
	}
	s.publish("menu.created", menu)
	return menu, nil
}

// List returns one page of menu items plus pagination metadata.
func (s *MenuService) List(ctx context.Context, params query.ListParams) ([]models.Menu, query.Pagination, error) {
	params = params.Normalize().WithAllowedSortFields(menuSortFields...)
	menus, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, query.Pagination{}, err
	}
	return menus, query.NewPagination(params, total), nil
}

// GetByID retrieves a single menu item by its own id.
func (s *MenuService) GetByID(ctx context.Context, id string) (*models.Menu, error) {
	return s.repo.GetByID(ctx, id)
}

// GetByRestaurant retrieves every menu item referencing the restaurant. A
// restaurant with no menu items yields an empty slice, not an error.
func (s *MenuService) GetByRestaurant(ctx context.Context, restaurantID string) ([]models.Menu, error) {
	return s.repo.ListByRestaurant(ctx, restaurantID)
}

// GetSorted retrieves a restaurant's menu ordered by a named strategy:
// "rating" (descending, the default), "lowestPrice", "highestPrice", or
// "name". Unrecognized names fall back to rating-descending.
func (s *MenuService) GetSorted(ctx context.Context, restaurantID, sortBy string) ([]models.Menu, error) {
	return s.repo.ListByRestaurantSorted(ctx, restaurantID, query.MenuSortStrategy(sortBy))
}

// Update fetches the menu item, overwrites the fields present in the patch,
// re-validates, and persists.
func (s *MenuService) Update(ctx context.Context, id string, patch models.MenuPatch) (*models.Menu, error) {
	menu, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(menu)
	if err := s.validate.Struct(menu); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, menu); err != nil {
		return nil, err
	}
	s.publish("menu.updated", menu)
	return menu, nil
}

// Delete removes a menu item and returns the removed record.
func (s *MenuService) Delete(ctx context.Context, id string) (*models.Menu, error) {
	menu, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.publish("menu.deleted", menu)
	return menu, nil
}

func (s *MenuService) publish(event string, payload interface{}) {
	if s.events == nil {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		s.logger.Warnw("failed to marshal catalog event", "event", event, "error", err)
		return
	}
	if err := s.events.Publish(CatalogExchange, event, body); err != nil {
		s.logger.Warnw("failed to publish catalog event", "event", event, "error", err)
	}
}
