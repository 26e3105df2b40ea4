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

// restaurantSortFields are the fields a restaurant listing may be sorted by.
var restaurantSortFields = []string{"name", "ratings", "postalcode"}

// RestaurantService handles business logic related to restaurants.
type RestaurantService struct {
	repo     repositories.RestaurantRepository
	validate *validation.Validator
	events   EventPublisher
	logger   *zap.SugaredLogger
}

// NewRestaurantService creates a new RestaurantService. events may be nil, in
// which case no write events are published.
func NewRestaurantService(repo repositories.RestaurantRepository, validate *validation.Validator, events EventPublisher, logger *zap.SugaredLogger) *RestaurantService {
	return &RestaurantService{
		repo:     repo,
		validate: validate,
		events:   events,
		logger:   logger,
	}
}

// Create validates and persists a new restaurant. On schema violations the
// returned error is a validation.FieldErrors naming every offending field.
func (s *RestaurantService) Create(ctx context.Context, restaurant *models.Restaurant) (*models.Restaurant, error) {
	if err := s.validate.Struct(restaurant); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, restaurant); err != nil {
		return nil, err
	}
	s.publish("restaurant.created", restaurant)
	return restaurant, nil
}

// List returns one page of restaurants plus pagination metadata. The total
// counts the records matching the search filter, not the whole collection.
func (s *RestaurantService) List(ctx context.Context, params query.ListParams) ([]models.Restaurant, query.Pagination, error) {
	params = params.Normalize().WithAllowedSortFields(restaurantSortFields...)
	restaurants, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, query.Pagination{}, err
	}
	return restaurants, query.NewPagination(params, total), nil
}

// GetByID retrieves a single restaurant.
func (s *RestaurantService) GetByID(ctx context.Context, id string) (*models.Restaurant, error) {
	return s.repo.GetByID(ctx, id)
}

// Update fetches the restaurant, overwrites the fields present in the patch,
// re-validates, and persists. Fields absent from the patch keep their stored
// value; present fields overwrite even with a zero value.
func (s *RestaurantService) Update(ctx context.Context, id string, patch models.RestaurantPatch) (*models.Restaurant, error) {
	restaurant, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(restaurant)
	if err := s.validate.Struct(restaurant); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, restaurant); err != nil {
		return nil, err
	}
	s.publish("restaurant.updated", restaurant)
	return restaurant, nil
}

func (s *RestaurantService) publish(event string, payload interface{}) {
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
