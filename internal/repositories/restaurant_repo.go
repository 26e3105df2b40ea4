package repositories

import (
	"context"

	"resto/internal/models"
	"resto/internal/query"
)

// RestaurantRepository defines the interface for restaurant data access.
// List returns one page of records plus the total count of records matching
// the same filter.
type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *models.Restaurant) error
	List(ctx context.Context, params query.ListParams) ([]models.Restaurant, int64, error)
	GetByID(ctx context.Context, id string) (*models.Restaurant, error)
	Update(ctx context.Context, restaurant *models.Restaurant) error
}
