package repositories

import (
	"context"

	"resto/internal/models"
	"resto/internal/query"
)

// MenuRepository defines the interface for menu-item data access.
type MenuRepository interface {
	Create(ctx context.Context, menu *models.Menu) error
	List(ctx context.Context, params query.ListParams) ([]models.Menu, int64, error)
	GetByID(ctx context.Context, id string) (*models.Menu, error)
	ListByRestaurant(ctx context.Context, restaurantID string) ([]models.Menu, error)
	ListByRestaurantSorted(ctx context.Context, restaurantID string, sort query.Sort) ([]models.Menu, error)
	Update(ctx context.Context, menu *models.Menu) error
	// Delete removes the record and returns it.
	Delete(ctx context.Context, id string) (*models.Menu, error)
}
