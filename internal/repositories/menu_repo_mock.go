package repositories

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"resto/internal/models"
	"resto/internal/query"
)

// MockMenuRepository is an in-memory implementation of MenuRepository.
type MockMenuRepository struct {
	menus map[string]models.Menu
	mu    sync.RWMutex
}

// NewMockMenuRepository creates a new instance of MockMenuRepository.
func NewMockMenuRepository() *MockMenuRepository {
	return &MockMenuRepository{
		menus: make(map[string]models.Menu),
	}
}

// Create adds a new menu item, generating an id when none is set.
func (r *MockMenuRepository) Create(_ context.Context, menu *models.Menu) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if menu.ID == "" {
		menu.ID = uuid.New().String()
	}
	r.menus[menu.ID] = *menu
	return nil
}

// List returns the requested page and the total count of matching records.
func (r *MockMenuRepository) List(_ context.Context, params query.ListParams) ([]models.Menu, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]models.Menu, 0, len(r.menus))
	for _, menu := range r.menus {
		if matchesSearch(menu.Name, params.Search) {
			matched = append(matched, menu)
		}
	}
	sortMenus(matched, params.Sort())

	return pageOf(matched, params), int64(len(matched)), nil
}

// GetByID returns a menu item by its own id.
func (r *MockMenuRepository) GetByID(_ context.Context, id string) (*models.Menu, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	menu, ok := r.menus[id]
	if !ok {
		return nil, fmt.Errorf("menu %s: %w", id, ErrNotFound)
	}
	return &menu, nil
}

// ListByRestaurant returns every menu item referencing the restaurant.
func (r *MockMenuRepository) ListByRestaurant(_ context.Context, restaurantID string) ([]models.Menu, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	menus := make([]models.Menu, 0)
	for _, menu := range r.menus {
		if menu.RestaurantID == restaurantID {
			menus = append(menus, menu)
		}
	}
	// Stable order so repeated calls agree.
	sortMenus(menus, query.Sort{Field: "name"})
	return menus, nil
}

// ListByRestaurantSorted returns the restaurant's menu items in the given order.
func (r *MockMenuRepository) ListByRestaurantSorted(ctx context.Context, restaurantID string, s query.Sort) ([]models.Menu, error) {
	menus, err := r.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	sortMenus(menus, s)
	return menus, nil
}

// Update replaces an existing menu item.
func (r *MockMenuRepository) Update(_ context.Context, menu *models.Menu) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.menus[menu.ID]; !ok {
		return fmt.Errorf("menu %s: %w", menu.ID, ErrNotFound)
	}
	r.menus[menu.ID] = *menu
	return nil
}

// Delete removes a menu item by id and returns the removed record.
func (r *MockMenuRepository) Delete(_ context.Context, id string) (*models.Menu, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	menu, ok := r.menus[id]
	if !ok {
		return nil, fmt.Errorf("menu %s: %w", id, ErrNotFound)
	}
	delete(r.menus, id)
	return &menu, nil
}

func sortMenus(menus []models.Menu, s query.Sort) {
	sort.SliceStable(menus, func(i, j int) bool {
		a, b := menus[i], menus[j]
		if s.Descending {
			// Swap operands so equal keys stay non-less and keep stability.
			a, b = b, a
		}
		switch s.Field {
		case "price":
			return a.Price < b.Price
		case "rating":
			return a.Rating < b.Rating
		default:
			return a.Name < b.Name
		}
	})
}
