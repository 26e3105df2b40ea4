package repositories

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"resto/internal/models"
	"resto/internal/query"
)

// MockRestaurantRepository is an in-memory implementation of
// RestaurantRepository, used by tests and broker-less development wiring.
type MockRestaurantRepository struct {
	restaurants map[string]models.Restaurant
	mu          sync.RWMutex
}

// NewMockRestaurantRepository creates a new instance of MockRestaurantRepository.
func NewMockRestaurantRepository() *MockRestaurantRepository {
	return &MockRestaurantRepository{
		restaurants: make(map[string]models.Restaurant),
	}
}

// Create adds a new restaurant, generating an id when none is set.
func (r *MockRestaurantRepository) Create(_ context.Context, restaurant *models.Restaurant) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if restaurant.ID == "" {
		restaurant.ID = uuid.New().String()
	}
	r.restaurants[restaurant.ID] = *restaurant
	return nil
}

// List returns the requested page and the total count of matching records.
func (r *MockRestaurantRepository) List(_ context.Context, params query.ListParams) ([]models.Restaurant, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]models.Restaurant, 0, len(r.restaurants))
	for _, restaurant := range r.restaurants {
		if matchesSearch(restaurant.Name, params.Search) {
			matched = append(matched, restaurant)
		}
	}

	s := params.Sort()
	sort.SliceStable(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if s.Descending {
			// Swap operands so equal keys stay non-less and keep stability.
			a, b = b, a
		}
		switch s.Field {
		case "ratings":
			return a.Ratings < b.Ratings
		case "postalcode":
			return a.Postalcode < b.Postalcode
		default:
			return a.Name < b.Name
		}
	})

	return pageOf(matched, params), int64(len(matched)), nil
}

// GetByID returns a restaurant by its id.
func (r *MockRestaurantRepository) GetByID(_ context.Context, id string) (*models.Restaurant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	restaurant, ok := r.restaurants[id]
	if !ok {
		return nil, fmt.Errorf("restaurant %s: %w", id, ErrNotFound)
	}
	return &restaurant, nil
}

// Update replaces an existing restaurant.
func (r *MockRestaurantRepository) Update(_ context.Context, restaurant *models.Restaurant) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.restaurants[restaurant.ID]; !ok {
		return fmt.Errorf("restaurant %s: %w", restaurant.ID, ErrNotFound)
	}
	r.restaurants[restaurant.ID] = *restaurant
	return nil
}

// matchesSearch reports whether name contains search case-insensitively. An
// empty search matches everything.
func matchesSearch(name, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(name), strings.ToLower(search))
}

// pageOf slices one page out of the sorted matches.
func pageOf[T any](matched []T, params query.ListParams) []T {
	start := int(params.Skip())
	if start >= len(matched) {
		return []T{}
	}
	end := start + params.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end]
}
