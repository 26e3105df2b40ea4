package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"resto/internal/models"
	"resto/internal/query"
	"resto/internal/repositories"
	"resto/internal/services"
	"resto/internal/validation"
)

// MockMenuRepository is a mock implementation of repositories.MenuRepository.
type MockMenuRepository struct {
	mock.Mock
}

func (m *MockMenuRepository) Create(ctx context.Context, menu *models.Menu) error {
	args := m.Called(ctx, menu)
	return args.Error(0)
}

func (m *MockMenuRepository) List(ctx context.Context, params query.ListParams) ([]models.Menu, int64, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Menu), args.Get(1).(int64), args.Error(2)
}

func (m *MockMenuRepository) GetByID(ctx context.Context, id string) (*models.Menu, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Menu), args.Error(1)
}

func (m *MockMenuRepository) ListByRestaurant(ctx context.Context, restaurantID string) ([]models.Menu, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Menu), args.Error(1)
}

func (m *MockMenuRepository) ListByRestaurantSorted(ctx context.Context, restaurantID string, sort query.Sort) ([]models.Menu, error) {
	args := m.Called(ctx, restaurantID, sort)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Menu), args.Error(1)
}

func (m *MockMenuRepository) Update(ctx context.Context, menu *models.Menu) error {
	args := m.Called(ctx, menu)
	return args.Error(0)
}

func (m *MockMenuRepository) Delete(ctx context.Context, id string) (*models.Menu, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Menu), args.Error(1)
}

func newMenuService(repo repositories.MenuRepository, events services.EventPublisher) *services.MenuService {
	return services.NewMenuService(repo, validation.New(), events, zap.NewNop().Sugar())
}

func validMenuItem() *models.Menu {
	return &models.Menu{
		Name:         "Poutine Classique",
		Description:  "Fries, curds, gravy",
		Price:        9.5,
		RestaurantID: "r1",
		Type:         []string{"Canadian"},
	}
}

func TestMenuService_Create(t *testing.T) {
	mockRepo := new(MockMenuRepository)
	service := newMenuService(mockRepo, nil)

	menu := validMenuItem()
	mockRepo.On("Create", mock.Anything, menu).Return(nil).Once()

	saved, err := service.Create(context.Background(), menu)

	assert.NoError(t, err)
	assert.Equal(t, menu, saved)
	mockRepo.AssertExpectations(t)
}

func TestMenuService_CreateRejectsUnknownType(t *testing.T) {
	mockRepo := new(MockMenuRepository)
	service := newMenuService(mockRepo, nil)

	menu := validMenuItem()
	menu.Type = []string{"Sushi"}

	saved, err := service.Create(context.Background(), menu)

	assert.Nil(t, saved)
	var fields validation.FieldErrors
	assert.True(t, errors.As(err, &fields))
	assert.Contains(t, fields, "type")
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMenuService_GetByRestaurantEmptyIsNotAnError(t *testing.T) {
	mockRepo := new(MockMenuRepository)
	service := newMenuService(mockRepo, nil)

	mockRepo.On("ListByRestaurant", mock.Anything, "r-empty").Return([]models.Menu{}, nil).Once()

	menus, err := service.GetByRestaurant(context.Background(), "r-empty")

	assert.NoError(t, err)
	assert.Empty(t, menus)
	mockRepo.AssertExpectations(t)
}

func TestMenuService_GetSortedResolvesStrategy(t *testing.T) {
	mockRepo := new(MockMenuRepository)
	service := newMenuService(mockRepo, nil)

	mockRepo.On("ListByRestaurantSorted", mock.Anything, "r1", query.Sort{Field: "price", Descending: false}).
		Return([]models.Menu{}, nil).Once()

	_, err := service.GetSorted(context.Background(), "r1", "lowestPrice")

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestMenuService_GetSortedFallsBackToRating(t *testing.T) {
	mockRepo := new(MockMenuRepository)
	service := newMenuService(mockRepo, nil)

	mockRepo.On("ListByRestaurantSorted", mock.Anything, "r1", query.Sort{Field: "rating", Descending: true}).
		Return([]models.Menu{}, nil).Once()

	_, err := service.GetSorted(context.Background(), "r1", "bogus")

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestMenuService_UpdateAppliesPresentFieldsOnly(t *testing.T) {
	mockRepo := new(MockMenuRepository)
	service := newMenuService(mockRepo, nil)

	existing := validMenuItem()
	existing.ID = "m1"
	existing.Rating = 4.5
	mockRepo.On("GetByID", mock.Anything, "m1").Return(existing, nil).Once()
	mockRepo.On("Update", mock.Anything, mock.Anything).Return(nil).Once()

	newPrice := 11.0
	updated, err := service.Update(context.Background(), "m1", models.MenuPatch{
		Price: &newPrice,
		Type:  []string{"Veggi"},
	})

	assert.NoError(t, err)
	assert.Equal(t, 11.0, updated.Price)
	assert.Equal(t, []string{"Veggi"}, updated.Type)
	assert.Equal(t, "Poutine Classique", updated.Name)
	assert.Equal(t, 4.5, updated.Rating)
	mockRepo.AssertExpectations(t)
}

func TestMenuService_UpdateZeroPriceOverwrites(t *testing.T) {
	mockRepo := new(MockMenuRepository)
	service := newMenuService(mockRepo, nil)

	existing := validMenuItem()
	existing.ID = "m1"
	mockRepo.On("GetByID", mock.Anything, "m1").Return(existing, nil).Once()
	mockRepo.On("Update", mock.Anything, mock.Anything).Return(nil).Once()

	// A present zero price is a legitimate overwrite, not a missing field.
	zeroPrice := 0.0
	updated, err := service.Update(context.Background(), "m1", models.MenuPatch{Price: &zeroPrice})

	assert.NoError(t, err)
	assert.Equal(t, 0.0, updated.Price)
	mockRepo.AssertExpectations(t)
}

func TestMenuService_DeleteEchoesRemovedRecord(t *testing.T) {
	mockRepo := new(MockMenuRepository)
	mockEvents := new(MockEventPublisher)
	service := newMenuService(mockRepo, mockEvents)

	removed := validMenuItem()
	removed.ID = "m1"
	mockRepo.On("Delete", mock.Anything, "m1").Return(removed, nil).Once()
	mockEvents.On("Publish", services.CatalogExchange, "menu.deleted", mock.Anything).Return(nil).Once()

	menu, err := service.Delete(context.Background(), "m1")

	assert.NoError(t, err)
	assert.Equal(t, removed, menu)
	mockRepo.AssertExpectations(t)
	mockEvents.AssertExpectations(t)
}

func TestMenuService_DeleteNotFound(t *testing.T) {
	mockRepo := new(MockMenuRepository)
	service := newMenuService(mockRepo, nil)

	mockRepo.On("Delete", mock.Anything, "missing").
		Return(nil, fmt.Errorf("menu missing: %w", repositories.ErrNotFound)).Once()

	menu, err := service.Delete(context.Background(), "missing")

	assert.Nil(t, menu)
	assert.True(t, errors.Is(err, repositories.ErrNotFound))
	mockRepo.AssertExpectations(t)
}

func TestMenuService_EventPublishFailureDoesNotFailRequest(t *testing.T) {
	mockRepo := new(MockMenuRepository)
	mockEvents := new(MockEventPublisher)
	service := newMenuService(mockRepo, mockEvents)

	menu := validMenuItem()
	mockRepo.On("Create", mock.Anything, menu).Return(nil).Once()
	mockEvents.On("Publish", services.CatalogExchange, "menu.created", mock.Anything).
		Return(fmt.Errorf("broker unavailable")).Once()

	saved, err := service.Create(context.Background(), menu)

	assert.NoError(t, err)
	assert.Equal(t, menu, saved)
	mockEvents.AssertExpectations(t)
}
