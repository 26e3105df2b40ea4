package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"resto/internal/models"
	"resto/internal/query"
)

// MongoMenuRepository is a MongoDB implementation of MenuRepository.
type MongoMenuRepository struct {
	coll *mongo.Collection
}

// NewMongoMenuRepository creates a new instance of MongoMenuRepository.
func NewMongoMenuRepository(db *mongo.Database) *MongoMenuRepository {
	return &MongoMenuRepository{
		coll: db.Collection("menus"),
	}
}

// Create inserts a new menu item, generating its id.
func (r *MongoMenuRepository) Create(ctx context.Context, menu *models.Menu) error {
	if menu.ID == "" {
		menu.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.coll.InsertOne(ctx, menu); err != nil {
		return fmt.Errorf("failed to create menu: %w", err)
	}
	return nil
}

// List retrieves one page of menu items matching the params, plus the total
// count of records matching the same filter.
func (r *MongoMenuRepository) List(ctx context.Context, params query.ListParams) ([]models.Menu, int64, error) {
	filter := params.Filter()

	cursor, err := r.coll.Find(ctx, filter, params.FindOptions())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list menus: %w", err)
	}
	menus := make([]models.Menu, 0, params.Limit)
	if err := cursor.All(ctx, &menus); err != nil {
		return nil, 0, fmt.Errorf("failed to decode menus: %w", err)
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count menus: %w", err)
	}
	return menus, total, nil
}

// GetByID retrieves a single menu item by its own id.
func (r *MongoMenuRepository) GetByID(ctx context.Context, id string) (*models.Menu, error) {
	var menu models.Menu
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&menu)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("menu %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get menu %s: %w", id, err)
	}
	return &menu, nil
}

// ListByRestaurant retrieves every menu item referencing the restaurant, in
// store order. An empty result is not an error.
func (r *MongoMenuRepository) ListByRestaurant(ctx context.Context, restaurantID string) ([]models.Menu, error) {
	return r.findByRestaurant(ctx, restaurantID, nil)
}

// ListByRestaurantSorted retrieves every menu item referencing the restaurant,
// ordered by the given sort.
func (r *MongoMenuRepository) ListByRestaurantSorted(ctx context.Context, restaurantID string, sort query.Sort) ([]models.Menu, error) {
	return r.findByRestaurant(ctx, restaurantID, options.Find().SetSort(query.SortDocument(sort)))
}

func (r *MongoMenuRepository) findByRestaurant(ctx context.Context, restaurantID string, opts *options.FindOptions) ([]models.Menu, error) {
	filter := bson.M{"restaurantId": restaurantID}

	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = r.coll.Find(ctx, filter, opts)
	} else {
		cursor, err = r.coll.Find(ctx, filter)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list menus for restaurant %s: %w", restaurantID, err)
	}
	menus := make([]models.Menu, 0)
	if err := cursor.All(ctx, &menus); err != nil {
		return nil, fmt.Errorf("failed to decode menus for restaurant %s: %w", restaurantID, err)
	}
	return menus, nil
}

// Update replaces an existing menu record.
func (r *MongoMenuRepository) Update(ctx context.Context, menu *models.Menu) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": menu.ID}, menu)
	if err != nil {
		return fmt.Errorf("failed to update menu %s: %w", menu.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("menu %s: %w", menu.ID, ErrNotFound)
	}
	return nil
}

// Delete removes the menu item by id and returns the removed record.
func (r *MongoMenuRepository) Delete(ctx context.Context, id string) (*models.Menu, error) {
	var menu models.Menu
	err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&menu)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("menu %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to delete menu %s: %w", id, err)
	}
	return &menu, nil
}
