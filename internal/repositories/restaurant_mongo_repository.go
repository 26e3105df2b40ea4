package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"resto/internal/models"
	"resto/internal/query"
)

// MongoRestaurantRepository is a MongoDB implementation of RestaurantRepository.
type MongoRestaurantRepository struct {
	coll *mongo.Collection
}

// NewMongoRestaurantRepository creates a new instance of MongoRestaurantRepository.
func NewMongoRestaurantRepository(db *mongo.Database) *MongoRestaurantRepository {
	return &MongoRestaurantRepository{
		coll: db.Collection("restaurants"),
	}
}

// Create inserts a new restaurant, generating its id.
func (r *MongoRestaurantRepository) Create(ctx context.Context, restaurant *models.Restaurant) error {
	if restaurant.ID == "" {
		restaurant.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.coll.InsertOne(ctx, restaurant); err != nil {
		return fmt.Errorf("failed to create restaurant: %w", err)
	}
	return nil
}

// List retrieves one page of restaurants matching the params, plus the total
// count of records matching the same filter.
func (r *MongoRestaurantRepository) List(ctx context.Context, params query.ListParams) ([]models.Restaurant, int64, error) {
	filter := params.Filter()

	cursor, err := r.coll.Find(ctx, filter, params.FindOptions())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list restaurants: %w", err)
	}
	restaurants := make([]models.Restaurant, 0, params.Limit)
	if err := cursor.All(ctx, &restaurants); err != nil {
		return nil, 0, fmt.Errorf("failed to decode restaurants: %w", err)
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count restaurants: %w", err)
	}
	return restaurants, total, nil
}

// GetByID retrieves a single restaurant by its id.
func (r *MongoRestaurantRepository) GetByID(ctx context.Context, id string) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&restaurant)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("restaurant %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get restaurant %s: %w", id, err)
	}
	return &restaurant, nil
}

// Update replaces an existing restaurant record.
func (r *MongoRestaurantRepository) Update(ctx context.Context, restaurant *models.Restaurant) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": restaurant.ID}, restaurant)
	if err != nil {
		return fmt.Errorf("failed to update restaurant %s: %w", restaurant.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("restaurant %s: %w", restaurant.ID, ErrNotFound)
	}
	return nil
}
