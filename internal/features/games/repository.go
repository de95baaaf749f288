package games

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/amestri/cineshelf/pkg/errors"
)

type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	collection := db.Collection("games")

	collection.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys: bson.D{{Key: "createdAt", Value: -1}},
	})

	return &Repository{collection: collection}
}

func (r *Repository) Create(ctx context.Context, game *Game) error {
	game.CreatedAt = time.Now()
	game.UpdatedAt = time.Now()
	if game.URLs == nil {
		game.URLs = []string{}
	}

	result, err := r.collection.InsertOne(ctx, game)
	if err != nil {
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		game.ID = oid
	}
	return nil
}

// GetByID resolves a hex id. Malformed and unknown ids both map to ErrNotFound.
func (r *Repository) GetByID(ctx context.Context, id string) (*Game, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("game %q: %w", id, errors.ErrNotFound)
	}

	var game Game
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&game)
	if err != nil {
		if stderrors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("game %q: %w", id, errors.ErrNotFound)
		}
		return nil, err
	}
	return &game, nil
}

func (r *Repository) List(ctx context.Context) ([]Game, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var games []Game
	if err := cursor.All(ctx, &games); err != nil {
		return nil, err
	}
	if games == nil {
		games = []Game{}
	}
	return games, nil
}

func (r *Repository) Update(ctx context.Context, id primitive.ObjectID, update bson.M) error {
	update["updatedAt"] = time.Now()

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("game %q: %w", id.Hex(), errors.ErrNotFound)
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("game %q: %w", id.Hex(), errors.ErrNotFound)
	}
	return nil
}
