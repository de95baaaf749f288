package favorites

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
	collection := db.Collection("favoriteMovies")

	// One favorite list per user
	collection.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys:    bson.D{{Key: "owner", Value: 1}},
		Options: options.Index().SetUnique(true),
	})

	return &Repository{collection: collection}
}

func (r *Repository) Create(ctx context.Context, list *FavoriteList) error {
	list.CreatedAt = time.Now()
	list.UpdatedAt = time.Now()
	if list.Movies == nil {
		list.Movies = []primitive.ObjectID{}
	}

	result, err := r.collection.InsertOne(ctx, list)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("favorite list for owner %q: %w", list.Owner.Hex(), errors.ErrDuplicate)
		}
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		list.ID = oid
	}
	return nil
}

// GetByID resolves a hex id. Malformed and unknown ids both map to ErrNotFound.
func (r *Repository) GetByID(ctx context.Context, id string) (*FavoriteList, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("favorite list %q: %w", id, errors.ErrNotFound)
	}

	var list FavoriteList
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&list)
	if err != nil {
		if stderrors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("favorite list %q: %w", id, errors.ErrNotFound)
		}
		return nil, err
	}
	return &list, nil
}

// GetByOwner finds the single favorite list owned by the given user.
func (r *Repository) GetByOwner(ctx context.Context, owner primitive.ObjectID) (*FavoriteList, error) {
	var list FavoriteList
	err := r.collection.FindOne(ctx, bson.M{"owner": owner}).Decode(&list)
	if err != nil {
		if stderrors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("favorite list for owner %q: %w", owner.Hex(), errors.ErrNotFound)
		}
		return nil, err
	}
	return &list, nil
}

func (r *Repository) Update(ctx context.Context, id primitive.ObjectID, update bson.M) error {
	update["updatedAt"] = time.Now()

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("favorite list %q: %w", id.Hex(), errors.ErrNotFound)
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("favorite list %q: %w", id.Hex(), errors.ErrNotFound)
	}
	return nil
}
