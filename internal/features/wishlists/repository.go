package wishlists

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
	collection := db.Collection("wishlists")

	// One wishlist per user
	collection.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys:    bson.D{{Key: "owner", Value: 1}},
		Options: options.Index().SetUnique(true),
	})

	return &Repository{collection: collection}
}

func (r *Repository) Create(ctx context.Context, wishlist *Wishlist) error {
	wishlist.CreatedAt = time.Now()
	wishlist.UpdatedAt = time.Now()
	if wishlist.Movies == nil {
		wishlist.Movies = []primitive.ObjectID{}
	}

	result, err := r.collection.InsertOne(ctx, wishlist)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("wishlist for owner %q: %w", wishlist.Owner.Hex(), errors.ErrDuplicate)
		}
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		wishlist.ID = oid
	}
	return nil
}

// GetByID resolves a hex id. Malformed and unknown ids both map to ErrNotFound.
func (r *Repository) GetByID(ctx context.Context, id string) (*Wishlist, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("wishlist %q: %w", id, errors.ErrNotFound)
	}

	var wishlist Wishlist
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&wishlist)
	if err != nil {
		if stderrors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("wishlist %q: %w", id, errors.ErrNotFound)
		}
		return nil, err
	}
	return &wishlist, nil
}

// GetByOwner finds the single wishlist owned by the given user.
func (r *Repository) GetByOwner(ctx context.Context, owner primitive.ObjectID) (*Wishlist, error) {
	var wishlist Wishlist
	err := r.collection.FindOne(ctx, bson.M{"owner": owner}).Decode(&wishlist)
	if err != nil {
		if stderrors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("wishlist for owner %q: %w", owner.Hex(), errors.ErrNotFound)
		}
		return nil, err
	}
	return &wishlist, nil
}

func (r *Repository) Update(ctx context.Context, id primitive.ObjectID, update bson.M) error {
	update["updatedAt"] = time.Now()

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("wishlist %q: %w", id.Hex(), errors.ErrNotFound)
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("wishlist %q: %w", id.Hex(), errors.ErrNotFound)
	}
	return nil
}
