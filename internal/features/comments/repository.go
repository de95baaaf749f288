package comments

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
	collection := db.Collection("comments")

	collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{Keys: bson.D{{Key: "movieId", Value: 1}}},
		{Keys: bson.D{{Key: "owner", Value: 1}}},
	})

	return &Repository{collection: collection}
}

func (r *Repository) Create(ctx context.Context, comment *Comment) error {
	comment.CreatedAt = time.Now()
	comment.UpdatedAt = time.Now()
	if comment.Likes == nil {
		comment.Likes = []primitive.ObjectID{}
	}
	if comment.Unlikes == nil {
		comment.Unlikes = []primitive.ObjectID{}
	}

	result, err := r.collection.InsertOne(ctx, comment)
	if err != nil {
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		comment.ID = oid
	}
	return nil
}

// GetByID resolves a hex id. Malformed and unknown ids both map to ErrNotFound.
func (r *Repository) GetByID(ctx context.Context, id string) (*Comment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("comment %q: %w", id, errors.ErrNotFound)
	}

	var comment Comment
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&comment)
	if err != nil {
		if stderrors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("comment %q: %w", id, errors.ErrNotFound)
		}
		return nil, err
	}
	return &comment, nil
}

// ListByMovie returns a page of a movie's comments, newest first.
func (r *Repository) ListByMovie(ctx context.Context, movieID primitive.ObjectID, limit, offset int) ([]Comment, int64, error) {
	filter := bson.M{"movieId": movieID}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var comments []Comment
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, 0, err
	}
	if comments == nil {
		comments = []Comment{}
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return comments, total, nil
}

func (r *Repository) Update(ctx context.Context, id primitive.ObjectID, update bson.M) error {
	update["updatedAt"] = time.Now()

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("comment %q: %w", id.Hex(), errors.ErrNotFound)
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("comment %q: %w", id.Hex(), errors.ErrNotFound)
	}
	return nil
}

// Like records the user's like and withdraws any earlier unlike in the same
// write, so the caller can never sit in both sets.
func (r *Repository) Like(ctx context.Context, id, userID primitive.ObjectID) error {
	return r.vote(ctx, id, "likes", "unlikes", userID)
}

// Unlike is the inverse of Like.
func (r *Repository) Unlike(ctx context.Context, id, userID primitive.ObjectID) error {
	return r.vote(ctx, id, "unlikes", "likes", userID)
}

func (r *Repository) vote(ctx context.Context, id primitive.ObjectID, addTo, pullFrom string, userID primitive.ObjectID) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{
			"$addToSet": bson.M{addTo: userID},
			"$pull":     bson.M{pullFrom: userID},
			"$set":      bson.M{"updatedAt": time.Now()},
		},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("comment %q: %w", id.Hex(), errors.ErrNotFound)
	}
	return nil
}
