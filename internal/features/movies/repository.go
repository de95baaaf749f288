package movies

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

// topListLimit caps the two ranked listings
const topListLimit = 10

type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	collection := db.Collection("movies")

	collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{Keys: bson.D{{Key: "rating", Value: -1}}},
		{Keys: bson.D{{Key: "publishDate", Value: -1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	})

	return &Repository{collection: collection}
}

func (r *Repository) Create(ctx context.Context, movie *Movie) error {
	movie.CreatedAt = time.Now()
	movie.UpdatedAt = time.Now()
	if movie.Comments == nil {
		movie.Comments = []primitive.ObjectID{}
	}

	result, err := r.collection.InsertOne(ctx, movie)
	if err != nil {
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		movie.ID = oid
	}
	return nil
}

// GetByID resolves a hex id. Malformed and unknown ids both map to
// ErrNotFound so the HTTP layer cannot tell them apart.
func (r *Repository) GetByID(ctx context.Context, id string) (*Movie, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("movie %q: %w", id, errors.ErrNotFound)
	}

	var movie Movie
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&movie)
	if err != nil {
		if stderrors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("movie %q: %w", id, errors.ErrNotFound)
		}
		return nil, err
	}
	return &movie, nil
}

// List returns a page of the catalog, newest first.
func (r *Repository) List(ctx context.Context, limit, offset int) ([]Movie, int64, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var movies []Movie
	if err := cursor.All(ctx, &movies); err != nil {
		return nil, 0, err
	}
	if movies == nil {
		movies = []Movie{}
	}

	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	return movies, total, nil
}

// TopRated returns at most ten movies by rating descending. Ties fall back to
// store-native order.
func (r *Repository) TopRated(ctx context.Context) ([]Movie, error) {
	return r.sortedTop(ctx, bson.D{{Key: "rating", Value: -1}})
}

// MostRecent returns at most ten movies by publish date descending.
func (r *Repository) MostRecent(ctx context.Context) ([]Movie, error) {
	return r.sortedTop(ctx, bson.D{{Key: "publishDate", Value: -1}})
}

func (r *Repository) sortedTop(ctx context.Context, sort bson.D) ([]Movie, error) {
	opts := options.Find().SetSort(sort).SetLimit(topListLimit)

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var movies []Movie
	if err := cursor.All(ctx, &movies); err != nil {
		return nil, err
	}
	if movies == nil {
		movies = []Movie{}
	}
	return movies, nil
}

// Update applies a partial $set. A vanished document (deleted between the
// existence check and the write) maps back to ErrNotFound.
func (r *Repository) Update(ctx context.Context, id primitive.ObjectID, update bson.M) error {
	update["updatedAt"] = time.Now()

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("movie %q: %w", id.Hex(), errors.ErrNotFound)
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("movie %q: %w", id.Hex(), errors.ErrNotFound)
	}
	return nil
}

// PushComment appends a comment id to the movie's comment list.
func (r *Repository) PushComment(ctx context.Context, movieID, commentID primitive.ObjectID) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": movieID},
		bson.M{
			"$addToSet": bson.M{"comments": commentID},
			"$set":      bson.M{"updatedAt": time.Now()},
		},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("movie %q: %w", movieID.Hex(), errors.ErrNotFound)
	}
	return nil
}

// PullComment removes a comment id from the movie's comment list.
func (r *Repository) PullComment(ctx context.Context, movieID, commentID primitive.ObjectID) error {
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": movieID},
		bson.M{
			"$pull": bson.M{"comments": commentID},
			"$set":  bson.M{"updatedAt": time.Now()},
		},
	)
	return err
}
