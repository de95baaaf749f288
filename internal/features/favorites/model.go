package favorites

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FavoriteList is the older sibling of the wishlist: one document per user
// holding the movies they marked as favorites.
type FavoriteList struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Movies    []primitive.ObjectID `bson:"movies" json:"movies"`
	Owner     primitive.ObjectID   `bson:"owner" json:"owner"`
	CreatedAt time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time            `bson:"updatedAt" json:"updatedAt"`
}

type CreateFavoriteListRequest struct {
	Movies []string `json:"movies"`
}
