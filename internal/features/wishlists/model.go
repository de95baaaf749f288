package wishlists

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Wishlist holds the movies a user plans to watch. Each user owns at most
// one; the owner index enforces that at the store level.
type Wishlist struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Movies    []primitive.ObjectID `bson:"movies" json:"movies"`
	Owner     primitive.ObjectID   `bson:"owner" json:"owner"`
	CreatedAt time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time            `bson:"updatedAt" json:"updatedAt"`
}

type CreateWishlistRequest struct {
	Owner  string   `json:"owner" binding:"required"`
	Movies []string `json:"movies"`
}
