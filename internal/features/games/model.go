package games

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Game is an internal catalog entry. Every operation on games is
// restricted to admin callers.
type Game struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title     string             `bson:"title" json:"title"`
	ImageURL  string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	URLs      []string           `bson:"urls" json:"urls"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type CreateGameRequest struct {
	Title    string   `json:"title" binding:"required"`
	ImageURL string   `json:"imageUrl"`
	URLs     []string `json:"urls"`
}
