package comments

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment belongs to exactly one movie and one owning user. Likes and
// unlikes are disjoint user-id sets; a vote moves the caller between them.
type Comment struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Text      string               `bson:"text" json:"text"`
	MovieID   primitive.ObjectID   `bson:"movieId" json:"movieId"`
	Owner     primitive.ObjectID   `bson:"owner" json:"owner"`
	Likes     []primitive.ObjectID `bson:"likes" json:"likes"`
	Unlikes   []primitive.ObjectID `bson:"unlikes" json:"unlikes"`
	CreatedAt time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time            `bson:"updatedAt" json:"updatedAt"`
}

type CreateCommentRequest struct {
	Text    string `json:"text" binding:"required"`
	MovieID string `json:"movieId" binding:"required"`
}
