package movies

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Movie is a catalog entry. The collection is admin-managed: there is no
// owner field, mutations are gated on the admin flag alone.
type Movie struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id" example:"507f1f77bcf86cd799439011"`
	Title       string               `bson:"title" json:"title" example:"Blade Runner"`
	Description string               `bson:"description" json:"description"`
	ImageURL    string               `bson:"imageUrl" json:"imageUrl"`
	PublishDate time.Time            `bson:"publishDate" json:"publishDate"`
	Rating      float64              `bson:"rating" json:"rating" example:"8.1"`
	Tag         string               `bson:"tag,omitempty" json:"tag,omitempty" example:"scifi"`
	TrailerURL  string               `bson:"trailerUrl,omitempty" json:"trailerUrl,omitempty"`
	Comments    []primitive.ObjectID `bson:"comments" json:"comments"`
	CreatedAt   time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// CreateMovieRequest carries the multipart form fields of a create; the image
// itself arrives as the "imageUrl" file part and is replaced by the object
// storage location before the document is written.
type CreateMovieRequest struct {
	Title       string  `form:"title" binding:"required"`
	Description string  `form:"description" binding:"required"`
	PublishDate string  `form:"publishDate" binding:"required"`
	Rating      float64 `form:"rating"`
	Tag         string  `form:"tag"`
	TrailerURL  string  `form:"trailerUrl"`
}
