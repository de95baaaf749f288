package wishlists

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/amestri/cineshelf/internal/features/users"
	"github.com/amestri/cineshelf/internal/pkg/authz"
	"github.com/amestri/cineshelf/internal/pkg/response"
	"github.com/amestri/cineshelf/internal/pkg/sanitize"
)

// store is the slice of Repository the handler needs; tests substitute a
// fake to drive the authorization paths without a database.
type store interface {
	GetByID(ctx context.Context, id string) (*Wishlist, error)
	GetByOwner(ctx context.Context, owner primitive.ObjectID) (*Wishlist, error)
	Create(ctx context.Context, wishlist *Wishlist) error
	Update(ctx context.Context, id primitive.ObjectID, update bson.M) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type Handler struct {
	repo store
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// Get godoc
// @Summary Get the caller's wishlist
// @Tags wishlists
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /wishlists [get]
func (h *Handler) Get(c *gin.Context) {
	caller := users.Current(c)

	wishlist, err := h.repo.GetByOwner(c.Request.Context(), caller.ID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"wishlist": wishlist})
}

// Create godoc
// @Summary Create a wishlist
// @Tags wishlists
// @Accept json
// @Produce json
// @Success 201 {object} response.SuccessResponse
// @Failure 409 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /wishlists [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	owner, err := primitive.ObjectIDFromHex(req.Owner)
	if err != nil {
		response.ValidationError(c, "owner must be a valid id", "VALIDATION_FAILED")
		return
	}

	movieIDs, err := parseIDList(req.Movies)
	if err != nil {
		response.ValidationError(c, err.Error(), "VALIDATION_FAILED")
		return
	}

	wishlist := &Wishlist{Owner: owner, Movies: movieIDs}

	if err := h.repo.Create(c.Request.Context(), wishlist); err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, gin.H{"wishlist": wishlist})
}

// Update godoc
// @Summary Replace the movies on a wishlist (owner)
// @Tags wishlists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wishlist ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /wishlists/{id} [patch]
func (h *Handler) Update(c *gin.Context) {
	// Existence before authorization: probing an unknown id yields 404
	// regardless of the caller's privileges.
	wishlist, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	if err := authz.RequireOwnership(users.Current(c), wishlist.Owner); err != nil {
		response.FromError(c, err)
		return
	}

	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.BindJSONError(c, err)
		return
	}

	update, err := wishlistUpdate(sanitize.RemoveBlanks(sanitize.Unwrap(payload, "wishlist")))
	if err != nil {
		response.ValidationError(c, err.Error(), "VALIDATION_FAILED")
		return
	}

	if len(update) > 0 {
		if err := h.repo.Update(c.Request.Context(), wishlist.ID, update); err != nil {
			response.FromError(c, err)
			return
		}
	}

	updated, err := h.repo.GetByID(c.Request.Context(), wishlist.ID.Hex())
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{"wishlist": updated})
}

// Delete godoc
// @Summary Delete a wishlist (owner)
// @Tags wishlists
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wishlist ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /wishlists/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	wishlist, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	if err := authz.RequireOwnership(users.Current(c), wishlist.Owner); err != nil {
		response.FromError(c, err)
		return
	}

	if err := h.repo.Delete(c.Request.Context(), wishlist.ID); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "Wishlist deleted"})
}

// wishlistUpdate whitelists sanitized payload fields into a partial update
// document. The owner is never editable.
func wishlistUpdate(payload map[string]interface{}) (bson.M, error) {
	update := bson.M{}

	if raw, ok := payload["movies"].([]interface{}); ok {
		ids := make([]primitive.ObjectID, 0, len(raw))
		for _, item := range raw {
			s, ok := item.(string)
			if !ok {
				return nil, errors.New("movies must be a list of ids")
			}
			oid, err := primitive.ObjectIDFromHex(s)
			if err != nil {
				return nil, errors.New("movies must be a list of ids")
			}
			ids = append(ids, oid)
		}
		update["movies"] = ids
	}

	return update, nil
}

func parseIDList(values []string) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(values))
	for _, v := range values {
		oid, err := primitive.ObjectIDFromHex(v)
		if err != nil {
			return nil, errors.New("movies must be a list of ids")
		}
		ids = append(ids, oid)
	}
	return ids, nil
}
