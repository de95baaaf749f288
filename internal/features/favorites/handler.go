package favorites

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/amestri/cineshelf/internal/features/users"
	"github.com/amestri/cineshelf/internal/pkg/authz"
	"github.com/amestri/cineshelf/internal/pkg/response"
	"github.com/amestri/cineshelf/internal/pkg/sanitize"
)

type Handler struct {
	repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// Get godoc
// @Summary Get the caller's favorite list
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /favorites [get]
func (h *Handler) Get(c *gin.Context) {
	caller := users.Current(c)

	list, err := h.repo.GetByOwner(c.Request.Context(), caller.ID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"favorites": list})
}

// Create godoc
// @Summary Create the caller's favorite list
// @Tags favorites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 201 {object} response.SuccessResponse
// @Failure 409 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /favorites [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateFavoriteListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	movieIDs, err := parseIDList(req.Movies)
	if err != nil {
		response.ValidationError(c, err.Error(), "VALIDATION_FAILED")
		return
	}

	// The owner is always the caller, whatever the payload says
	caller := users.Current(c)
	list := &FavoriteList{Owner: caller.ID, Movies: movieIDs}

	if err := h.repo.Create(c.Request.Context(), list); err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, gin.H{"favorites": list})
}

// Update godoc
// @Summary Replace the movies on a favorite list (owner)
// @Tags favorites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Favorite list ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /favorites/{id} [patch]
func (h *Handler) Update(c *gin.Context) {
	// Existence before authorization: probing an unknown id yields 404
	// regardless of the caller's privileges.
	list, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	if err := authz.RequireOwnership(users.Current(c), list.Owner); err != nil {
		response.FromError(c, err)
		return
	}

	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.BindJSONError(c, err)
		return
	}

	update, err := favoriteUpdate(sanitize.RemoveBlanks(payload))
	if err != nil {
		response.ValidationError(c, err.Error(), "VALIDATION_FAILED")
		return
	}

	if len(update) > 0 {
		if err := h.repo.Update(c.Request.Context(), list.ID, update); err != nil {
			response.FromError(c, err)
			return
		}
	}

	updated, err := h.repo.GetByID(c.Request.Context(), list.ID.Hex())
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{"favorites": updated})
}

// Delete godoc
// @Summary Delete a favorite list (owner)
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param id path string true "Favorite list ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /favorites/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	list, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	if err := authz.RequireOwnership(users.Current(c), list.Owner); err != nil {
		response.FromError(c, err)
		return
	}

	if err := h.repo.Delete(c.Request.Context(), list.ID); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "Favorite list deleted"})
}

// favoriteUpdate whitelists sanitized payload fields into a partial update
// document. The owner is never editable.
func favoriteUpdate(payload map[string]interface{}) (bson.M, error) {
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
