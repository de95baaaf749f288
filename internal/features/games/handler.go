package games

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/amestri/cineshelf/internal/features/users"
	"github.com/amestri/cineshelf/internal/pkg/authz"
	"github.com/amestri/cineshelf/internal/pkg/response"
	"github.com/amestri/cineshelf/internal/pkg/sanitize"
	"github.com/amestri/cineshelf/internal/pkg/validator"
)

type Handler struct {
	repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// List godoc
// @Summary List the game catalog (admin)
// @Tags games
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse
// @Failure 403 {object} response.ErrorResponse
// @Router /games [get]
func (h *Handler) List(c *gin.Context) {
	games, err := h.repo.List(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Failed to list games")
		return
	}
	response.Success(c, gin.H{"games": games})
}

// Get godoc
// @Summary Get a game by id (admin)
// @Tags games
// @Produce json
// @Security BearerAuth
// @Param id path string true "Game ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /games/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	game, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	if err := authz.RequireAdmin(users.Current(c)); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{"game": game})
}

// Create godoc
// @Summary Create a game (admin)
// @Tags games
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 201 {object} response.SuccessResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /games [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateCreateGame(&req); err != nil {
		response.ValidationError(c, err.Error(), "VALIDATION_FAILED")
		return
	}

	game := &Game{
		Title:    req.Title,
		ImageURL: req.ImageURL,
		URLs:     req.URLs,
	}

	if err := h.repo.Create(c.Request.Context(), game); err != nil {
		response.InternalServerError(c, "Failed to create game")
		return
	}

	response.Created(c, gin.H{"game": game})
}

// Update godoc
// @Summary Partially update a game (admin)
// @Tags games
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Game ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /games/{id} [patch]
func (h *Handler) Update(c *gin.Context) {
	// Existence before authorization: probing an unknown id yields 404
	// regardless of the caller's privileges.
	game, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	if err := authz.RequireAdmin(users.Current(c)); err != nil {
		response.FromError(c, err)
		return
	}

	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.BindJSONError(c, err)
		return
	}

	update, err := gameUpdate(sanitize.RemoveBlanks(sanitize.Unwrap(payload, "game")))
	if err != nil {
		response.ValidationError(c, err.Error(), "VALIDATION_FAILED")
		return
	}

	if len(update) > 0 {
		if err := h.repo.Update(c.Request.Context(), game.ID, update); err != nil {
			response.FromError(c, err)
			return
		}
	}

	updated, err := h.repo.GetByID(c.Request.Context(), game.ID.Hex())
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{"game": updated})
}

// Delete godoc
// @Summary Delete a game (admin)
// @Tags games
// @Produce json
// @Security BearerAuth
// @Param id path string true "Game ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /games/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	game, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	if err := authz.RequireAdmin(users.Current(c)); err != nil {
		response.FromError(c, err)
		return
	}

	if err := h.repo.Delete(c.Request.Context(), game.ID); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "Game deleted"})
}

// gameUpdate whitelists sanitized payload fields into a partial update
// document.
func gameUpdate(payload map[string]interface{}) (bson.M, error) {
	update := bson.M{}

	for key, value := range payload {
		switch key {
		case "title":
			if s, ok := value.(string); ok {
				update[key] = s
			}
		case "imageUrl":
			s, ok := value.(string)
			if !ok {
				continue
			}
			if !validator.IsValidURL(s) {
				return nil, errors.New("imageUrl must be a valid URL")
			}
			update[key] = s
		case "urls":
			list, ok := value.([]interface{})
			if !ok {
				continue
			}
			urls := make([]string, 0, len(list))
			for _, item := range list {
				s, ok := item.(string)
				if !ok {
					return nil, errors.New("urls must be a list of strings")
				}
				urls = append(urls, s)
			}
			update[key] = urls
		}
	}

	return update, nil
}
