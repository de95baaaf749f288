package comments

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/amestri/cineshelf/internal/features/movies"
	"github.com/amestri/cineshelf/internal/features/users"
	"github.com/amestri/cineshelf/internal/pkg/authz"
	"github.com/amestri/cineshelf/internal/pkg/pagination"
	"github.com/amestri/cineshelf/internal/pkg/response"
	"github.com/amestri/cineshelf/internal/pkg/sanitize"
)

// store and movieStore are the repository slices the handler needs; tests
// substitute fakes to drive failure paths without a database.
type store interface {
	Create(ctx context.Context, comment *Comment) error
	GetByID(ctx context.Context, id string) (*Comment, error)
	ListByMovie(ctx context.Context, movieID primitive.ObjectID, limit, offset int) ([]Comment, int64, error)
	Update(ctx context.Context, id primitive.ObjectID, update bson.M) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Like(ctx context.Context, id, userID primitive.ObjectID) error
	Unlike(ctx context.Context, id, userID primitive.ObjectID) error
}

type movieStore interface {
	GetByID(ctx context.Context, id string) (*movies.Movie, error)
	PushComment(ctx context.Context, movieID, commentID primitive.ObjectID) error
	PullComment(ctx context.Context, movieID, commentID primitive.ObjectID) error
}

type Handler struct {
	repo   store
	movies movieStore
}

func NewHandler(repo *Repository, moviesRepo *movies.Repository) *Handler {
	return &Handler{repo: repo, movies: moviesRepo}
}

// Create godoc
// @Summary Comment on a movie
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 201 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /comments [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateCreateComment(&req); err != nil {
		response.ValidationError(c, err.Error(), "VALIDATION_FAILED")
		return
	}

	movie, err := h.movies.GetByID(c.Request.Context(), req.MovieID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	caller := users.Current(c)

	comment := &Comment{
		Text:    req.Text,
		MovieID: movie.ID,
		Owner:   caller.ID,
	}

	if err := h.repo.Create(c.Request.Context(), comment); err != nil {
		response.InternalServerError(c, "Failed to create comment")
		return
	}

	// Keep the movie's comment list in step with the new document. If the
	// movie vanished in the window, take the orphaned comment back out.
	if err := h.movies.PushComment(c.Request.Context(), movie.ID, comment.ID); err != nil {
		h.repo.Delete(c.Request.Context(), comment.ID)
		response.FromError(c, err)
		return
	}

	response.Created(c, gin.H{"comment": comment})
}

// Get godoc
// @Summary Get a comment by id
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Comment ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /comments/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	comment, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"comment": comment})
}

// ListByMovie godoc
// @Summary List a movie's comments
// @Tags comments
// @Produce json
// @Param id path string true "Movie ID"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Items per page (default 50, max 100)"
// @Success 200 {object} response.PaginatedResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /movies/{id}/comments [get]
func (h *Handler) ListByMovie(c *gin.Context) {
	movie, err := h.movies.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	req := pagination.FromRequest(c.Query("page"), c.Query("limit"))

	comments, total, err := h.repo.ListByMovie(c.Request.Context(), movie.ID, req.Limit, (req.Page-1)*req.Limit)
	if err != nil {
		response.InternalServerError(c, "Failed to list comments")
		return
	}

	response.Paginated(c, gin.H{"comments": comments}, total, req.Limit, req.Page)
}

// Update godoc
// @Summary Edit a comment (owner)
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Comment ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /comments/{id} [patch]
func (h *Handler) Update(c *gin.Context) {
	// Existence before authorization: probing an unknown id yields 404
	// regardless of the caller's privileges.
	comment, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	if err := authz.RequireOwnership(users.Current(c), comment.Owner); err != nil {
		response.FromError(c, err)
		return
	}

	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.BindJSONError(c, err)
		return
	}

	update := commentUpdate(sanitize.RemoveBlanks(sanitize.Unwrap(payload, "comment")))

	// An all-blank payload sanitizes to nothing; treat it as a no-op
	if len(update) > 0 {
		if err := h.repo.Update(c.Request.Context(), comment.ID, update); err != nil {
			response.FromError(c, err)
			return
		}
	}

	updated, err := h.repo.GetByID(c.Request.Context(), comment.ID.Hex())
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{"comment": updated})
}

// Delete godoc
// @Summary Delete a comment (owner)
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Comment ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /comments/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	comment, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	if err := authz.RequireOwnership(users.Current(c), comment.Owner); err != nil {
		response.FromError(c, err)
		return
	}

	if err := h.repo.Delete(c.Request.Context(), comment.ID); err != nil {
		response.FromError(c, err)
		return
	}

	// Best effort: the movie may itself have been removed already
	h.movies.PullComment(c.Request.Context(), comment.MovieID, comment.ID)

	response.Success(c, gin.H{"message": "Comment deleted"})
}

// Like godoc
// @Summary Like a comment
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Comment ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /comments/{id}/like [post]
func (h *Handler) Like(c *gin.Context) {
	h.voteHandler(c, h.repo.Like)
}

// Unlike godoc
// @Summary Unlike a comment
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Comment ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /comments/{id}/unlike [post]
func (h *Handler) Unlike(c *gin.Context) {
	h.voteHandler(c, h.repo.Unlike)
}

func (h *Handler) voteHandler(c *gin.Context, vote func(ctx context.Context, id, userID primitive.ObjectID) error) {
	comment, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	caller := users.Current(c)

	if err := vote(c.Request.Context(), comment.ID, caller.ID); err != nil {
		response.FromError(c, err)
		return
	}

	updated, err := h.repo.GetByID(c.Request.Context(), comment.ID.Hex())
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{"comment": updated})
}

// commentUpdate whitelists sanitized payload fields into a partial update
// document. Only the text is editable after creation.
func commentUpdate(payload map[string]interface{}) bson.M {
	update := bson.M{}
	if s, ok := payload["text"].(string); ok {
		update["text"] = s
	}
	return update
}
