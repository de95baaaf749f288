package movies

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/amestri/cineshelf/internal/features/users"
	"github.com/amestri/cineshelf/internal/pkg/authz"
	"github.com/amestri/cineshelf/internal/pkg/cloudinary"
	"github.com/amestri/cineshelf/internal/pkg/pagination"
	"github.com/amestri/cineshelf/internal/pkg/response"
	"github.com/amestri/cineshelf/internal/pkg/sanitize"
	"github.com/amestri/cineshelf/internal/pkg/validator"
)

type Handler struct {
	repo *Repository
	cld  *cloudinary.Service
}

func NewHandler(repo *Repository, cld *cloudinary.Service) *Handler {
	return &Handler{repo: repo, cld: cld}
}

// List godoc
// @Summary List the movie catalog
// @Tags movies
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Items per page (default 50, max 100)"
// @Success 200 {object} response.PaginatedResponse
// @Router /movies [get]
func (h *Handler) List(c *gin.Context) {
	req := pagination.FromRequest(c.Query("page"), c.Query("limit"))

	movies, total, err := h.repo.List(c.Request.Context(), req.Limit, (req.Page-1)*req.Limit)
	if err != nil {
		response.InternalServerError(c, "Failed to list movies")
		return
	}

	response.Paginated(c, gin.H{"movies": movies}, total, req.Limit, req.Page)
}

// TopRated godoc
// @Summary Top ten movies by rating
// @Tags movies
// @Produce json
// @Success 200 {object} response.SuccessResponse
// @Router /moviesbystar [get]
func (h *Handler) TopRated(c *gin.Context) {
	movies, err := h.repo.TopRated(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Failed to list movies")
		return
	}
	response.Success(c, gin.H{"movies": movies})
}

// MostRecent godoc
// @Summary Top ten movies by publish date
// @Tags movies
// @Produce json
// @Success 200 {object} response.SuccessResponse
// @Router /moviesbydate [get]
func (h *Handler) MostRecent(c *gin.Context) {
	movies, err := h.repo.MostRecent(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Failed to list movies")
		return
	}
	response.Success(c, gin.H{"movies": movies})
}

// Get godoc
// @Summary Get a movie by id
// @Tags movies
// @Produce json
// @Param id path string true "Movie ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /movies/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	movie, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"movie": movie})
}

// Create godoc
// @Summary Create a movie (admin)
// @Tags movies
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title"
// @Param description formData string true "Description"
// @Param publishDate formData string true "Publish date (RFC 3339 or YYYY-MM-DD)"
// @Param rating formData number false "Rating 0-10"
// @Param tag formData string false "Tag"
// @Param trailerUrl formData string false "Trailer URL"
// @Param imageUrl formData file true "Poster image"
// @Success 201 {object} response.SuccessResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Failure 502 {object} response.ErrorResponse
// @Router /movies [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateMovieRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Invalid request format", "INVALID_FORM")
		return
	}

	publishDate, err := ValidateCreateMovie(&req)
	if err != nil {
		response.ValidationError(c, err.Error(), "VALIDATION_FAILED")
		return
	}

	// The poster arrives under the imageUrl field; the stored value is the
	// object-storage location reported back by the upload.
	header, err := c.FormFile("imageUrl")
	if err != nil {
		response.BadRequest(c, "Poster image is required", "MISSING_FILE")
		return
	}
	if err := cloudinary.ValidateImageFile(header); err != nil {
		response.BadRequest(c, err.Error(), "INVALID_FILE")
		return
	}

	upload, err := h.cld.UploadImageFile(c.Request.Context(), header)
	if err != nil {
		response.FromError(c, err)
		return
	}

	movie := &Movie{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    upload.URL,
		PublishDate: publishDate,
		Rating:      req.Rating,
		Tag:         req.Tag,
		TrailerURL:  req.TrailerURL,
	}

	if err := h.repo.Create(c.Request.Context(), movie); err != nil {
		response.InternalServerError(c, "Failed to create movie")
		return
	}

	response.Created(c, gin.H{"movie": movie})
}

// Update godoc
// @Summary Partially update a movie (admin)
// @Tags movies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Movie ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /movies/{id} [patch]
func (h *Handler) Update(c *gin.Context) {
	// Existence before authorization: probing an unknown id yields 404
	// regardless of the caller's privileges.
	movie, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
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

	update, err := movieUpdate(sanitize.RemoveBlanks(sanitize.Unwrap(payload, "movie")))
	if err != nil {
		response.ValidationError(c, err.Error(), "VALIDATION_FAILED")
		return
	}

	// An all-blank payload sanitizes to nothing; treat it as a no-op
	if len(update) > 0 {
		if err := h.repo.Update(c.Request.Context(), movie.ID, update); err != nil {
			response.FromError(c, err)
			return
		}
	}

	updated, err := h.repo.GetByID(c.Request.Context(), movie.ID.Hex())
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{"movie": updated})
}

// Delete godoc
// @Summary Delete a movie (admin)
// @Tags movies
// @Produce json
// @Security BearerAuth
// @Param id path string true "Movie ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /movies/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	movie, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	if err := authz.RequireAdmin(users.Current(c)); err != nil {
		response.FromError(c, err)
		return
	}

	if err := h.repo.Delete(c.Request.Context(), movie.ID); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "Movie deleted"})
}

// movieUpdate whitelists sanitized payload fields into a partial update
// document. Unknown keys are dropped; typed fields are checked here because
// the payload arrives as a raw map.
func movieUpdate(payload map[string]interface{}) (bson.M, error) {
	update := bson.M{}

	for key, value := range payload {
		switch key {
		case "title", "description", "tag":
			if s, ok := value.(string); ok {
				update[key] = s
			}
		case "trailerUrl":
			s, ok := value.(string)
			if !ok {
				continue
			}
			if !validator.IsValidURL(s) {
				return nil, errors.New("trailerUrl must be a valid URL")
			}
			update[key] = s
		case "rating":
			rating, ok := toFloat(value)
			if !ok {
				continue
			}
			if rating < 0 || rating > 10 {
				return nil, errors.New("rating must be between 0 and 10")
			}
			update[key] = rating
		case "publishDate":
			s, ok := value.(string)
			if !ok {
				continue
			}
			t, err := parsePublishDate(s)
			if err != nil {
				return nil, err
			}
			update[key] = t
		}
	}

	return update, nil
}

func toFloat(value interface{}) (float64, bool) {
	switch n := value.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
