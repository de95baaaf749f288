package theaters

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/amestri/cineshelf/internal/pkg/response"
	"github.com/amestri/cineshelf/internal/pkg/yelp"
)

// searchTerm is fixed; callers only choose where to look.
const searchTerm = "Movie Theater"

type Handler struct {
	yelp *yelp.Client
}

func NewHandler(client *yelp.Client) *Handler {
	return &Handler{yelp: client}
}

type SearchRequest struct {
	Location string `json:"location" binding:"required"`
}

// Search godoc
// @Summary Find movie theaters near a location
// @Tags theaters
// @Accept json
// @Produce json
// @Success 200 {object} response.SuccessResponse
// @Failure 422 {object} response.ErrorResponse
// @Failure 502 {object} response.ErrorResponse
// @Router /searchtheater [post]
func (h *Handler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	req.Location = strings.TrimSpace(req.Location)
	if req.Location == "" {
		response.ValidationError(c, "location is required", "VALIDATION_FAILED")
		return
	}

	result, err := h.yelp.SearchBusinesses(c.Request.Context(), searchTerm, req.Location)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{"theaters": result.Businesses, "total": result.Total})
}
