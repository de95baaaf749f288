package response

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amestri/cineshelf/pkg/errors"
)

// ErrorResponse is the standard error payload returned by the API
type ErrorResponse struct {
	Error string `json:"error" example:"resource not found"`
	Code  string `json:"code,omitempty" example:"NOT_FOUND"`
}

// SuccessResponse is the standard success envelope
type SuccessResponse struct {
	Status string      `json:"status" example:"success"`
	Data   interface{} `json:"data"`
}

// PaginatedResponse is the envelope for paginated list responses
type PaginatedResponse struct {
	Status string      `json:"status" example:"success"`
	Data   interface{} `json:"data"`
	Total  int64       `json:"total" example:"25"`
	Limit  int         `json:"limit" example:"10"`
	Page   int         `json:"page,omitempty" example:"1"`
}

// Success sends a 200 OK response with data
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, SuccessResponse{
		Status: "success",
		Data:   data,
	})
}

// Created sends a 201 Created response
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, SuccessResponse{
		Status: "success",
		Data:   data,
	})
}

// Paginated sends a paginated list response
func Paginated(c *gin.Context, data interface{}, total int64, limit, page int) {
	c.JSON(http.StatusOK, PaginatedResponse{
		Status: "success",
		Data:   data,
		Total:  total,
		Limit:  limit,
		Page:   page,
	})
}

// Error sends an error response with a custom status code and message
func Error(c *gin.Context, statusCode int, message string, errorCode ...string) {
	code := ""
	if len(errorCode) > 0 {
		code = errorCode[0]
	}

	c.JSON(statusCode, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// BadRequest sends a 400 Bad Request error
func BadRequest(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusBadRequest, message, errorCode...)
}

// Unauthorized sends a 401 Unauthorized error
func Unauthorized(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusUnauthorized, message, errorCode...)
}

// Forbidden sends a 403 Forbidden error
func Forbidden(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusForbidden, message, errorCode...)
}

// NotFound sends a 404 Not Found error
func NotFound(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusNotFound, message, errorCode...)
}

// Conflict sends a 409 Conflict error
func Conflict(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusConflict, message, errorCode...)
}

// ValidationError sends a 422 Unprocessable Entity error
func ValidationError(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusUnprocessableEntity, message, errorCode...)
}

// InternalServerError sends a 500 Internal Server Error
func InternalServerError(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusInternalServerError, message, errorCode...)
}

// BadGateway sends a 502 Bad Gateway error
func BadGateway(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusBadGateway, message, errorCode...)
}

// BindJSONError handles JSON decode errors in request bodies
func BindJSONError(c *gin.Context, err error) {
	BadRequest(c, "Invalid request format", "INVALID_JSON")
}

// FromError translates a sentinel error into its canonical HTTP response.
// Missing resources are reported before authorization outcomes elsewhere, so a
// caller probing an id that does not exist always sees 404 here, never 403.
func FromError(c *gin.Context, err error) {
	switch {
	case stderrors.Is(err, errors.ErrNotFound):
		NotFound(c, err.Error(), "NOT_FOUND")
	case stderrors.Is(err, errors.ErrForbidden):
		Forbidden(c, err.Error(), "FORBIDDEN")
	case stderrors.Is(err, errors.ErrUnauthenticated):
		Unauthorized(c, err.Error(), "UNAUTHENTICATED")
	case stderrors.Is(err, errors.ErrValidation):
		ValidationError(c, err.Error(), "VALIDATION_FAILED")
	case stderrors.Is(err, errors.ErrDuplicate):
		Conflict(c, err.Error(), "DUPLICATE")
	case stderrors.Is(err, errors.ErrUpstream):
		BadGateway(c, err.Error(), "UPSTREAM_FAILED")
	default:
		InternalServerError(c, err.Error(), "INTERNAL")
	}
}
