package users

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/amestri/cineshelf/internal/config"
	"github.com/amestri/cineshelf/internal/pkg/cloudinary"
	"github.com/amestri/cineshelf/internal/pkg/response"
	"github.com/amestri/cineshelf/internal/pkg/token"
)

type Handler struct {
	repo *Repository
	cld  *cloudinary.Service
	cfg  *config.Config
}

func NewHandler(repo *Repository, cld *cloudinary.Service, cfg *config.Config) *Handler {
	return &Handler{repo: repo, cld: cld, cfg: cfg}
}

// SignUp godoc
// @Summary Register a new account
// @Tags users
// @Accept json
// @Produce json
// @Param request body SignUpRequest true "Account credentials"
// @Success 201 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /sign-up [post]
func (h *Handler) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateSignUp(&req); err != nil {
		response.ValidationError(c, err.Error(), "VALIDATION_FAILED")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		response.InternalServerError(c, "Failed to process password")
		return
	}

	user := &User{
		Email:          req.Email,
		HashedPassword: string(hash),
	}

	if err := h.repo.Create(c.Request.Context(), user); err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, gin.H{"user": user.Public()})
}

// SignIn godoc
// @Summary Authenticate and receive a bearer token
// @Tags users
// @Accept json
// @Produce json
// @Param request body SignInRequest true "Account credentials"
// @Success 200 {object} response.SuccessResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /sign-in [post]
func (h *Handler) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateSignIn(&req); err != nil {
		response.ValidationError(c, err.Error(), "VALIDATION_FAILED")
		return
	}

	user, err := h.repo.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		response.FromError(c, err)
		return
	}
	if user == nil {
		response.Unauthorized(c, "Invalid email or password", "INVALID_CREDENTIALS")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password)); err != nil {
		response.Unauthorized(c, "Invalid email or password", "INVALID_CREDENTIALS")
		return
	}

	signed, err := token.Generate(user.ID.Hex(), user.Email, h.cfg.JWTSecret, h.cfg.JWTExpireHours)
	if err != nil {
		response.InternalServerError(c, "Failed to generate token")
		return
	}

	// Each sign-in rotates the stored token, revoking the previous one
	if err := h.repo.SetToken(c.Request.Context(), user.ID, signed); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, AuthResponse{Token: signed, User: user.Public()})
}

// ChangePassword godoc
// @Summary Change the caller's password
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ChangePasswordRequest true "Old and new passwords"
// @Success 200 {object} response.SuccessResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /change-password [patch]
func (h *Handler) ChangePassword(c *gin.Context) {
	user := Current(c)

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateChangePassword(&req); err != nil {
		response.ValidationError(c, err.Error(), "VALIDATION_FAILED")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.OldPassword)); err != nil {
		response.Unauthorized(c, "Old password is incorrect", "INVALID_CREDENTIALS")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		response.InternalServerError(c, "Failed to process password")
		return
	}

	if err := h.repo.SetPassword(c.Request.Context(), user.ID, string(hash)); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "Password updated"})
}

// SignOut godoc
// @Summary Revoke the caller's bearer token
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /sign-out [delete]
func (h *Handler) SignOut(c *gin.Context) {
	user := Current(c)

	if err := h.repo.SetToken(c.Request.Context(), user.ID, ""); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "Signed out"})
}

// Me godoc
// @Summary Get the caller's profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /users/me [get]
func (h *Handler) Me(c *gin.Context) {
	user := Current(c)
	response.Success(c, gin.H{"user": user.Public()})
}

// UploadAvatar godoc
// @Summary Upload a profile picture
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param avatar formData file true "Image file"
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 502 {object} response.ErrorResponse
// @Router /users/me/avatar [post]
func (h *Handler) UploadAvatar(c *gin.Context) {
	user := Current(c)

	header, err := c.FormFile("avatar")
	if err != nil {
		response.BadRequest(c, "Avatar file is required", "MISSING_FILE")
		return
	}

	if err := cloudinary.ValidateImageFile(header); err != nil {
		response.BadRequest(c, err.Error(), "INVALID_FILE")
		return
	}

	result, err := h.cld.UploadImageFile(c.Request.Context(), header)
	if err != nil {
		response.FromError(c, err)
		return
	}

	if err := h.repo.SetAvatar(c.Request.Context(), user.ID, result.URL); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{"avatarUrl": result.URL})
}
