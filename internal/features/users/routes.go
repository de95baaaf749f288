package users

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/amestri/cineshelf/internal/config"
	"github.com/amestri/cineshelf/internal/pkg/cloudinary"
	"github.com/amestri/cineshelf/internal/pkg/ratelimit"
)

func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config, cld *cloudinary.Service) {
	repo := NewRepository(db)
	handler := NewHandler(repo, cld, cfg)
	requireAuth := RequireAuth(repo, cfg)

	// Credential endpoints sit behind a per-IP limiter
	credLimiter := ratelimit.New(10, time.Minute)
	credLimiter.StartCleanup(5 * time.Minute)
	limited := ratelimit.Middleware(credLimiter)

	router.POST("/sign-up", limited, handler.SignUp)
	router.POST("/sign-in", limited, handler.SignIn)
	router.PATCH("/change-password", requireAuth, handler.ChangePassword)
	router.DELETE("/sign-out", requireAuth, handler.SignOut)

	me := router.Group("/users/me")
	me.Use(requireAuth)
	{
		me.GET("", handler.Me)
		me.POST("/avatar", handler.UploadAvatar)
	}
}
