package comments

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/amestri/cineshelf/internal/config"
	"github.com/amestri/cineshelf/internal/features/movies"
	"github.com/amestri/cineshelf/internal/features/users"
)

func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config) {
	repo := NewRepository(db)
	moviesRepo := movies.NewRepository(db)
	usersRepo := users.NewRepository(db)
	handler := NewHandler(repo, moviesRepo)
	requireAuth := users.RequireAuth(usersRepo, cfg)

	// Reading a movie's comment thread is public, like the catalog itself
	router.GET("/movies/:id/comments", handler.ListByMovie)

	router.POST("/comments", requireAuth, handler.Create)
	router.GET("/comments/:id", requireAuth, handler.Get)
	router.PATCH("/comments/:id", requireAuth, handler.Update)
	router.DELETE("/comments/:id", requireAuth, handler.Delete)
	router.POST("/comments/:id/like", requireAuth, handler.Like)
	router.POST("/comments/:id/unlike", requireAuth, handler.Unlike)
}
