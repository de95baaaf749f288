package favorites

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/amestri/cineshelf/internal/config"
	"github.com/amestri/cineshelf/internal/features/users"
)

func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config) {
	repo := NewRepository(db)
	usersRepo := users.NewRepository(db)
	handler := NewHandler(repo)
	requireAuth := users.RequireAuth(usersRepo, cfg)

	favorites := router.Group("/favorites")
	favorites.Use(requireAuth)
	{
		favorites.GET("", handler.Get)
		favorites.POST("", handler.Create)
		favorites.PATCH("/:id", handler.Update)
		favorites.DELETE("/:id", handler.Delete)
	}
}
