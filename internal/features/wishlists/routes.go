package wishlists

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

	router.GET("/wishlists", requireAuth, handler.Get)
	// Creation stays open so a list can be seeded during account provisioning
	router.POST("/wishlists", handler.Create)
	router.PATCH("/wishlists/:id", requireAuth, handler.Update)
	router.DELETE("/wishlists/:id", requireAuth, handler.Delete)
}
