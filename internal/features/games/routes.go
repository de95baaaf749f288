package games

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/amestri/cineshelf/internal/config"
	"github.com/amestri/cineshelf/internal/features/users"
	"github.com/amestri/cineshelf/internal/pkg/authz"
)

func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config) {
	repo := NewRepository(db)
	usersRepo := users.NewRepository(db)
	handler := NewHandler(repo)
	requireAuth := users.RequireAuth(usersRepo, cfg)

	// Every game operation is admin-only. Collection routes gate in
	// middleware; id-addressed routes check admin in the handler after the
	// existence lookup.
	router.GET("/games", requireAuth, authz.AdminOnly(), handler.List)
	router.POST("/games", requireAuth, authz.AdminOnly(), handler.Create)
	router.GET("/games/:id", requireAuth, handler.Get)
	router.PATCH("/games/:id", requireAuth, handler.Update)
	router.DELETE("/games/:id", requireAuth, handler.Delete)
}
