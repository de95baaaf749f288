package movies

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/amestri/cineshelf/internal/config"
	"github.com/amestri/cineshelf/internal/features/users"
	"github.com/amestri/cineshelf/internal/pkg/authz"
	"github.com/amestri/cineshelf/internal/pkg/cloudinary"
)

func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config, cld *cloudinary.Service) {
	repo := NewRepository(db)
	usersRepo := users.NewRepository(db)
	handler := NewHandler(repo, cld)
	requireAuth := users.RequireAuth(usersRepo, cfg)

	// Public catalog reads
	router.GET("/movies", handler.List)
	router.GET("/moviesbystar", handler.TopRated)
	router.GET("/moviesbydate", handler.MostRecent)
	router.GET("/movies/:id", handler.Get)

	// Admin-managed mutations. Create has no resource to resolve so the admin
	// gate runs as middleware; id-addressed mutations check admin in the
	// handler after the existence lookup.
	router.POST("/movies", requireAuth, authz.AdminOnly(), handler.Create)
	router.PATCH("/movies/:id", requireAuth, handler.Update)
	router.DELETE("/movies/:id", requireAuth, handler.Delete)
}
