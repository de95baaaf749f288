package routes

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/amestri/cineshelf/internal/config"
	"github.com/amestri/cineshelf/internal/features/comments"
	"github.com/amestri/cineshelf/internal/features/favorites"
	"github.com/amestri/cineshelf/internal/features/games"
	"github.com/amestri/cineshelf/internal/features/movies"
	"github.com/amestri/cineshelf/internal/features/theaters"
	"github.com/amestri/cineshelf/internal/features/users"
	"github.com/amestri/cineshelf/internal/features/wishlists"
	"github.com/amestri/cineshelf/internal/pkg/cloudinary"
	"github.com/amestri/cineshelf/internal/pkg/logger"
	"github.com/amestri/cineshelf/internal/pkg/yelp"
)

func SetupRoutes(router *gin.Engine, db *mongo.Database, cfg *config.Config) {
	// Routes live at the root; clients predate any versioned prefix
	api := router.Group("")

	cld, err := cloudinary.NewService(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, cfg.CloudinaryUploadFolder)
	if err != nil {
		logger.Warn("cloudinary unavailable, uploads will fail: %v", err)
	}

	yelpClient := yelp.NewClient(cfg.YelpAPIKey)

	users.RegisterRoutes(api, db, cfg, cld)
	movies.RegisterRoutes(api, db, cfg, cld)
	games.RegisterRoutes(api, db, cfg)
	comments.RegisterRoutes(api, db, cfg)
	wishlists.RegisterRoutes(api, db, cfg)
	favorites.RegisterRoutes(api, db, cfg)
	theaters.RegisterRoutes(api, yelpClient)
}
