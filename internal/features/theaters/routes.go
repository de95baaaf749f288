package theaters

import (
	"github.com/gin-gonic/gin"

	"github.com/amestri/cineshelf/internal/pkg/yelp"
)

func RegisterRoutes(router *gin.RouterGroup, client *yelp.Client) {
	handler := NewHandler(client)

	router.POST("/searchtheater", handler.Search)
}
