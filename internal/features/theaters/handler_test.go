package theaters

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amestri/cineshelf/internal/pkg/yelp"
)

func setupRouter(client *yelp.Client) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterRoutes(router.Group(""), client)
	return router
}

func TestSearchProxiesFixedTerm(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Movie Theater", r.URL.Query().Get("term"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"total": 1, "businesses": [{"id": "abc", "name": "Grand Cinema"}]}`))
	}))
	defer upstream.Close()

	router := setupRouter(yelp.NewClientWithBaseURL("test-key", upstream.URL))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/searchtheater", strings.NewReader(`{"location": "Tacoma, WA"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Grand Cinema")
}

func TestSearchRequiresLocation(t *testing.T) {
	router := setupRouter(yelp.NewClient("test-key"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/searchtheater", strings.NewReader(`{"location": "   "}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestSearchMapsUpstreamFailureToBadGateway(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer upstream.Close()

	router := setupRouter(yelp.NewClientWithBaseURL("test-key", upstream.URL))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/searchtheater", strings.NewReader(`{"location": "Tacoma, WA"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadGateway, w.Code)
}
