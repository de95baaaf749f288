package yelp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amestri/cineshelf/pkg/errors"
)

func TestSearchBusinesses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/businesses/search", r.URL.Path)
		assert.Equal(t, "Movie Theater", r.URL.Query().Get("term"))
		assert.Equal(t, "Portland, OR", r.URL.Query().Get("location"))
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"total": 1,
			"businesses": [
				{"id": "abc", "name": "Grand Cinema", "rating": 4.5,
				 "location": {"display_address": ["606 Fawcett Ave", "Tacoma, WA 98402"]}}
			]
		}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL("test-key", server.URL)

	result, err := client.SearchBusinesses(context.Background(), "Movie Theater", "Portland, OR")
	require.NoError(t, err)
	require.Len(t, result.Businesses, 1)
	assert.Equal(t, "Grand Cinema", result.Businesses[0].Name)
	assert.Equal(t, 4.5, result.Businesses[0].Rating)
}

func TestSearchBusinessesUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClientWithBaseURL("test-key", server.URL)

	_, err := client.SearchBusinesses(context.Background(), "Movie Theater", "Portland, OR")
	require.ErrorIs(t, err, errors.ErrUpstream)
}

func TestSearchBusinessesEmptyResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"total": 0}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL("test-key", server.URL)

	result, err := client.SearchBusinesses(context.Background(), "Movie Theater", "Nowhere")
	require.NoError(t, err)
	assert.NotNil(t, result.Businesses)
	assert.Empty(t, result.Businesses)
}
