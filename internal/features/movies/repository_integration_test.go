//go:build integration

package movies

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/amestri/cineshelf/internal/database"
)

// Needs a reachable MongoDB (MONGO_URI, default localhost). Run with
// go test -tags integration ./internal/features/movies/...
func integrationRepo(t *testing.T) *Repository {
	t.Helper()

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	db, err := database.Connect(uri, fmt.Sprintf("cineshelf_test_%d", time.Now().UnixNano()))
	if err != nil {
		t.Skipf("mongodb not reachable: %v", err)
	}
	t.Cleanup(func() {
		db.Database.Drop(context.Background())
		db.Disconnect(context.Background())
	})

	return NewRepository(db.Database)
}

func seedMovies(t *testing.T, repo *Repository, n int) {
	t.Helper()
	base := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		err := repo.Create(context.Background(), &Movie{
			Title:       fmt.Sprintf("movie-%02d", i),
			Description: "seeded",
			Rating:      float64(i % 11),
			PublishDate: base.AddDate(0, i, 0),
		})
		require.NoError(t, err)
	}
}

func TestTopRatedOrderingAndCap(t *testing.T) {
	repo := integrationRepo(t)
	seedMovies(t, repo, 13)

	top, err := repo.TopRated(context.Background())
	require.NoError(t, err)
	require.Len(t, top, 10)

	for i := 1; i < len(top); i++ {
		require.GreaterOrEqual(t, top[i-1].Rating, top[i].Rating)
	}
}

func TestMostRecentOrderingAndCap(t *testing.T) {
	repo := integrationRepo(t)
	seedMovies(t, repo, 13)

	recent, err := repo.MostRecent(context.Background())
	require.NoError(t, err)
	require.Len(t, recent, 10)

	for i := 1; i < len(recent); i++ {
		require.False(t, recent[i-1].PublishDate.Before(recent[i].PublishDate))
	}
}
