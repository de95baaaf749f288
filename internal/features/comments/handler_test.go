package comments

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/amestri/cineshelf/internal/features/movies"
	"github.com/amestri/cineshelf/internal/features/users"
	"github.com/amestri/cineshelf/pkg/errors"
)

type fakeStore struct {
	comment *Comment
	created *Comment
	deleted []primitive.ObjectID
	updates int
}

func (f *fakeStore) Create(ctx context.Context, comment *Comment) error {
	comment.ID = primitive.NewObjectID()
	f.created = comment
	return nil
}

func (f *fakeStore) GetByID(ctx context.Context, id string) (*Comment, error) {
	if f.comment == nil {
		return nil, fmt.Errorf("comment %q: %w", id, errors.ErrNotFound)
	}
	return f.comment, nil
}

func (f *fakeStore) ListByMovie(ctx context.Context, movieID primitive.ObjectID, limit, offset int) ([]Comment, int64, error) {
	return nil, 0, nil
}

func (f *fakeStore) Update(ctx context.Context, id primitive.ObjectID, update bson.M) error {
	f.updates++
	return nil
}

func (f *fakeStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeStore) Like(ctx context.Context, id, userID primitive.ObjectID) error   { return nil }
func (f *fakeStore) Unlike(ctx context.Context, id, userID primitive.ObjectID) error { return nil }

type fakeMovies struct {
	movie   *movies.Movie
	pushErr error
	pushes  int
	pulls   int
}

func (f *fakeMovies) GetByID(ctx context.Context, id string) (*movies.Movie, error) {
	if f.movie == nil {
		return nil, fmt.Errorf("movie %q: %w", id, errors.ErrNotFound)
	}
	return f.movie, nil
}

func (f *fakeMovies) PushComment(ctx context.Context, movieID, commentID primitive.ObjectID) error {
	if f.pushErr != nil {
		return f.pushErr
	}
	f.pushes++
	return nil
}

func (f *fakeMovies) PullComment(ctx context.Context, movieID, commentID primitive.ObjectID) error {
	f.pulls++
	return nil
}

func commentRouter(repo store, moviesRepo movieStore, caller *users.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := &Handler{repo: repo, movies: moviesRepo}
	auth := func(c *gin.Context) {
		if caller != nil {
			c.Set("user", caller)
		}
	}
	router.POST("/comments", auth, handler.Create)
	router.PATCH("/comments/:id", auth, handler.Update)
	return router
}

func jsonReq(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestCreateRemovesOrphanWhenMovieVanishes(t *testing.T) {
	movie := &movies.Movie{ID: primitive.NewObjectID()}
	repo := &fakeStore{}
	moviesRepo := &fakeMovies{
		movie:   movie,
		pushErr: fmt.Errorf("movie %q: %w", movie.ID.Hex(), errors.ErrNotFound),
	}
	caller := &users.User{ID: primitive.NewObjectID()}

	w := jsonReq(commentRouter(repo, moviesRepo, caller), http.MethodPost, "/comments",
		`{"text": "great movie", "movieId": "`+movie.ID.Hex()+`"}`)

	require.Equal(t, http.StatusNotFound, w.Code)
	require.NotNil(t, repo.created)
	require.Equal(t, []primitive.ObjectID{repo.created.ID}, repo.deleted)
}

func TestCreateLinksCommentToMovie(t *testing.T) {
	movie := &movies.Movie{ID: primitive.NewObjectID()}
	repo := &fakeStore{}
	moviesRepo := &fakeMovies{movie: movie}
	caller := &users.User{ID: primitive.NewObjectID()}

	w := jsonReq(commentRouter(repo, moviesRepo, caller), http.MethodPost, "/comments",
		`{"text": "great movie", "movieId": "`+movie.ID.Hex()+`"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, 1, moviesRepo.pushes)
	require.Equal(t, caller.ID, repo.created.Owner)
	require.Empty(t, repo.deleted)
}

func TestUpdateByNonOwnerForbiddenWithoutMutation(t *testing.T) {
	comment := &Comment{ID: primitive.NewObjectID(), Owner: primitive.NewObjectID(), Text: "original"}
	repo := &fakeStore{comment: comment}
	caller := &users.User{ID: primitive.NewObjectID()}

	w := jsonReq(commentRouter(repo, &fakeMovies{}, caller), http.MethodPatch,
		"/comments/"+comment.ID.Hex(), `{"text": "hijacked"}`)

	require.Equal(t, http.StatusForbidden, w.Code)
	require.Zero(t, repo.updates)
}

func TestUpdateByOwnerAcceptsNestedPayload(t *testing.T) {
	owner := primitive.NewObjectID()
	comment := &Comment{ID: primitive.NewObjectID(), Owner: owner, Text: "original"}
	repo := &fakeStore{comment: comment}
	caller := &users.User{ID: owner}

	w := jsonReq(commentRouter(repo, &fakeMovies{}, caller), http.MethodPatch,
		"/comments/"+comment.ID.Hex(), `{"comment": {"text": "edited"}}`)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 1, repo.updates)
}
