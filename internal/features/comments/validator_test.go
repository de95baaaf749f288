package comments

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/amestri/cineshelf/internal/pkg/sanitize"
)

func TestValidateCreateCommentTrims(t *testing.T) {
	req := &CreateCommentRequest{Text: "  great movie  ", MovieID: " 507f1f77bcf86cd799439011 "}
	require.NoError(t, ValidateCreateComment(req))
	require.Equal(t, "great movie", req.Text)
	require.Equal(t, "507f1f77bcf86cd799439011", req.MovieID)
}

func TestValidateCreateCommentRejectsBlankText(t *testing.T) {
	req := &CreateCommentRequest{Text: "   ", MovieID: "507f1f77bcf86cd799439011"}
	require.Error(t, ValidateCreateComment(req))
}

func TestValidateCreateCommentRejectsOversizedText(t *testing.T) {
	req := &CreateCommentRequest{
		Text:    strings.Repeat("a", maxCommentLength+1),
		MovieID: "507f1f77bcf86cd799439011",
	}
	require.Error(t, ValidateCreateComment(req))
}

func TestCommentUpdateOnlyText(t *testing.T) {
	update := commentUpdate(map[string]interface{}{
		"text":    "edited",
		"owner":   "507f1f77bcf86cd799439011",
		"movieId": "507f1f77bcf86cd799439012",
		"likes":   []interface{}{"x"},
	})

	require.Equal(t, "edited", update["text"])
	require.NotContains(t, update, "owner")
	require.NotContains(t, update, "movieId")
	require.NotContains(t, update, "likes")
}

func TestCommentUpdateBlankTextIsNoOp(t *testing.T) {
	update := commentUpdate(sanitize.RemoveBlanks(map[string]interface{}{"text": ""}))
	require.Empty(t, update)
}
