package comments

import (
	"errors"
	"strings"
)

const maxCommentLength = 2000

// ValidateCreateComment checks the request and normalizes its fields in place.
func ValidateCreateComment(req *CreateCommentRequest) error {
	req.Text = strings.TrimSpace(req.Text)
	if req.Text == "" {
		return errors.New("text is required")
	}
	if len(req.Text) > maxCommentLength {
		return errors.New("text is too long")
	}

	req.MovieID = strings.TrimSpace(req.MovieID)
	if req.MovieID == "" {
		return errors.New("movieId is required")
	}

	return nil
}
