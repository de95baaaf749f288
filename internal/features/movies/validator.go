package movies

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/amestri/cineshelf/internal/pkg/validator"
)

func ValidateCreateMovie(req *CreateMovieRequest) (time.Time, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)

	if req.Title == "" {
		return time.Time{}, errors.New("title is required")
	}
	if req.Description == "" {
		return time.Time{}, errors.New("description is required")
	}
	if req.Rating < 0 || req.Rating > 10 {
		return time.Time{}, errors.New("rating must be between 0 and 10")
	}
	if req.TrailerURL != "" && !validator.IsValidURL(req.TrailerURL) {
		return time.Time{}, errors.New("trailerUrl must be a valid URL")
	}

	publishDate, err := parsePublishDate(req.PublishDate)
	if err != nil {
		return time.Time{}, err
	}
	return publishDate, nil
}

// parsePublishDate accepts RFC 3339 or a plain calendar date.
func parsePublishDate(value string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("publishDate %q is not a valid date", value)
}
