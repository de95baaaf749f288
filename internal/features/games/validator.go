package games

import (
	"errors"
	"strings"

	"github.com/amestri/cineshelf/internal/pkg/validator"
)

// ValidateCreateGame checks the request and normalizes its fields in place.
func ValidateCreateGame(req *CreateGameRequest) error {
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return errors.New("title is required")
	}

	req.ImageURL = strings.TrimSpace(req.ImageURL)
	if req.ImageURL != "" && !validator.IsValidURL(req.ImageURL) {
		return errors.New("imageUrl must be a valid URL")
	}

	for i, u := range req.URLs {
		req.URLs[i] = strings.TrimSpace(u)
		if req.URLs[i] == "" {
			return errors.New("urls must not contain blank entries")
		}
	}

	return nil
}
