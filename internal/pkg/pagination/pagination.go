package pagination

import "strconv"

const (
	defaultLimit = 50
	maxLimit     = 100
)

// Request carries the page and limit a client asked for, clamped to sane
// bounds.
type Request struct {
	Page  int `json:"page" form:"page"`
	Limit int `json:"limit" form:"limit"`
}

// FromRequest parses pagination query parameters. Missing or malformed
// values fall back to the defaults.
func FromRequest(pageStr, limitStr string) *Request {
	page, _ := strconv.Atoi(pageStr)
	limit, _ := strconv.Atoi(limitStr)

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return &Request{
		Page:  page,
		Limit: limit,
	}
}
