package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromRequestDefaults(t *testing.T) {
	req := FromRequest("", "")
	assert.Equal(t, 1, req.Page)
	assert.Equal(t, 50, req.Limit)
}

func TestFromRequestClampsLimit(t *testing.T) {
	req := FromRequest("2", "500")
	assert.Equal(t, 2, req.Page)
	assert.Equal(t, 100, req.Limit)
}

func TestFromRequestMalformedValues(t *testing.T) {
	req := FromRequest("abc", "-3")
	assert.Equal(t, 1, req.Page)
	assert.Equal(t, 50, req.Limit)
}
