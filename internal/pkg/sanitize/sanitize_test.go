package sanitize

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRemoveBlanksNested(t *testing.T) {
	in := map[string]interface{}{
		"movie": map[string]interface{}{
			"title": "",
			"text":  "ok",
		},
	}

	out := RemoveBlanks(in)
	require.Equal(t, map[string]interface{}{
		"movie": map[string]interface{}{
			"text": "ok",
		},
	}, out)
}

func TestRemoveBlanksAllBlank(t *testing.T) {
	in := map[string]interface{}{
		"wishlist": map[string]interface{}{
			"title": "",
			"note":  "",
		},
	}

	out := RemoveBlanks(in)
	require.Equal(t, map[string]interface{}{
		"wishlist": map[string]interface{}{},
	}, out)
}

func TestRemoveBlanksKeepsNonStrings(t *testing.T) {
	in := map[string]interface{}{
		"rating":   float64(0),
		"urls":     []interface{}{"a", ""},
		"title":    "",
		"tag":      "drama",
		"archived": false,
	}

	out := RemoveBlanks(in)
	require.NotContains(t, out, "title")
	require.Equal(t, float64(0), out["rating"])
	require.Equal(t, []interface{}{"a", ""}, out["urls"])
	require.Equal(t, "drama", out["tag"])
	require.Equal(t, false, out["archived"])
}

func TestRemoveBlanksDoesNotMutateInput(t *testing.T) {
	inner := map[string]interface{}{"title": ""}
	in := map[string]interface{}{"movie": inner}

	RemoveBlanks(in)
	require.Contains(t, inner, "title")
}

func TestUnwrapFlatAndNested(t *testing.T) {
	flat := map[string]interface{}{"title": "Dune"}
	require.Equal(t, flat, Unwrap(flat, "movie"))

	nested := map[string]interface{}{"movie": map[string]interface{}{"title": "Dune"}}
	require.Equal(t, map[string]interface{}{"title": "Dune"}, Unwrap(nested, "movie"))

	other := map[string]interface{}{"movie": "not a map"}
	require.Equal(t, other, Unwrap(other, "movie"))
}
