// Package sanitize strips blank fields from partial-update payloads so a PATCH
// carrying an empty string cannot blank out a required field on merge.
package sanitize

// RemoveBlanks returns a copy of payload with every empty-string value
// removed. Nested objects are walked recursively, e.g.
// {movie: {title: "", tag: "drama"}} -> {movie: {tag: "drama"}}.
// Non-string values pass through untouched.
// Unwrap tolerates the legacy nested payload shape, e.g.
// {movie: {...}} for key "movie". Flat payloads pass through unchanged.
func Unwrap(payload map[string]interface{}, key string) map[string]interface{} {
	if nested, ok := payload[key].(map[string]interface{}); ok {
		return nested
	}
	return payload
}

func RemoveBlanks(payload map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(payload))
	for key, value := range payload {
		switch v := value.(type) {
		case string:
			if v == "" {
				continue
			}
			out[key] = v
		case map[string]interface{}:
			out[key] = RemoveBlanks(v)
		default:
			out[key] = value
		}
	}
	return out
}
