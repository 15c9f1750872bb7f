package httpclient

import (
	"net/url"

	"github.com/serenize/snaker"
)

// snakeCaseQuery renames camelCase keys to snake_case. Keys that collide after
// renaming keep all their values.
func snakeCaseQuery(q url.Values) url.Values {
	out := make(url.Values, len(q))
	for k, vals := range q {
		key := snaker.CamelToSnake(k)
		out[key] = append(out[key], vals...)
	}
	return out
}
