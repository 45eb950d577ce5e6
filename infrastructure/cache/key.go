package cache

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

const keyPrefix = "pos"

// Key builds a deterministic cache fingerprint from an endpoint and its
// relevant parameters. Two requests with the same endpoint and parameter
// set collide to the same key regardless of parameter order.
//
// Format: pos:endpoint:k1=v1:k2=v2
func Key(endpoint string, params map[string]string) string {
	parts := []string{keyPrefix}

	endpoint = strings.Trim(endpoint, "/")
	if endpoint != "" {
		parts = append(parts, endpoint)
	}

	if len(params) > 0 {
		keys := make([]string, 0, len(params))
		for k := range params {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s=%s", k, params[k]))
		}
	}

	return strings.Join(parts, ":")
}

// KeyFromQuery builds a fingerprint from an endpoint and raw query values.
// Multi-valued parameters are joined with commas after sorting.
func KeyFromQuery(endpoint string, query url.Values) string {
	if len(query) == 0 {
		return Key(endpoint, nil)
	}
	params := make(map[string]string, len(query))
	for k, vs := range query {
		sorted := make([]string, len(vs))
		copy(sorted, vs)
		sort.Strings(sorted)
		params[k] = strings.Join(sorted, ",")
	}
	return Key(endpoint, params)
}

// TagKey namespaces a tag for backends that store tag sets alongside
// entries (the Redis store).
func TagKey(tag string) string {
	return keyPrefix + ":tag:" + tag
}
