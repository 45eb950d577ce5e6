package middleware

import (
	"bytes"
	"net/http"

	"go.uber.org/zap"

	"pos-backend/infrastructure/cache"
)

// ResponseCache serves GET responses from the cache store according to the
// route policy table. Each cached entry is tagged with its own route
// pattern, so the invalidation rules can purge whole routes at once.
type ResponseCache struct {
	store    cache.Store
	resolver *cache.Resolver
	logger   *zap.Logger
}

// NewResponseCache creates the caching middleware factory.
func NewResponseCache(store cache.Store, resolver *cache.Resolver, logger *zap.Logger) *ResponseCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResponseCache{store: store, resolver: resolver, logger: logger}
}

// Handle caches responses for one route. pattern is the canonical
// "METHOD /path" string the policy and invalidation tables are keyed by;
// resolving it here keeps the policy lookup an exact string match.
func (c *ResponseCache) Handle(pattern string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				next.ServeHTTP(w, r)
				return
			}

			ttl, cacheable := c.resolver.TTL(pattern, r)
			if !cacheable {
				next.ServeHTTP(w, r)
				return
			}

			key := cache.KeyFromQuery(r.URL.Path, r.URL.Query())
			if data, ok := c.store.Get(r.Context(), key); ok {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("X-Cache", "HIT")
				w.WriteHeader(http.StatusOK)
				w.Write(data)
				return
			}

			w.Header().Set("X-Cache", "MISS")
			rec := &captureWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			// Only successful JSON payloads are worth keeping.
			if rec.status == http.StatusOK && rec.body.Len() > 0 {
				c.store.Set(r.Context(), key, rec.body.Bytes(), ttl, pattern)
			}
		})
	}
}

// captureWriter tees the response body so a successful reply can be stored
// after it is sent.
type captureWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
	body        bytes.Buffer
}

func (cw *captureWriter) WriteHeader(status int) {
	if cw.wroteHeader {
		return
	}
	cw.wroteHeader = true
	cw.status = status
	cw.ResponseWriter.WriteHeader(status)
}

func (cw *captureWriter) Write(p []byte) (int, error) {
	if !cw.wroteHeader {
		cw.WriteHeader(http.StatusOK)
	}
	if cw.status == http.StatusOK {
		cw.body.Write(p)
	}
	return cw.ResponseWriter.Write(p)
}
