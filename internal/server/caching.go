package server

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

// cacheHeaderAdder wraps an http.Handler and adds cache-control headers
// allowing both browsers and shared caches to keep the response.
type cacheHeaderAdder struct {
	next         http.Handler
	maxAge       time.Duration
	sharedMaxAge time.Duration
}

func newCacheHeaderAdder(maxAge, sharedMaxAge time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return &cacheHeaderAdder{
			next:         next,
			maxAge:       maxAge,
			sharedMaxAge: sharedMaxAge,
		}
	}
}

// cacheControl builds e.g. "public, max-age=3600, s-maxage=3600".
// A zero duration leaves its directive out.
func cacheControl(maxAge, sharedMaxAge time.Duration) string {
	directives := []string{"public"}
	if s := int(maxAge.Seconds()); s > 0 {
		directives = append(directives, fmt.Sprintf("max-age=%d", s))
	}
	if s := int(sharedMaxAge.Seconds()); s > 0 {
		directives = append(directives, fmt.Sprintf("s-maxage=%d", s))
	}
	return strings.Join(directives, ", ")
}

func (ch *cacheHeaderAdder) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", cacheControl(ch.maxAge, ch.sharedMaxAge))
	ch.next.ServeHTTP(w, r)
}
