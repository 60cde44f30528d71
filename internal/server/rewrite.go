package server

import (
	"net/http"

	"github.com/dev-ashishk/github-profile-builder-sub001/internal/seo"
)

// Target identifies what a public request path should be served by
type Target int

const (
	// TargetOther passes through to the router untouched
	TargetOther Target = iota
	TargetRobots
	TargetSitemap
)

const (
	robotsWellKnown  = "/robots.txt"
	sitemapWellKnown = "/sitemap.xml"

	robotsPath  = "/api/robots.txt"
	sitemapPath = seo.SitemapPath
)

// Classify matches path exactly against the well-known crawler paths.
func Classify(path string) Target {
	switch path {
	case robotsWellKnown:
		return TargetRobots
	case sitemapWellKnown:
		return TargetSitemap
	default:
		return TargetOther
	}
}

// Rewrite returns the internal handler path for a well-known path, or path itself.
func Rewrite(path string) string {
	switch Classify(path) {
	case TargetRobots:
		return robotsPath
	case TargetSitemap:
		return sitemapPath
	default:
		return path
	}
}

// rewriteWellKnown serves /robots.txt and /sitemap.xml from their api
// handlers without redirecting the client.
func rewriteWellKnown(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if target := Rewrite(r.URL.Path); target != r.URL.Path {
			r2 := r.Clone(r.Context())
			r2.URL.Path = target
			r2.URL.RawPath = ""
			r = r2
		}
		next.ServeHTTP(w, r)
	})
}
