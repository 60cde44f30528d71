package server

import (
	"net/http"

	"github.com/dev-ashishk/github-profile-builder-sub001/internal/seo"
)

// handleSitemap stamps every entry with the same request time as lastmod.
func (s *Server) handleSitemap(w http.ResponseWriter, r *http.Request) {
	content, err := seo.Sitemap(s.config.App.URL, s.routes, s.clock.Now())
	if err != nil {
		s.httpError(w, "rendering sitemap.xml", err)
		return
	}
	s.write(w, r, "application/xml", content)
}
