package server

import (
	"net/http"

	"github.com/dev-ashishk/github-profile-builder-sub001/internal/seo"
)

func (s *Server) handleRobots(w http.ResponseWriter, r *http.Request) {
	content, err := seo.Robots(s.config.App.URL)
	if err != nil {
		s.httpError(w, "rendering robots.txt", err)
		return
	}
	s.write(w, r, "text/plain", content)
}
