package seo

import (
	"bytes"
	"text/template"

	"github.com/dev-ashishk/github-profile-builder-sub001/internal/urlconvert"
)

// SitemapPath is where the sitemap handler is mounted internally
const SitemapPath = "/api/sitemap.xml"

var robotsTemplate = template.Must(template.New("robots.txt").Parse(`User-agent: *
Allow: /

Sitemap: {{.Sitemap}}
`))

// Robots renders an allow-all robots file pointing crawlers at the sitemap under baseURL.
func Robots(baseURL string) ([]byte, error) {
	var b bytes.Buffer
	err := robotsTemplate.Execute(&b, struct{ Sitemap string }{
		Sitemap: urlconvert.Absolute(baseURL, SitemapPath),
	})
	if err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}
