// Package seo renders the crawler facing documents of the site:
// the sitemaps.org 0.9 urlset and the robots exclusion file.
package seo

import (
	"bytes"
	"encoding/xml"
	"strconv"
	"strings"
	"time"

	"github.com/dev-ashishk/github-profile-builder-sub001/internal/routes"
	"github.com/dev-ashishk/github-profile-builder-sub001/internal/urlconvert"
)

// SitemapNamespace is the xmlns of a sitemaps.org urlset
const SitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// LastModLayout is ISO-8601 in UTC with millisecond precision
const LastModLayout = "2006-01-02T15:04:05.000Z"

type urlset struct {
	XMLName xml.Name   `xml:"urlset"`
	Xmlns   string     `xml:"xmlns,attr"`
	URLs    []urlEntry `xml:"url"`
}

type urlEntry struct {
	Loc        string                 `xml:"loc"`
	LastMod    string                 `xml:"lastmod"`
	ChangeFreq routes.ChangeFrequency `xml:"changefreq"`
	Priority   string                 `xml:"priority"`
}

// Sitemap renders entries as a urlset document. Every loc is baseURL
// followed by the entry path and every lastmod is now.
func Sitemap(baseURL string, entries []routes.Entry, now time.Time) ([]byte, error) {
	lastMod := now.UTC().Format(LastModLayout)

	set := urlset{
		Xmlns: SitemapNamespace,
		URLs:  make([]urlEntry, 0, len(entries)),
	}
	for _, e := range entries {
		set.URLs = append(set.URLs, urlEntry{
			Loc:        urlconvert.Absolute(baseURL, e.Path),
			LastMod:    lastMod,
			ChangeFreq: e.ChangeFrequency,
			Priority:   formatPriority(e.Priority),
		})
	}

	var b bytes.Buffer
	b.WriteString(xml.Header)
	enc := xml.NewEncoder(&b)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return nil, err
	}
	b.WriteString("\n")

	return b.Bytes(), nil
}

// formatPriority keeps at least one decimal so 1 is written as 1.0
func formatPriority(p float64) string {
	s := strconv.FormatFloat(p, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
