package routes

import (
	"fmt"
	"math"
	"strings"
)

// ChangeFrequency is the sitemap changefreq value of a route
type ChangeFrequency string

// Change frequencies accepted by sitemaps.org
const (
	Always  ChangeFrequency = "always"
	Hourly  ChangeFrequency = "hourly"
	Daily   ChangeFrequency = "daily"
	Weekly  ChangeFrequency = "weekly"
	Monthly ChangeFrequency = "monthly"
	Yearly  ChangeFrequency = "yearly"
	Never   ChangeFrequency = "never"
)

var frequencies = [...]ChangeFrequency{Always, Hourly, Daily, Weekly, Monthly, Yearly, Never}

// Valid reports whether f is one of the seven sitemap frequencies
func (f ChangeFrequency) Valid() bool {
	for _, v := range frequencies {
		if f == v {
			return true
		}
	}
	return false
}

// Entry struct
type Entry struct {
	Path            string
	ChangeFrequency ChangeFrequency
	Priority        float64
}

var registry = [...]Entry{
	{Path: "/", ChangeFrequency: Daily, Priority: 1.0},
	{Path: "/help", ChangeFrequency: Weekly, Priority: 0.8},
	{Path: "/help/faq", ChangeFrequency: Monthly, Priority: 0.7},
	{Path: "/help/getting-started", ChangeFrequency: Monthly, Priority: 0.7},
	{Path: "/help/contact", ChangeFrequency: Yearly, Priority: 0.5},
}

// All returns the crawlable site routes in sitemap order.
// The slice is a copy, callers may keep or modify it.
func All() []Entry {
	entries := make([]Entry, len(registry))
	copy(entries, registry[:])
	return entries
}

// Validate checks that every entry has a rooted path, a known change
// frequency and a priority within [0, 1], and that no path repeats.
func Validate(entries []Entry) error {
	seen := make(map[string]bool, len(entries))
	for i, e := range entries {
		if !strings.HasPrefix(e.Path, "/") {
			return fmt.Errorf("route %d: path %q must start with /", i, e.Path)
		}
		if seen[e.Path] {
			return fmt.Errorf("route %d: duplicate path %q", i, e.Path)
		}
		seen[e.Path] = true
		if !e.ChangeFrequency.Valid() {
			return fmt.Errorf("route %q: unknown change frequency %q", e.Path, e.ChangeFrequency)
		}
		if math.IsNaN(e.Priority) || e.Priority < 0 || e.Priority > 1 {
			return fmt.Errorf("route %q: priority %v out of range [0, 1]", e.Path, e.Priority)
		}
	}
	return nil
}
