package urlconvert

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// NormalizeBase checks that raw is usable as a site URL prefix and
// returns it without trailing slashes. An empty raw value is returned as is.
func NormalizeBase(raw string) (string, error) {
	if raw == "" {
		return "", nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("scheme %q is not http or https", u.Scheme)
	}
	if u.Host == "" {
		return "", errors.New("no host")
	}
	if u.RawQuery != "" || u.Fragment != "" || strings.ContainsAny(raw, "?#") {
		return "", errors.New("query and fragment are not allowed")
	}
	if u.User != nil {
		return "", errors.New("user info is not allowed")
	}

	return strings.TrimRight(raw, "/"), nil
}

// Absolute prefixes a site relative path with base.
// With an empty base the path comes back unchanged.
func Absolute(base, path string) string {
	return base + path
}
