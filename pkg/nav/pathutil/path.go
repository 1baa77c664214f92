// Package pathutil provides pure string transforms for navigation paths.
//
// These are cosmetic routing helpers: malformed input passes through
// unchanged rather than producing an error.
package pathutil

import "strings"

// EnsureLeadingSlash prefixes p with "/" when it lacks one. Empty input
// becomes "/".
func EnsureLeadingSlash(p string) string {
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		return "/" + p
	}
	return p
}

// StripTrailingSlash removes a single trailing "/" from p. The bare root
// path is left alone.
func StripTrailingSlash(p string) string {
	if len(p) > 1 && strings.HasSuffix(p, "/") {
		return p[:len(p)-1]
	}
	return p
}

// HasBasename reports whether p starts with the basename prefix as a whole
// segment. The check is case-insensitive and accepts "/", "?", "#" or end of
// string after the prefix, so "/app2" does not match basename "/app".
func HasBasename(p, prefix string) bool {
	if prefix == "" {
		return false
	}
	lp, lpre := strings.ToLower(p), strings.ToLower(prefix)
	if !strings.HasPrefix(lp, lpre) {
		return false
	}
	rest := p[len(prefix):]
	if rest == "" {
		return true
	}
	return strings.ContainsAny(rest[:1], "/?#")
}

// StripBasename removes the basename prefix from p when present; otherwise p
// is returned unchanged.
func StripBasename(p, prefix string) string {
	if !HasBasename(p, prefix) {
		return p
	}
	return EnsureLeadingSlash(p[len(prefix):])
}

// AddBasename prepends the basename to p. An empty basename leaves p alone.
func AddBasename(p, prefix string) string {
	if prefix == "" {
		return p
	}
	return StripTrailingSlash(prefix) + EnsureLeadingSlash(p)
}
