// Package repository canonicalizes repository identifiers into owner/name slugs.
package repository

import "strings"

var (
	schemePrefixes = []string{"https://", "http://"}
	hostPrefixes   = []string{"github.com/", "gitlab.com/"}
)

// NormalizeSlug reduces a repository identifier such as
// "https://github.com/owner/name.git/" to "owner/name".
//
// Each step strips at most one decoration and is skipped when it does not
// apply. Trailing slashes are trimmed on both sides of the ".git" step so that
// "owner/name.git/" also reduces to "owner/name". Nested GitLab
// groups ("group/sub/project") keep their interior segments. Unknown hosts are
// left in place.
func NormalizeSlug(repoURL string) string {
	s := normalizeSCP(strings.TrimSpace(repoURL))
	s = trimFirstPrefix(s, schemePrefixes)
	s = trimFirstPrefix(s, hostPrefixes)
	s = strings.TrimSuffix(strings.TrimRight(s, "/"), ".git")
	return strings.TrimRight(s, "/")
}

// normalizeSCP rewrites "git@host:owner/name" into "host/owner/name".
func normalizeSCP(s string) string {
	rest, ok := strings.CutPrefix(s, "git@")
	if !ok {
		return s
	}
	host, path, ok := strings.Cut(rest, ":")
	if !ok || host == "" {
		return s
	}
	return host + "/" + path
}

func trimFirstPrefix(s string, prefixes []string) string {
	for _, p := range prefixes {
		if after, ok := strings.CutPrefix(s, p); ok {
			return after
		}
	}
	return s
}
