package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"owner/name", "owner/name"},
		{"owner/name.git", "owner/name"},
		{"owner/name/", "owner/name"},
		{"github.com/owner/name", "owner/name"},
		{"gitlab.com/owner/name", "owner/name"},
		{"https://github.com/owner/name", "owner/name"},
		{"http://github.com/owner/name.git", "owner/name"},
		{"https://github.com/owner/name.git/", "owner/name"},
		{"https://gitlab.com/group/subgroup/project.git", "group/subgroup/project"},
		{"git@github.com:owner/name.git", "owner/name"},
		{"  https://github.com/owner/name  ", "owner/name"},
		{"https://example.org/owner/name.git", "example.org/owner/name"},
		{"", ""},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeSlug(tc.in))
		})
	}
}

// Every combination of [scheme://][host/]owner/name[.git][/] reduces to owner/name.
func TestNormalizeSlugPatternGrid(t *testing.T) {
	for _, scheme := range []string{"", "http://", "https://"} {
		for _, host := range []string{"", "github.com/", "gitlab.com/"} {
			if scheme != "" && host == "" {
				continue
			}
			for _, ext := range []string{"", ".git"} {
				for _, slash := range []string{"", "/"} {
					in := scheme + host + "owner/name" + ext + slash
					got := NormalizeSlug(in)
					assert.Equal(t, "owner/name", got, in)
					assert.Equal(t, got, NormalizeSlug(got), "idempotent for %s", in)
				}
			}
		}
	}
}
