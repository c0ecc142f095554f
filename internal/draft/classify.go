package draft

import (
	"slices"

	"git.home.luguber.info/inful/docdraft/internal/util/sets"
)

// ShouldBuildFull reports whether pageID is allowlisted or modified. Both
// checks are exact string comparisons; there is no glob or prefix matching.
func ShouldBuildFull(pageID string, modified sets.Set[string], alwaysInclude []string) bool {
	return slices.Contains(alwaysInclude, pageID) || modified.Has(pageID)
}
