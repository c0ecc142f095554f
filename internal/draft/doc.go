// Package draft decides which documentation pages of a pull-request build
// can be rendered as lightweight drafts.
//
// On a pull request only the pages changed relative to the trunk branch, plus
// an allowlist, are built in full; everything else is marked draft. Every
// failure while detecting the branch or the changed files resolves toward a
// full build: the stage never fails a build and never removes a page.
package draft
