// Package git answers the two version-control questions draft selection
// needs: which branch is checked out, and which files changed since the
// branch forked from trunk.
//
// Two interchangeable backends implement VCS:
//   - CLI shells out to the git binary (the default, and what CI images have)
//   - GoGit uses go-git in-process, for environments without a git binary
//
// Both run against an explicit root directory and never depend on the
// process working directory.
package git
