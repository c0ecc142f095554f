package git

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotRepository is returned when root is not inside a git work tree.
	ErrNotRepository = errors.New("not a git repository")
	// ErrDetachedHead is returned when HEAD does not point at a branch.
	ErrDetachedHead = errors.New("HEAD is detached")
	// ErrUnknownRevision is returned when the trunk branch cannot be resolved.
	ErrUnknownRevision = errors.New("unknown revision")
	// ErrNoMergeBase is returned when trunk and HEAD share no history.
	ErrNoMergeBase = errors.New("no merge base")
)

// VCS is the version-control collaborator used by draft selection.
type VCS interface {
	// CurrentBranch returns the short name of the checked-out branch.
	CurrentBranch(ctx context.Context, root string) (string, error)
	// ChangedFiles lists files that differ between the merge base of base and
	// HEAD, and HEAD (three-dot semantics), limited to pathspec. Paths are
	// slash-separated and relative to root.
	ChangedFiles(ctx context.Context, root, base, pathspec string) ([]string, error)
}

// Backend names accepted by New.
const (
	BackendCLI   = "cli"
	BackendGoGit = "go-git"
)

// New constructs the backend with the given name. binary only applies to the CLI backend.
func New(backend, binary string) (VCS, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendCLI:
		return NewCLI(binary), nil
	case BackendGoGit:
		return NewGoGit(), nil
	default:
		return nil, fmt.Errorf("unsupported git backend %q", backend)
	}
}

// baseCandidates lists the refs tried for the trunk branch. Shallow CI
// checkouts frequently have only the remote-tracking ref.
func baseCandidates(base string) []string {
	if strings.HasPrefix(base, "origin/") {
		return []string{base}
	}
	return []string{base, "origin/" + base}
}
