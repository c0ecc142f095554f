package git

import (
	"context"
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// GoGit implements VCS in-process with go-git.
type GoGit struct{}

// NewGoGit returns the go-git backend.
func NewGoGit() *GoGit { return &GoGit{} }

func (g *GoGit) CurrentBranch(_ context.Context, root string) (string, error) {
	repo, _, err := g.open(root)
	if err != nil {
		return "", err
	}
	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("read HEAD: %w", err)
	}
	if !head.Name().IsBranch() {
		return "", ErrDetachedHead
	}
	return head.Name().Short(), nil
}

func (g *GoGit) ChangedFiles(ctx context.Context, root, base, pathspec string) ([]string, error) {
	repo, rel, err := g.open(root)
	if err != nil {
		return nil, err
	}

	baseCommit, err := g.resolveBase(repo, base)
	if err != nil {
		return nil, err
	}
	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("read HEAD: %w", err)
	}
	headCommit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return nil, fmt.Errorf("load HEAD commit: %w", err)
	}

	bases, err := baseCommit.MergeBase(headCommit)
	if err != nil {
		return nil, fmt.Errorf("merge base: %w", err)
	}
	if len(bases) == 0 {
		return nil, fmt.Errorf("%w between %s and HEAD", ErrNoMergeBase, base)
	}

	fromTree, err := bases[0].Tree()
	if err != nil {
		return nil, fmt.Errorf("load merge base tree: %w", err)
	}
	toTree, err := headCommit.Tree()
	if err != nil {
		return nil, fmt.Errorf("load HEAD tree: %w", err)
	}
	changes, err := fromTree.DiffContext(ctx, toTree)
	if err != nil {
		return nil, fmt.Errorf("diff trees: %w", err)
	}

	// Tree paths are relative to the work tree; scope them to root + pathspec
	// and report them relative to root, matching `git diff --relative`.
	rootPrefix := ""
	if rel != "." {
		rootPrefix = rel + "/"
	}
	scope := rootPrefix
	if pathspec != "" && pathspec != "." {
		scope = rootPrefix + strings.TrimSuffix(pathspec, "/") + "/"
	}

	var files []string
	for _, ch := range changes {
		name := ch.To.Name
		if name == "" {
			name = ch.From.Name
		}
		if !strings.HasPrefix(name, scope) {
			continue
		}
		files = append(files, strings.TrimPrefix(name, rootPrefix))
	}
	return files, nil
}

// open locates the repository containing root and returns root's
// slash-separated path relative to the work tree.
func (g *GoGit) open(root string) (*git.Repository, string, error) {
	repo, err := git.PlainOpenWithOptions(root, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, "", fmt.Errorf("%w: %s", ErrNotRepository, root)
		}
		return nil, "", fmt.Errorf("open repository: %w", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s: %w", ErrNotRepository, root, err)
	}

	rel, err := relativeTo(wt.Filesystem.Root(), root)
	if err != nil {
		return nil, "", err
	}
	return repo, rel, nil
}

func (g *GoGit) resolveBase(repo *git.Repository, base string) (*object.Commit, error) {
	for _, candidate := range baseCandidates(base) {
		hash, err := repo.ResolveRevision(plumbing.Revision(candidate))
		if err != nil {
			continue
		}
		commit, err := repo.CommitObject(*hash)
		if err != nil {
			continue
		}
		return commit, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownRevision, base)
}

func relativeTo(top, root string) (string, error) {
	absTop, err := filepath.Abs(top)
	if err != nil {
		return "", err
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(absTop); err == nil {
		absTop = resolved
	}
	if resolved, err := filepath.EvalSymlinks(absRoot); err == nil {
		absRoot = resolved
	}
	rel, err := filepath.Rel(absTop, absRoot)
	if err != nil {
		return "", fmt.Errorf("root %s outside work tree %s: %w", root, top, err)
	}
	return path.Clean(filepath.ToSlash(rel)), nil
}
