package helpers

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-git/go-git/v5"
)

// GitRepo is a throwaway repository driven through the git CLI.
type GitRepo struct {
	t   *testing.T
	Dir string
}

// SetupTestGitRepo initializes a temporary git repository whose unborn
// branch is named trunk.
func SetupTestGitRepo(t *testing.T, trunk string) *GitRepo {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}

	r := &GitRepo{t: t, Dir: t.TempDir()}
	r.Git("init", "-q")
	r.Git("symbolic-ref", "HEAD", "refs/heads/"+trunk)
	r.Git("config", "user.email", "test@example.com")
	r.Git("config", "user.name", "Test")
	r.Git("config", "commit.gpgsign", "false")
	return r
}

// Git runs a git command inside the repository and returns trimmed stdout.
func (r *GitRepo) Git(args ...string) string {
	r.t.Helper()
	return RunGit(r.t, r.Dir, args...)
}

// RunGit runs git with -C dir and fails the test on error.
func RunGit(t *testing.T, dir string, args ...string) string {
	t.Helper()
	// #nosec G204 -- test helper executing git with controlled args
	cmd := exec.CommandContext(context.Background(), "git", append([]string{"-C", dir}, args...)...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %v failed: %v\n%s", args, err, string(out))
	}
	return strings.TrimSpace(string(out))
}

// WriteFile writes content to a repository-relative path, creating parents.
func (r *GitRepo) WriteFile(rel, content string) {
	r.t.Helper()
	p := filepath.Join(r.Dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(p), 0o750); err != nil {
		r.t.Fatalf("mkdir %s: %v", rel, err)
	}
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		r.t.Fatalf("write %s: %v", rel, err)
	}
}

// CommitFiles writes the given files and commits them in one commit.
func (r *GitRepo) CommitFiles(msg string, files map[string]string) {
	r.t.Helper()
	for rel, content := range files {
		r.WriteFile(rel, content)
	}
	r.Git("add", "-A")
	r.Git("commit", "-q", "-m", msg)
}

// Checkout switches branches, creating the branch when create is true.
func (r *GitRepo) Checkout(branch string, create bool) {
	r.t.Helper()
	if create {
		r.Git("checkout", "-q", "-b", branch)
		return
	}
	r.Git("checkout", "-q", branch)
}

// Open returns the repository through go-git.
func (r *GitRepo) Open() *git.Repository {
	r.t.Helper()
	repo, err := git.PlainOpen(r.Dir)
	if err != nil {
		r.t.Fatalf("failed to open git repo: %v", err)
	}
	return repo
}
