package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// CLI implements VCS with the git command-line tool.
type CLI struct {
	binary string
}

// NewCLI returns a CLI backend using binary, or "git" from PATH when empty.
func NewCLI(binary string) *CLI {
	if strings.TrimSpace(binary) == "" {
		binary = "git"
	}
	return &CLI{binary: binary}
}

func (c *CLI) CurrentBranch(ctx context.Context, root string) (string, error) {
	out, err := c.run(ctx, root, "branch", "--show-current")
	if err != nil {
		return "", err
	}
	branch := string(bytes.TrimSpace(out))
	if branch == "" {
		return "", ErrDetachedHead
	}
	return branch, nil
}

func (c *CLI) ChangedFiles(ctx context.Context, root, base, pathspec string) ([]string, error) {
	ref, err := c.resolveBase(ctx, root, base)
	if err != nil {
		return nil, err
	}

	// --relative keeps output relative to root even when root is a
	// subdirectory of the work tree.
	args := []string{"diff", "--name-only", "-z", "--relative", ref + "...HEAD", "--"}
	if pathspec != "" {
		args = append(args, pathspec)
	}
	out, err := c.run(ctx, root, args...)
	if err != nil {
		return nil, err
	}
	return splitNUL(out), nil
}

func (c *CLI) resolveBase(ctx context.Context, root, base string) (string, error) {
	for _, candidate := range baseCandidates(base) {
		_, err := c.run(ctx, root, "rev-parse", "--verify", "-q", candidate+"^{commit}")
		if err == nil {
			return candidate, nil
		}
		if errors.Is(err, ErrNotRepository) {
			return "", err
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownRevision, base)
}

func (c *CLI) run(ctx context.Context, root string, args ...string) ([]byte, error) {
	// #nosec G204 -- invoking git with configured binary and controlled args
	cmd := exec.CommandContext(ctx, c.binary, args...)
	cmd.Dir = root
	out, err := cmd.Output()
	if err == nil {
		return out, nil
	}

	var ee *exec.ExitError
	if errors.As(err, &ee) {
		stderr := strings.TrimSpace(string(ee.Stderr))
		if strings.Contains(stderr, "not a git repository") {
			return nil, fmt.Errorf("%w: %s", ErrNotRepository, root)
		}
		return nil, fmt.Errorf("git %s failed: %w: %s", args[0], err, stderr)
	}
	return nil, fmt.Errorf("git %s failed: %w", args[0], err)
}

// splitNUL parses -z output, dropping empty tokens.
func splitNUL(out []byte) []string {
	if len(out) == 0 {
		return nil
	}
	tokens := bytes.Split(out, []byte{0})
	files := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if len(tok) == 0 {
			continue
		}
		files = append(files, string(tok))
	}
	return files
}
