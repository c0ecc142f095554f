package pipeline

import (
	"log/slog"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/docdraft/internal/logfields"
	"git.home.luguber.info/inful/docdraft/internal/metrics"
)

// Draft selection outcomes recorded in Decision.Outcome.
const (
	OutcomeDrafting       = "drafting"
	OutcomeDisabled       = "disabled"
	OutcomeRepoMismatch   = "repo_mismatch"
	OutcomeNotPullRequest = "not_pull_request"
)

// Decision records what draft selection concluded for a build.
type Decision struct {
	Outcome string `json:"outcome"`
	// DevBranch and Repository are the effective values; Repository is empty
	// when no repository could be resolved.
	DevBranch  string `json:"devbranch,omitempty"`
	Repository string `json:"repository,omitempty"`
	// Provider names the CI system that reported a pull request, if any.
	Provider string   `json:"provider,omitempty"`
	Modified []string `json:"modified,omitempty"`
	Drafted  int      `json:"drafted"`
	Total    int      `json:"total"`
}

// Drafting reports whether pages were classified at all.
func (d *Decision) Drafting() bool {
	return d != nil && d.Outcome == OutcomeDrafting
}

// BuildContext is the state shared by the stages of one build.
type BuildContext struct {
	BuildID string
	// Root is the build root; VCS queries run with it as working directory.
	Root string
	// DocsDir is the documentation subtree relative to Root.
	DocsDir string
	// RepoHint is the repository identifier known to the host, if any.
	RepoHint string
	Pages    []*Page
	Decision *Decision
	Logger   *slog.Logger
	Recorder metrics.Recorder
}

// NewBuildContext returns a context with a fresh build ID, a logger tagged
// with it, and a no-op recorder.
func NewBuildContext(root, docsDir string, logger *slog.Logger) *BuildContext {
	if logger == nil {
		logger = slog.Default()
	}
	id := uuid.NewString()
	return &BuildContext{
		BuildID:  id,
		Root:     root,
		DocsDir:  docsDir,
		Logger:   logger.With(logfields.BuildID(id)),
		Recorder: metrics.NoopRecorder{},
	}
}

// Page returns the page with the given ID, or nil.
func (bc *BuildContext) Page(id string) *Page {
	for _, p := range bc.Pages {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (bc *BuildContext) logger() *slog.Logger {
	if bc.Logger == nil {
		return slog.Default()
	}
	return bc.Logger
}

func (bc *BuildContext) recorder() metrics.Recorder {
	if bc.Recorder == nil {
		return metrics.NoopRecorder{}
	}
	return bc.Recorder
}
