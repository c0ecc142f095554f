package draft

import (
	"context"
	"log/slog"

	"git.home.luguber.info/inful/docdraft/internal/ci"
	"git.home.luguber.info/inful/docdraft/internal/git"
	"git.home.luguber.info/inful/docdraft/internal/logfields"
)

// Detector decides whether the current build is a pull-request build.
type Detector struct {
	VCS    git.VCS
	Env    ci.Env
	Root   string
	Logger *slog.Logger
}

// IsPullRequest reports whether the build is for a pull request. CI provider
// signals are trusted over branch state when useCIEnv is set; otherwise the
// checked-out branch is compared with devbranch. Failures yield false.
func (d *Detector) IsPullRequest(ctx context.Context, devbranch string, useCIEnv bool) bool {
	pr, _ := d.Detect(ctx, devbranch, useCIEnv)
	return pr
}

// Detect is IsPullRequest that also names the CI provider that reported the
// pull request, or ci.ProviderNone when the answer came from the branch.
func (d *Detector) Detect(ctx context.Context, devbranch string, useCIEnv bool) (bool, ci.Provider) {
	log := loggerOr(d.Logger)

	if useCIEnv && d.Env != nil {
		if provider, ok := ci.DetectPullRequest(d.Env); ok {
			log.Debug("CI reports a pull request", logfields.Provider(string(provider)))
			return true, provider
		}
	}

	if d.VCS == nil {
		log.Warn("No version control configured; assuming trunk build")
		return false, ci.ProviderNone
	}
	branch, err := d.VCS.CurrentBranch(ctx, d.Root)
	if err != nil {
		log.Warn("Unable to determine current branch; assuming trunk build",
			logfields.Path(d.Root), logfields.Error(err))
		return false, ci.ProviderNone
	}

	pr := branch != devbranch
	log.Debug("Compared current branch with trunk",
		slog.String("branch", branch), logfields.DevBranch(devbranch), slog.Bool("pull_request", pr))
	return pr, ci.ProviderNone
}

func loggerOr(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.Default()
	}
	return l
}
