package draft

import (
	"context"

	"git.home.luguber.info/inful/docdraft/internal/ci"
	"git.home.luguber.info/inful/docdraft/internal/config"
	"git.home.luguber.info/inful/docdraft/internal/git"
	"git.home.luguber.info/inful/docdraft/internal/logfields"
	"git.home.luguber.info/inful/docdraft/internal/metrics"
	"git.home.luguber.info/inful/docdraft/internal/pipeline"
	"git.home.luguber.info/inful/docdraft/internal/util/sets"
)

// StageName is the name the draft stage reports to the runner.
const StageName = "draft"

// Stage marks pages of a pull-request build as drafts. It must run after
// discovery and before any stage that renders pages.
type Stage struct {
	Config config.Draft
	VCS    git.VCS
	Env    ci.Env
	// Extensions lists recognized page extensions, lowercased with the dot.
	Extensions []string
}

// NewStage returns a draft stage. cfg is copied.
func NewStage(cfg config.Draft, vcs git.VCS, env ci.Env, extensions []string) *Stage {
	return &Stage{Config: cfg.Clone(), VCS: vcs, Env: env, Extensions: extensions}
}

func (s *Stage) Name() string { return StageName }

// Run records a Decision on bc and marks drafts. It never returns an error.
func (s *Stage) Run(ctx context.Context, bc *pipeline.BuildContext) error {
	log := loggerOr(bc.Logger).With(logfields.Stage(StageName))
	rec := bc.Recorder
	if rec == nil {
		rec = metrics.NoopRecorder{}
	}
	decision := &pipeline.Decision{Total: len(bc.Pages)}
	bc.Decision = decision
	defer func() { rec.IncDecision(decision.Outcome) }()

	if !s.Config.Enabled {
		decision.Outcome = pipeline.OutcomeDisabled
		log.Debug("Draft selection disabled")
		rec.IncPages(metrics.PageFull, len(bc.Pages))
		return nil
	}

	devbranch := EffectiveDevBranch(s.Config)
	repo, hasRepo := EffectiveRepo(s.Config, bc.RepoHint)
	decision.DevBranch = devbranch
	decision.Repository = repo
	log.Debug("Resolved draft configuration", logfields.DevBranch(devbranch), logfields.Repository(repo))

	env := s.Env
	if env == nil {
		env = ci.OSEnv
	}

	if hasRepo && s.Config.UseCIEnv && !ci.MatchesRepository(env, repo) {
		decision.Outcome = pipeline.OutcomeRepoMismatch
		log.Info("CI repository does not match; skipping draft selection",
			logfields.Repository(repo), logfields.Reason(pipeline.OutcomeRepoMismatch))
		rec.IncPages(metrics.PageFull, len(bc.Pages))
		return nil
	}

	detector := &Detector{VCS: s.VCS, Env: env, Root: bc.Root, Logger: log}
	pr, provider := detector.Detect(ctx, devbranch, s.Config.UseCIEnv)
	decision.Provider = string(provider)
	if !pr {
		decision.Outcome = pipeline.OutcomeNotPullRequest
		log.Info("Not a pull request; building all pages in full", logfields.DevBranch(devbranch))
		rec.IncPages(metrics.PageFull, len(bc.Pages))
		return nil
	}

	collector := &Collector{
		VCS:        s.VCS,
		Root:       bc.Root,
		DocsDir:    bc.DocsDir,
		Extensions: s.Extensions,
		Logger:     log,
	}
	modified := collector.ModifiedDocs(ctx, devbranch)
	decision.Outcome = pipeline.OutcomeDrafting
	decision.Modified = sets.Sorted(modified)
	rec.SetModifiedDocs(modified.Len())
	log.Info("Pull request build", logfields.Provider(string(provider)), logfields.Count(modified.Len()))

	for _, page := range bc.Pages {
		if ShouldBuildFull(page.ID, modified, s.Config.AlwaysInclude) {
			continue
		}
		page.MarkDraft()
		decision.Drafted++
		log.Debug("Marked page as draft", logfields.Page(page.ID))
	}

	rec.IncPages(metrics.PageDraft, decision.Drafted)
	rec.IncPages(metrics.PageFull, decision.Total-decision.Drafted)
	log.Info("Draft selection complete", logfields.Count(decision.Drafted), logfields.Total(decision.Total))
	return nil
}
