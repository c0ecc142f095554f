package commands

import (
	"context"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/docdraft/internal/ci"
	"git.home.luguber.info/inful/docdraft/internal/config"
	"git.home.luguber.info/inful/docdraft/internal/draft"
	ferrors "git.home.luguber.info/inful/docdraft/internal/foundation/errors"
	"git.home.luguber.info/inful/docdraft/internal/git"
	"git.home.luguber.info/inful/docdraft/internal/logfields"
	"git.home.luguber.info/inful/docdraft/internal/metrics"
	"git.home.luguber.info/inful/docdraft/internal/pipeline"
)

// session bundles what a plan or build run needs.
type session struct {
	cfg      *config.Config
	bc       *pipeline.BuildContext
	stages   []pipeline.Stage
	registry *prom.Registry
}

// loadConfig reads the config file and applies flag overrides. A missing
// file is only an error when --config was given explicitly.
func loadConfig(root *CLI, flags *DraftFlags) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if root.Config == config.DefaultConfigFile {
		cfg, err = config.LoadOptional(root.Config)
	} else {
		cfg, err = config.Load(root.Config)
	}
	if err != nil {
		return nil, err
	}
	flags.Apply(cfg)
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func ciEnv(root *CLI) (ci.Env, error) {
	if root.EnvFile == "" {
		return ci.OSEnv, nil
	}
	env, err := ci.FileEnv(root.EnvFile, ci.OSEnv)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "read CI environment file").
			WithContext("path", root.EnvFile).
			Build()
	}
	return env, nil
}

// newSession wires discovery and draft selection for cfg.
func newSession(g *Global, root *CLI, cfg *config.Config) (*session, error) {
	env, err := ciEnv(root)
	if err != nil {
		return nil, err
	}
	vcs, err := git.New(string(cfg.Git.Backend), cfg.Git.Binary)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "configure git backend").Build()
	}

	bc := pipeline.NewBuildContext(cfg.Root, cfg.DocsDir, g.Logger)
	bc.RepoHint = cfg.Repo
	s := &session{cfg: cfg, bc: bc}
	if cfg.Metrics.Textfile != "" {
		s.registry = prom.NewRegistry()
		bc.Recorder = metrics.NewPrometheusRecorder(s.registry)
	}

	s.stages = []pipeline.Stage{
		&pipeline.DiscoverStage{Extensions: cfg.Extensions},
		draft.NewStage(cfg.Draft, vcs, env, cfg.Extensions),
	}
	bc.Logger.Debug("Session ready",
		logfields.Backend(string(cfg.Git.Backend)), logfields.Path(cfg.Root), logfields.BuildID(bc.BuildID))
	return s, nil
}

// run executes the stages plus extra, then exports metrics when configured.
func (s *session) run(ctx context.Context, extra ...pipeline.Stage) error {
	stages := append(append([]pipeline.Stage{}, s.stages...), extra...)
	runErr := pipeline.NewRunner(stages...).Run(ctx, s.bc)

	if s.registry != nil {
		if err := metrics.WriteTextfile(s.cfg.Metrics.Textfile, s.registry); err != nil {
			s.bc.Logger.Warn("Failed to export metrics", logfields.Path(s.cfg.Metrics.Textfile), logfields.Error(err))
		}
	}
	return runErr
}
