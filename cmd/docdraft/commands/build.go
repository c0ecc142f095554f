package commands

import (
	"context"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/docdraft/internal/config"
	ferrors "git.home.luguber.info/inful/docdraft/internal/foundation/errors"
	"git.home.luguber.info/inful/docdraft/internal/logfields"
	"git.home.luguber.info/inful/docdraft/internal/pipeline"
	"git.home.luguber.info/inful/docdraft/internal/render"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	DraftFlags `embed:""`
	Output     string `short:"o" help:"Output directory (overrides output.directory)"`
	Format     string `name:"format" help:"Output format: html, hugo or none (overrides output.format)"`
}

func (b *BuildCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(root, &b.DraftFlags)
	if err != nil {
		return err
	}
	if err := b.applyOutput(cfg); err != nil {
		return err
	}
	configureLogging(g, root, cfg)

	s, err := newSession(g, root, cfg)
	if err != nil {
		return err
	}

	renderer := rendererFor(cfg.Output)
	var extra []pipeline.Stage
	if renderer != nil {
		extra = append(extra, renderer)
	}
	if err := s.run(context.Background(), extra...); err != nil {
		return err
	}

	drafted := 0
	if s.bc.Decision != nil {
		drafted = s.bc.Decision.Drafted
	}
	g.Logger.Info("Build complete",
		logfields.Path(cfg.Output.Directory), logfields.Count(drafted), logfields.Total(len(s.bc.Pages)))
	return nil
}

func (b *BuildCmd) applyOutput(cfg *config.Config) error {
	if v := strings.TrimSpace(b.Output); v != "" {
		cfg.Output.Directory = v
	}
	if v := strings.TrimSpace(b.Format); v != "" {
		format, err := config.ParseOutputFormat(v)
		if err != nil {
			return ferrors.WrapError(err, ferrors.CategoryValidation, "invalid --format").Build()
		}
		cfg.Output.Format = format
	}
	if cfg.Output.Format == config.OutputFormatNone {
		return nil
	}
	return render.ValidateOutputDir(cfg.Output.Directory, cfg.Root, cfg.DocsDir)
}

// rendererFor returns the render stage for the configured format, or nil.
func rendererFor(out config.OutputConfig) pipeline.Stage {
	switch out.Format {
	case config.OutputFormatHugo:
		return &render.HugoStage{ContentDir: filepath.Join(out.Directory, "content")}
	case config.OutputFormatNone:
		return nil
	default:
		return render.NewHTMLStage(out.Directory)
	}
}
