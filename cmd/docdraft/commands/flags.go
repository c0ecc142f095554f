package commands

import (
	"strings"

	"git.home.luguber.info/inful/docdraft/internal/config"
)

// DraftFlags override draft-related configuration from the command line.
type DraftFlags struct {
	Root          string   `name:"root" help:"Build root (overrides config root)"`
	DocsDir       string   `name:"docs-dir" help:"Documentation directory relative to the root"`
	DevBranch     string   `name:"devbranch" help:"Trunk branch pull requests are compared against"`
	Repo          string   `name:"repo" help:"Repository slug expected in CI (used verbatim)"`
	NoCIEnv       bool     `name:"no-ci-env" help:"Ignore CI provider environment variables"`
	Disable       bool     `name:"disable" help:"Disable draft selection; build every page in full"`
	AlwaysInclude []string `name:"always-include" help:"Page IDs always built in full (repeatable)"`
}

// Apply writes set flags onto cfg. Unset flags leave cfg untouched.
func (f *DraftFlags) Apply(cfg *config.Config) {
	if v := strings.TrimSpace(f.Root); v != "" {
		cfg.Root = v
	}
	if v := strings.TrimSpace(f.DocsDir); v != "" {
		cfg.DocsDir = v
	}
	if v := strings.TrimSpace(f.DevBranch); v != "" {
		cfg.Draft.DevBranch = v
	}
	if v := strings.TrimSpace(f.Repo); v != "" {
		cfg.Draft.Repo = v
	}
	if f.NoCIEnv {
		cfg.Draft.UseCIEnv = false
	}
	if f.Disable {
		cfg.Draft.Enabled = false
	}
	if len(f.AlwaysInclude) > 0 {
		cfg.Draft.AlwaysInclude = append(cfg.Draft.AlwaysInclude, f.AlwaysInclude...)
	}
}
