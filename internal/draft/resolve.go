package draft

import (
	"git.home.luguber.info/inful/docdraft/internal/config"
	"git.home.luguber.info/inful/docdraft/internal/repository"
)

// EffectiveDevBranch returns the trunk branch: the shared deploy config wins
// over the draft config, which falls back to the default.
func EffectiveDevBranch(cfg config.Draft) string {
	if cfg.DeployConfig != nil && cfg.DeployConfig.DevBranch != "" {
		return cfg.DeployConfig.DevBranch
	}
	if cfg.DevBranch != "" {
		return cfg.DevBranch
	}
	return config.DefaultDevBranch
}

// EffectiveRepo returns the repository slug used for validation, reporting
// false when no source provides one. An explicit cfg.Repo is trusted
// verbatim; the other sources are normalized.
func EffectiveRepo(cfg config.Draft, hostHint string) (string, bool) {
	if cfg.DeployConfig != nil && cfg.DeployConfig.Repo != "" {
		return repository.NormalizeSlug(cfg.DeployConfig.Repo), true
	}
	if cfg.Repo != "" {
		return cfg.Repo, true
	}
	if hostHint != "" {
		return repository.NormalizeSlug(hostHint), true
	}
	return "", false
}
