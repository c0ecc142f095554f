package config

import (
	"maps"
	"slices"
)

// DefaultDevBranch is the trunk branch assumed when nothing else is configured.
const DefaultDevBranch = "master"

// Draft holds the options of the draft-selection step. It is built once per
// run and treated as immutable afterwards; pass it by value.
type Draft struct {
	// AlwaysInclude lists page IDs (paths relative to the docs directory)
	// that are always fully built.
	AlwaysInclude []string `yaml:"always_include"`
	// Enabled is the master switch.
	Enabled bool `yaml:"enabled"`
	// DevBranch names the trunk branch.
	DevBranch string `yaml:"devbranch"`
	// DeployConfig is shared with the deployment step and takes precedence
	// over DevBranch and Repo.
	DeployConfig *DeployConfig `yaml:"deploy_config,omitempty"`
	// DeployConfigFile loads DeployConfig from a separate YAML file when
	// DeployConfig is not given inline. Relative to the config file.
	DeployConfigFile string `yaml:"deploy_config_file,omitempty"`
	// Repo is an explicit repository slug override, used verbatim. Empty means unset.
	Repo string `yaml:"repo,omitempty"`
	// UseCIEnv controls whether CI provider environment variables are consulted.
	UseCIEnv bool `yaml:"use_ci_env"`
}

// DefaultDraft returns the documented defaults: enabled, CI env consulted,
// trunk "master", empty allowlist.
func DefaultDraft() Draft {
	return Draft{
		AlwaysInclude: []string{},
		Enabled:       true,
		DevBranch:     DefaultDevBranch,
		UseCIEnv:      true,
	}
}

// DeployConfig mirrors the configuration of a separate deploy step. Only
// devbranch and repo are interpreted; every other key is preserved in Extra.
type DeployConfig struct {
	DevBranch string         `yaml:"devbranch,omitempty"`
	Repo      string         `yaml:"repo,omitempty"`
	Extra     map[string]any `yaml:",inline"`
}

// Clone returns a copy that shares no slices or maps with d.
func (d Draft) Clone() Draft {
	out := d
	out.AlwaysInclude = slices.Clone(d.AlwaysInclude)
	if d.DeployConfig != nil {
		dc := *d.DeployConfig
		dc.Extra = maps.Clone(d.DeployConfig.Extra)
		out.DeployConfig = &dc
	}
	return out
}
