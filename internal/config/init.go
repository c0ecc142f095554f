package config

import (
	"errors"
	"io/fs"
	"os"

	ferrors "git.home.luguber.info/inful/docdraft/internal/foundation/errors"
)

const exampleConfig = `# docdraft configuration
root: .
docs_dir: docs
# repo: github.com/example/project   # host repository hint
extensions: [".md", ".markdown"]

git:
  backend: cli        # cli | go-git
  binary: git

output:
  directory: ./site
  format: html        # html | hugo | none

logging:
  level: info         # debug | info | warn | error
  format: text        # text | json

metrics:
  textfile: ""        # e.g. ./docdraft.prom

draft:
  enabled: true
  devbranch: main
  use_ci_env: true
  always_include:
    - index.md
  # repo: example/project
  # deploy_config:
  #   devbranch: main
  #   repo: github.com/example/project.git
  #   target: site
`

// Init creates a new configuration file with example content.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return ferrors.ValidationError("configuration file already exists (use --force to overwrite)").
			WithContext("path", configPath).
			Build()
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to stat config file").
			WithContext("path", configPath).
			Build()
	}

	if err := os.WriteFile(configPath, []byte(exampleConfig), 0o600); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to write config file").
			WithContext("path", configPath).
			Build()
	}
	return nil
}
