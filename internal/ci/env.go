// Package ci reads pull-request and repository signals reported by CI
// providers through environment variables.
//
// The environment is always passed in explicitly so detection can be tested
// without touching the process environment.
package ci

import (
	"os"

	"github.com/joho/godotenv"
)

// Env looks up an environment variable, returning "" when unset.
type Env func(key string) string

// OSEnv reads the process environment.
func OSEnv(key string) string { return os.Getenv(key) }

// MapEnv serves lookups from a fixed map.
func MapEnv(vars map[string]string) Env {
	return func(key string) string { return vars[key] }
}

// FileEnv replays a dotenv file, e.g. one captured from a CI job with
// `env > ci.env`. Variables not in the file fall through to fallback when it
// is non-nil.
func FileEnv(path string, fallback Env) (Env, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		return nil, err
	}
	return func(key string) string {
		if v, ok := vars[key]; ok {
			return v
		}
		if fallback != nil {
			return fallback(key)
		}
		return ""
	}, nil
}
