package ci

import "strings"

// Environment variables consulted.
const (
	EnvTravisPullRequest  = "TRAVIS_PULL_REQUEST"
	EnvGitHubEventName    = "GITHUB_EVENT_NAME"
	EnvGitLabMergeRequest = "CI_MERGE_REQUEST_ID"
	EnvTravisRepoSlug     = "TRAVIS_REPO_SLUG"
	EnvGitHubRepository   = "GITHUB_REPOSITORY"
)

// Provider names the CI system that reported a pull request.
type Provider string

const (
	ProviderNone   Provider = ""
	ProviderTravis Provider = "travis"
	ProviderGitHub Provider = "github-actions"
	ProviderGitLab Provider = "gitlab"
)

// DetectPullRequest checks the provider signals in a fixed order (Travis,
// GitHub Actions, GitLab) and reports the first one that indicates a pull
// or merge request.
func DetectPullRequest(env Env) (Provider, bool) {
	if v := env(EnvTravisPullRequest); v != "" && v != "false" {
		return ProviderTravis, true
	}
	if env(EnvGitHubEventName) == "pull_request" {
		return ProviderGitHub, true
	}
	if env(EnvGitLabMergeRequest) != "" {
		return ProviderGitLab, true
	}
	return ProviderNone, false
}

// ReportedRepositories returns the non-empty repository identifiers reported
// by Travis and GitHub Actions, in that order.
func ReportedRepositories(env Env) []string {
	var out []string
	for _, key := range []string{EnvTravisRepoSlug, EnvGitHubRepository} {
		if v := env(key); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// MatchesRepository reports whether any reported identifier contains slug.
//
// Matching is by substring, so "org/repo" also matches "org/repo-other".
// Existing configurations rely on the permissive form.
func MatchesRepository(env Env, slug string) bool {
	for _, reported := range ReportedRepositories(env) {
		if strings.Contains(reported, slug) {
			return true
		}
	}
	return false
}
