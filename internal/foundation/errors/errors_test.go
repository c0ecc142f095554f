package errors

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderProducesClassifiedError(t *testing.T) {
	cause := stderrors.New("no such file")
	err := WrapError(cause, CategoryConfig, "read config").
		Fatal().
		WithContext("path", "docdraft.yaml").
		Build()

	assert.Equal(t, CategoryConfig, err.Category())
	assert.Equal(t, SeverityFatal, err.Severity())
	assert.Equal(t, "read config", err.Message())
	assert.ErrorIs(t, err, cause)
	v, ok := err.Context().Get("path")
	require.True(t, ok)
	assert.Equal(t, "docdraft.yaml", v)
	assert.Equal(t, "[config:fatal] read config: no such file", err.Error())
}

func TestWithContextDoesNotMutateOriginal(t *testing.T) {
	base := NewError(CategoryBuild, "render").Build()
	derived := base.WithContext("page", "guide.md")

	_, ok := base.Context().Get("page")
	assert.False(t, ok)
	v, ok := derived.Context().Get("page")
	require.True(t, ok)
	assert.Equal(t, "guide.md", v)
}

func TestAsClassifiedFollowsWrapChain(t *testing.T) {
	inner := ValidationError("docs_dir must be relative").Build()
	wrapped := fmt.Errorf("load: %w", inner)

	got, ok := AsClassified(wrapped)
	require.True(t, ok)
	assert.Same(t, inner, got)
	assert.True(t, HasCategory(wrapped, CategoryValidation))
	assert.Equal(t, CategoryInternal, GetCategory(stderrors.New("plain")))
}

func TestCLIErrorAdapter_ExitCodeFor(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, slog.Default())

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil error", nil, 0},
		{"validation", ValidationError("bad flag").Build(), 2},
		{"config", ConfigError("bad config").Build(), 7},
		{"filesystem", FileSystemError("write failed").Build(), 11},
		{"build", BuildError("render failed").Build(), 11},
		{"git", NewError(CategoryGit, "git missing").Build(), 8},
		{"unclassified", stderrors.New("unknown"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, adapter.ExitCodeFor(tt.err))
		})
	}
}

func TestCLIErrorAdapter_FormatError(t *testing.T) {
	quiet := NewCLIErrorAdapter(false, slog.Default())
	verbose := NewCLIErrorAdapter(true, slog.Default())

	cfgErr := WrapError(stderrors.New("yaml: line 3"), CategoryConfig, "parse config").Build()
	assert.Equal(t, "Error: parse config: yaml: line 3", quiet.FormatError(cfgErr))
	assert.Equal(t, cfgErr.Error(), verbose.FormatError(cfgErr))

	internal := NewError(CategoryInternal, "unexpected state").Build()
	assert.Contains(t, quiet.FormatError(internal), "use -v for details")

	assert.Equal(t, "", quiet.FormatError(nil))
	assert.Equal(t, "Error: boom", quiet.FormatError(stderrors.New("boom")))
}

func TestCLIErrorAdapter_ReportLogsCategory(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	adapter := NewCLIErrorAdapter(false, logger)

	code := adapter.Report(ConfigError("missing devbranch").WithContext("path", "x.yaml").Build())
	assert.Equal(t, 7, code)
	assert.Contains(t, buf.String(), "category=config")
	assert.Contains(t, buf.String(), "path=x.yaml")
}
