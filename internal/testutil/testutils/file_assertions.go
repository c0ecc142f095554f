package helpers

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// FileAssertions provides utilities for asserting file system state in tests.
type FileAssertions struct {
	t       *testing.T
	baseDir string
}

// NewFileAssertions creates a new file assertions helper.
func NewFileAssertions(t *testing.T, baseDir string) *FileAssertions {
	return &FileAssertions{
		t:       t,
		baseDir: baseDir,
	}
}

// AssertFileExists validates that a file exists.
func (fa *FileAssertions) AssertFileExists(relativePath string) *FileAssertions {
	fa.t.Helper()
	fullPath := filepath.Join(fa.baseDir, relativePath)
	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		fa.t.Errorf("Expected file to exist: %s", fullPath)
	}
	return fa
}

// AssertFileContains validates that a file contains the needle.
func (fa *FileAssertions) AssertFileContains(relativePath, needle string) *FileAssertions {
	fa.t.Helper()
	if content := fa.read(relativePath); !strings.Contains(content, needle) {
		fa.t.Errorf("Expected %s to contain %q, got:\n%s", relativePath, needle, content)
	}
	return fa
}

// AssertFileNotContains validates that a file does not contain the needle.
func (fa *FileAssertions) AssertFileNotContains(relativePath, needle string) *FileAssertions {
	fa.t.Helper()
	if content := fa.read(relativePath); strings.Contains(content, needle) {
		fa.t.Errorf("Expected %s not to contain %q, got:\n%s", relativePath, needle, content)
	}
	return fa
}

func (fa *FileAssertions) read(relativePath string) string {
	fa.t.Helper()
	data, err := os.ReadFile(filepath.Join(fa.baseDir, relativePath))
	if err != nil {
		fa.t.Fatalf("Failed to read %s: %v", relativePath, err)
	}
	return string(data)
}

// AssertFileNotExists validates that a file does not exist.
func (fa *FileAssertions) AssertFileNotExists(relativePath string) *FileAssertions {
	fa.t.Helper()
	fullPath := filepath.Join(fa.baseDir, relativePath)
	if _, err := os.Stat(fullPath); err == nil {
		fa.t.Errorf("Expected file not to exist: %s", fullPath)
	}
	return fa
}
