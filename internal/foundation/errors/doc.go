// Package errors provides the classified error type used at docdraft's outer
// boundaries (configuration loading, CLI, output writing).
//
// The draft decision engine itself never surfaces errors; its collaborators
// return plain wrapped errors which the engine absorbs. Everything that can
// legitimately fail a run (bad config, unwritable output) is reported as a
// ClassifiedError so the CLI can choose an exit code.
//
// Example usage:
//
//	err := errors.WrapError(cause, errors.CategoryConfig, "read config").
//		WithContext("path", path).
//		Build()
package errors
