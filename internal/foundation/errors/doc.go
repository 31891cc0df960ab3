// Package errors provides the classified error primitives used across apidocs.
//
// A ClassifiedError carries a category (config, validation, render, filesystem,
// internal), a severity, a retry strategy and a small structured context map.
// Errors are built with the fluent ErrorBuilder:
//
//	err := errors.ValidationError("unknown export kind").
//		WithContext("module", "Option").
//		WithContext("index", 3).
//		Build()
//
// The CLI adapter maps categories to process exit codes.
package errors
