package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestClassifiedError(t *testing.T) {
	t.Run("Basic error creation", func(t *testing.T) {
		err := NewError(CategoryConfig, "invalid configuration").
			WithSeverity(SeverityFatal).
			WithContext("file", "apidocs.yaml").
			Build()

		if err.Category() != CategoryConfig {
			t.Errorf("expected category %s, got %s", CategoryConfig, err.Category())
		}
		if err.Severity() != SeverityFatal {
			t.Errorf("expected severity %s, got %s", SeverityFatal, err.Severity())
		}
		if err.Message() != "invalid configuration" {
			t.Errorf("expected message 'invalid configuration', got %s", err.Message())
		}

		file, exists := err.Context().GetString("file")
		if !exists || file != "apidocs.yaml" {
			t.Errorf("expected context file=apidocs.yaml, got %v", file)
		}
	})

	t.Run("Error detection", func(t *testing.T) {
		err := ConfigError("test error").Build()

		if !IsClassified(err) {
			t.Error("expected error to be classified")
		}
		if !HasCategory(err, CategoryConfig) {
			t.Error("expected error to have config category")
		}
		if !HasSeverity(err, SeverityFatal) {
			t.Error("expected error to have fatal severity")
		}
		if err.CanRetry() {
			t.Error("expected config error to not be retryable")
		}
		if !err.IsFatal() {
			t.Error("expected config error to be fatal")
		}
	})

	t.Run("Detection through wrapping", func(t *testing.T) {
		inner := RenderError("formatter failed").Build()
		wrapped := fmt.Errorf("module Option: %w", inner)

		if !HasCategory(wrapped, CategoryRender) {
			t.Error("expected wrapped error to keep render category")
		}
		if GetCategory(errors.New("plain")) != CategoryInternal {
			t.Error("expected unclassified errors to default to internal")
		}
	})
}

func TestErrorBuilder(t *testing.T) {
	t.Run("Fluent API", func(t *testing.T) {
		originalErr := errors.New("original error")
		err := WrapError(originalErr, CategoryFileSystem, "write failed").
			Warning().
			Retryable().
			WithContext("page", "Option.md").
			WithContext("attempt", 2).
			Build()

		if err.Category() != CategoryFileSystem {
			t.Errorf("expected category %s, got %s", CategoryFileSystem, err.Category())
		}
		if err.Severity() != SeverityWarning {
			t.Errorf("expected severity %s, got %s", SeverityWarning, err.Severity())
		}
		if err.RetryStrategy() != RetryBackoff {
			t.Errorf("expected retry strategy %s, got %s", RetryBackoff, err.RetryStrategy())
		}
		if !errors.Is(err, originalErr) {
			t.Error("expected error to wrap original error")
		}
		if got := err.Details(); got != "attempt=2 page=Option.md" {
			t.Errorf("unexpected details %q", got)
		}
	})

	t.Run("WithContext does not mutate the receiver", func(t *testing.T) {
		base := ValidationError("bad export").Build()
		derived := base.WithContext("index", 3)

		if _, ok := base.Context().Get("index"); ok {
			t.Error("expected base context to stay unchanged")
		}
		if v, ok := derived.Context().Get("index"); !ok || v != 3 {
			t.Errorf("expected derived context index=3, got %v", v)
		}
	})

	t.Run("Render errors are never retried", func(t *testing.T) {
		if RenderError("x").Build().CanRetry() {
			t.Error("expected render errors to be permanent")
		}
	})
}

func TestClassifiedErrorMessage(t *testing.T) {
	err := WrapError(errors.New("eof"), CategoryValidation, "decode model").Build()
	want := "[validation:error] decode model: eof"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
