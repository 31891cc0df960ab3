package errors

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"testing"
)

type customError struct{ msg string }

func (e *customError) Error() string { return e.msg }

func TestCLIErrorAdapter_ExitCodeFor(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, slog.Default())

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "nil error", err: nil, expected: 0},
		{name: "validation error", err: ValidationError("unknown export kind").Build(), expected: 2},
		{name: "not found", err: NotFoundError("model file missing").Build(), expected: 4},
		{name: "config error", err: ConfigError("bad config").Build(), expected: 7},
		{name: "render error", err: RenderError("formatter failed").Build(), expected: 11},
		{name: "filesystem error", err: FileSystemError("write failed").Build(), expected: 11},
		{name: "internal error", err: InternalError("boom").Build(), expected: 10},
		{
			name:     "wrapped classified error",
			err:      fmt.Errorf("generate: %w", ValidationError("bad model").Build()),
			expected: 2,
		},
		{name: "unclassified error", err: &customError{msg: "unknown error"}, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := adapter.ExitCodeFor(tt.err)
			if got != tt.expected {
				t.Errorf("ExitCodeFor() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCLIErrorAdapter_FormatError(t *testing.T) {
	tests := []struct {
		name     string
		verbose  bool
		err      error
		contains string
	}{
		{name: "nil error", err: nil, contains: ""},
		{
			name:     "internal error hidden in non-verbose mode",
			err:      InternalError("internal issue").Build(),
			contains: "use -v for details",
		},
		{
			name:     "user facing message in non-verbose mode",
			err:      ValidationError("unknown export kind").WithContext("module", "Option").Build(),
			contains: "Error: unknown export kind",
		},
		{
			name:     "verbose mode includes context",
			verbose:  true,
			err:      ValidationError("unknown export kind").WithContext("module", "Option").Build(),
			contains: "module=Option",
		},
		{
			name:     "unclassified error",
			err:      &customError{msg: "plain failure"},
			contains: "Error: plain failure",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter := NewCLIErrorAdapter(tt.verbose, slog.Default())
			got := adapter.FormatError(tt.err)
			if !strings.Contains(got, tt.contains) {
				t.Errorf("FormatError() = %q, want it to contain %q", got, tt.contains)
			}
		})
	}
}

func TestCLIErrorAdapter_Report(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	adapter := NewCLIErrorAdapter(false, logger)

	var out bytes.Buffer
	code := adapter.Report(RenderError("formatter failed").WithContext("module", "Either").Build(), &out)

	if code != 11 {
		t.Errorf("Report() code = %d, want 11", code)
	}
	if !strings.Contains(out.String(), "formatter failed") {
		t.Errorf("expected user message, got %q", out.String())
	}
	if !strings.Contains(logs.String(), "module=Either") {
		t.Errorf("expected context in log output, got %q", logs.String())
	}
	if adapter.Report(nil, &out) != 0 {
		t.Error("expected exit code 0 for nil error")
	}
}
