package generate

import (
	"fmt"
	"time"

	"git.home.luguber.info/inful/apidocs/internal/metrics"
)

// PageResult describes the fate of one output page.
type PageResult struct {
	Module      string // empty for the index page
	Path        string
	Kind        string
	Outcome     metrics.WriteOutcome
	Fingerprint string
}

// Report summarizes a generate or check run.
type Report struct {
	Modules   int
	Written   int
	Unchanged int
	Removed   int
	Stale     int
	Pages     []PageResult
	Duration  time.Duration
}

func (r *Report) add(p PageResult) {
	switch p.Outcome {
	case metrics.WriteWritten:
		r.Written++
	case metrics.WriteUnchanged:
		r.Unchanged++
	case metrics.WriteRemoved:
		r.Removed++
	case metrics.WriteStale:
		r.Stale++
	}
	r.Pages = append(r.Pages, p)
}

// StalePaths lists the pages a check run found out of date.
func (r *Report) StalePaths() []string {
	var out []string
	for _, p := range r.Pages {
		if p.Outcome == metrics.WriteStale {
			out = append(out, p.Path)
		}
	}
	return out
}

// Summary returns a one-line human readable description of the run.
func (r *Report) Summary() string {
	return fmt.Sprintf("modules=%d written=%d unchanged=%d removed=%d stale=%d duration=%s",
		r.Modules, r.Written, r.Unchanged, r.Removed, r.Stale, r.Duration.Round(time.Millisecond))
}
