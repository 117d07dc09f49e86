// Copyright 2026 Insyde Software Corp.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package status tracks per-file outcomes of a diff extraction run and
// renders console feedback.
package status

import (
	"context"
	"io"
	"sort"
	"sync"

	"github.com/rs/zerolog"
)

// 📊 Classification is the diff category a file landed in.
type Classification int

const (
	ClassUnknown Classification = iota
	ClassAdded                  // Present in tree B only
	ClassRemoved                // Present in tree A only
	ClassModified               // Present in both, content differs
)

// String returns a string representation of Classification
func (c Classification) String() string {
	switch c {
	case ClassAdded:
		return "Only in B"
	case ClassRemoved:
		return "Only in A"
	case ClassModified:
		return "Modified"
	default:
		return "Unknown"
	}
}

// 🎯 Outcome is what happened to one copied file.
type Outcome int

const (
	OutcomeCopied    Outcome = iota // Copied verbatim
	OutcomeRewritten                // Copied with copyright header rewritten
	OutcomeFailed                   // Copy failed, run continued
)

// String returns a string representation of Outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeRewritten:
		return "rewritten"
	case OutcomeFailed:
		return "failed"
	default:
		return "copied"
	}
}

// 📄 FileReport records the handling of a single relative path.
type FileReport struct {
	Path           string         // Relative path within the tree
	Classification Classification // Diff category
	Outcome        Outcome        // What the writer did
	Replacements   int            // Copyright header occurrences rewritten
	Err            error          // Set when Outcome is OutcomeFailed
}

// 📈 Manager collects file reports and prints per-file lines. Runs are
// single-threaded, but the mutex is kept so the type stays safe if reused.
type Manager struct {
	mu        sync.Mutex
	console   io.Writer
	formatter Formatter
	verbose   bool
	reports   []FileReport
	total     int
	processed int
}

// 🏭 NewManager creates a Manager writing formatted lines to console.
func NewManager(console io.Writer, formatter Formatter, verbose bool) *Manager {
	return &Manager{
		console:   console,
		formatter: formatter,
		verbose:   verbose,
	}
}

// StartOperation records how many files the run will process.
func (m *Manager) StartOperation(ctx context.Context, total int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.total = total
	m.processed = 0
}

// Track records a file report. Verbose mode prints every file; failures are
// always printed so no error stays invisible.
func (m *Manager) Track(ctx context.Context, report FileReport) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.reports = append(m.reports, report)
	m.processed++

	logger := zerolog.Ctx(ctx)
	logger.Debug().
		Str("file", report.Path).
		Str("class", report.Classification.String()).
		Str("outcome", report.Outcome.String()).
		Err(report.Err).
		Msg("file processed")

	if m.verbose || report.Outcome == OutcomeFailed {
		io.WriteString(m.console, m.formatter.FormatFileReport(report)+"\n")
	}
}

// Reports returns all file reports sorted by path.
func (m *Manager) Reports() []FileReport {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]FileReport, len(m.reports))
	copy(out, m.reports)
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// Failed returns the reports whose copy did not succeed.
func (m *Manager) Failed() []FileReport {
	m.mu.Lock()
	defer m.mu.Unlock()

	var failed []FileReport
	for _, r := range m.reports {
		if r.Outcome == OutcomeFailed {
			failed = append(failed, r)
		}
	}
	return failed
}

// Counts returns per-classification totals plus rewritten and failed counts.
func (m *Manager) Counts() (added, removed, modified, rewritten, failed int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	seen := map[string]Classification{}
	for _, r := range m.reports {
		seen[r.Path] = r.Classification
		if r.Outcome == OutcomeRewritten {
			rewritten++
		}
		if r.Outcome == OutcomeFailed {
			failed++
		}
	}
	for _, c := range seen {
		switch c {
		case ClassAdded:
			added++
		case ClassRemoved:
			removed++
		case ClassModified:
			modified++
		}
	}
	return added, removed, modified, rewritten, failed
}
