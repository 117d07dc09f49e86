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

// Package output materializes a diff result as Original/ and Modified/
// subtrees under a freshly wiped output root.
package output

import (
	"context"
	"os"
	"path/filepath"

	"github.com/insyde-fw/smallver/pkg/copyright"
	"github.com/insyde-fw/smallver/pkg/diff"
	"github.com/insyde-fw/smallver/pkg/status"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

const (
	// OriginalDir holds the tree-A side of removed and modified files.
	OriginalDir = "Original"
	// ModifiedDir holds the tree-B side of added and modified files.
	ModifiedDir = "Modified"
)

// 🔧 Options configures a Writer.
type Options struct {
	Root      string              // Output root, wiped on Prepare
	RootA     string              // Tree A root
	RootB     string              // Tree B root
	Rewriter  *copyright.Rewriter // Applied to Modified-side copies when set
	StatusMgr *status.Manager     // Required
}

// 📦 Writer copies differing files into the output layout.
type Writer struct {
	root      string
	rootA     string
	rootB     string
	rewriter  *copyright.Rewriter
	statusMgr *status.Manager
}

// 🏭 NewWriter creates a Writer for the given options.
func NewWriter(opts Options) *Writer {
	return &Writer{
		root:      opts.Root,
		rootA:     opts.RootA,
		rootB:     opts.RootB,
		rewriter:  opts.Rewriter,
		statusMgr: opts.StatusMgr,
	}
}

// Prepare wipes the output root and recreates the Original/ and Modified/
// skeleton. A wipe or create failure is fatal: nothing may be written into a
// directory still holding a previous run's files.
func (w *Writer) Prepare(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)

	if _, err := os.Stat(w.root); err == nil {
		logger.Debug().Str("path", w.root).Msg("removing existing output directory")
	}
	if err := os.RemoveAll(w.root); err != nil {
		return errors.Errorf("removing output directory %s: %w", w.root, err)
	}

	for _, sub := range []string{OriginalDir, ModifiedDir} {
		if err := os.MkdirAll(filepath.Join(w.root, sub), 0o755); err != nil {
			return errors.Errorf("creating output directory %s: %w", sub, err)
		}
	}

	return nil
}

// Write copies every differing file into the output tree. Removed and
// modified paths contribute their tree-A version under Original/; added and
// modified paths contribute their tree-B version under Modified/, passed
// through the copyright rewriter when one is configured. The result's sets
// are already sorted, so processing order is deterministic. A single file
// failure is tracked and skipped; the failed count is returned.
func (w *Writer) Write(ctx context.Context, result *diff.Result) int {
	w.statusMgr.StartOperation(ctx, result.Total())

	failed := 0

	for _, rel := range result.Removed {
		failed += w.copyOriginal(ctx, rel, status.ClassRemoved)
	}
	for _, rel := range result.Modified {
		failed += w.copyOriginal(ctx, rel, status.ClassModified)
		failed += w.copyModified(ctx, rel, status.ClassModified)
	}
	for _, rel := range result.Added {
		failed += w.copyModified(ctx, rel, status.ClassAdded)
	}

	return failed
}

// copyOriginal copies the tree-A version of rel into Original/, returning 1
// on failure so the caller can tally.
func (w *Writer) copyOriginal(ctx context.Context, rel string, class status.Classification) int {
	src := filepath.Join(w.rootA, filepath.FromSlash(rel))
	dst := filepath.Join(w.root, OriginalDir, filepath.FromSlash(rel))

	if err := w.copyFile(src, dst); err != nil {
		w.statusMgr.Track(ctx, status.FileReport{
			Path:           rel,
			Classification: class,
			Outcome:        status.OutcomeFailed,
			Err:            err,
		})
		return 1
	}

	w.statusMgr.Track(ctx, status.FileReport{
		Path:           rel,
		Classification: class,
		Outcome:        status.OutcomeCopied,
	})
	return 0
}

// copyModified copies the tree-B version of rel into Modified/, rewriting the
// copyright header when enabled.
func (w *Writer) copyModified(ctx context.Context, rel string, class status.Classification) int {
	src := filepath.Join(w.rootB, filepath.FromSlash(rel))
	dst := filepath.Join(w.root, ModifiedDir, filepath.FromSlash(rel))

	replacements, err := w.copyWithRewrite(src, dst)
	if err != nil {
		w.statusMgr.Track(ctx, status.FileReport{
			Path:           rel,
			Classification: class,
			Outcome:        status.OutcomeFailed,
			Err:            err,
		})
		return 1
	}

	outcome := status.OutcomeCopied
	if replacements > 0 {
		outcome = status.OutcomeRewritten
	}
	w.statusMgr.Track(ctx, status.FileReport{
		Path:           rel,
		Classification: class,
		Outcome:        outcome,
		Replacements:   replacements,
	})
	return 0
}

// copyWithRewrite copies src to dst, normalizing copyright headers when a
// rewriter is configured. Binary content (not valid UTF-8) is copied
// verbatim. Returns the number of header occurrences rewritten.
func (w *Writer) copyWithRewrite(src, dst string) (int, error) {
	if w.rewriter == nil {
		return 0, w.copyFile(src, dst)
	}

	content, err := os.ReadFile(src)
	if err != nil {
		return 0, errors.Errorf("reading file: %w", err)
	}

	rewritten, replacements := w.rewriter.RewriteBytes(content)

	info, err := os.Stat(src)
	if err != nil {
		return 0, errors.Errorf("reading file mode: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return 0, errors.Errorf("creating parent directories: %w", err)
	}
	if err := os.WriteFile(dst, rewritten, info.Mode().Perm()); err != nil {
		return 0, errors.Errorf("writing file: %w", err)
	}

	return replacements, nil
}

// copyFile copies src to dst verbatim, creating parent directories and
// preserving the source file mode.
func (w *Writer) copyFile(src, dst string) error {
	content, err := os.ReadFile(src)
	if err != nil {
		return errors.Errorf("reading file: %w", err)
	}

	info, err := os.Stat(src)
	if err != nil {
		return errors.Errorf("reading file mode: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return errors.Errorf("creating parent directories: %w", err)
	}
	if err := os.WriteFile(dst, content, info.Mode().Perm()); err != nil {
		return errors.Errorf("writing file: %w", err)
	}

	return nil
}
