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

// Package diff classifies files across two directory trees as added, removed
// or modified.
package diff

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/insyde-fw/smallver/pkg/fingerprint"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📄 Entry is one file found during a tree walk.
type Entry struct {
	RelPath     string // Slash-separated path relative to the tree root
	AbsPath     string // Absolute path on disk
	Fingerprint string // Content fingerprint used for modification detection
}

// 📊 Result is the classification of every differing relative path. The
// three sets are pairwise disjoint; unchanged files are not emitted. All
// slices are sorted lexicographically for reproducible runs.
type Result struct {
	Added    []string // Present under root B only
	Removed  []string // Present under root A only
	Modified []string // Present under both with differing fingerprints
}

// Empty reports whether the two trees had no differences.
func (r *Result) Empty() bool {
	return len(r.Added) == 0 && len(r.Removed) == 0 && len(r.Modified) == 0
}

// Total returns the number of differing paths.
func (r *Result) Total() int {
	return len(r.Added) + len(r.Removed) + len(r.Modified)
}

// 🌲 Differ walks two tree roots and produces a Result.
type Differ struct {
	filter *Filter
	fp     fingerprint.Fingerprinter
}

// 🏭 NewDiffer creates a Differ using the given filter and fingerprinter.
func NewDiffer(filter *Filter, fp fingerprint.Fingerprinter) *Differ {
	return &Differ{
		filter: filter,
		fp:     fp,
	}
}

// Compare enumerates both roots post-filter and classifies every relative
// path. Classification is a pure set operation, so enumeration order cannot
// change the outcome. Any walk or fingerprint failure aborts the comparison.
func (d *Differ) Compare(ctx context.Context, rootA, rootB string) (*Result, error) {
	logger := zerolog.Ctx(ctx)

	entriesA, err := d.walk(ctx, rootA)
	if err != nil {
		return nil, errors.Errorf("walking tree A: %w", err)
	}

	entriesB, err := d.walk(ctx, rootB)
	if err != nil {
		return nil, errors.Errorf("walking tree B: %w", err)
	}

	result := &Result{}

	for rel, entryA := range entriesA {
		entryB, ok := entriesB[rel]
		if !ok {
			result.Removed = append(result.Removed, rel)
			continue
		}
		if entryA.Fingerprint != entryB.Fingerprint {
			result.Modified = append(result.Modified, rel)
		}
	}

	for rel := range entriesB {
		if _, ok := entriesA[rel]; !ok {
			result.Added = append(result.Added, rel)
		}
	}

	sort.Strings(result.Added)
	sort.Strings(result.Removed)
	sort.Strings(result.Modified)

	logger.Debug().
		Int("added", len(result.Added)).
		Int("removed", len(result.Removed)).
		Int("modified", len(result.Modified)).
		Msg("trees compared")

	return result, nil
}

// walk enumerates all files under root, excluding filtered paths, and
// fingerprints each one. Only files are tracked; empty directories produce no
// entries. Symlinks are followed when fingerprinting, so a broken link
// surfaces as an open error.
func (d *Differ) walk(ctx context.Context, root string) (map[string]Entry, error) {
	if info, err := os.Stat(root); err != nil {
		return nil, errors.Errorf("reading root %s: %w", root, err)
	} else if !info.IsDir() {
		return nil, errors.Errorf("root %s is not a directory", root)
	}

	entries := map[string]Entry{}

	err := filepath.WalkDir(root, func(p string, entry fs.DirEntry, err error) error {
		if err != nil {
			return errors.Errorf("walking %s: %w", p, err)
		}

		if entry.IsDir() {
			if p != root && d.filter.ExcludesDir(entry.Name()) {
				return fs.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return errors.Errorf("relativizing %s: %w", p, err)
		}
		rel = filepath.ToSlash(rel)

		if d.filter.Excluded(ctx, rel) {
			return nil
		}

		fp, err := d.fp.Fingerprint(p)
		if err != nil {
			return errors.Errorf("fingerprinting %s: %w", rel, err)
		}

		entries[rel] = Entry{
			RelPath:     rel,
			AbsPath:     p,
			Fingerprint: fp,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}
