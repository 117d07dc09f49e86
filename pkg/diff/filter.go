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

package diff

import (
	"context"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
)

// 🔍 Filter decides which relative paths are excluded from comparison. The
// same filter is applied to both trees, so an excluded path can never show up
// as added or removed just because one side was filtered.
type Filter struct {
	Dirs     []string // Directory names excluded anywhere in the path
	Files    []string // Exact file names to exclude
	Exts     []string // Extensions to exclude, with leading dot (".log")
	Patterns []string // Doublestar glob patterns matched against the relative path
}

// Excluded reports whether the slash-separated relative path should be
// skipped during the walk.
func (f *Filter) Excluded(ctx context.Context, relPath string) bool {
	logger := zerolog.Ctx(ctx)

	dir, name := path.Split(relPath)
	for _, part := range strings.Split(strings.Trim(dir, "/"), "/") {
		if part == "" {
			continue
		}
		for _, excluded := range f.Dirs {
			if part == excluded {
				return true
			}
		}
	}

	for _, excluded := range f.Files {
		if name == excluded {
			return true
		}
	}

	ext := path.Ext(name)
	for _, excluded := range f.Exts {
		if ext == excluded && ext != "" {
			return true
		}
	}

	for _, pattern := range f.Patterns {
		matched, err := doublestar.Match(pattern, relPath)
		if err != nil {
			logger.Debug().Str("pattern", pattern).Str("path", relPath).Err(err).Msg("error matching pattern")
			continue
		}
		if matched {
			logger.Debug().Str("file", relPath).Str("pattern", pattern).Msg("file excluded by pattern")
			return true
		}
	}

	return false
}

// ExcludesDir reports whether a directory name is excluded outright, letting
// the walk skip the whole subtree instead of testing every file under it.
func (f *Filter) ExcludesDir(name string) bool {
	for _, excluded := range f.Dirs {
		if name == excluded {
			return true
		}
	}
	return false
}
