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

package diff_test

import (
	"context"
	"testing"

	"github.com/insyde-fw/smallver/pkg/diff"
	"github.com/stretchr/testify/assert"
)

func TestFilterExcluded(t *testing.T) {
	ctx := context.Background()
	filter := &diff.Filter{
		Dirs:     []string{".git", "__pycache__"},
		Files:    []string{"LICENSE"},
		Exts:     []string{".log", ".tmp"},
		Patterns: []string{"vendor/**"},
	}

	tests := []struct {
		path string
		want bool
	}{
		{"src/main.c", false},
		{".git/config", true},
		{"deep/.git/hooks/pre-commit", true},
		{"__pycache__/mod.pyc", true},
		{"LICENSE", true},
		{"docs/LICENSE", true},
		{"build.log", true},
		{"logs/run.tmp", true},
		{"vendor/lib/code.go", true},
		{"notvendor/code.go", false},
		{"log", false},       // bare name, not an extension match
		{"file.logx", false}, // extension must match exactly
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, filter.Excluded(ctx, tt.path), "path %s", tt.path)
	}
}

func TestFilterExcludesDir(t *testing.T) {
	filter := &diff.Filter{Dirs: []string{".git"}}
	assert.True(t, filter.ExcludesDir(".git"))
	assert.False(t, filter.ExcludesDir("src"))
}

func TestEmptyFilterExcludesNothing(t *testing.T) {
	filter := &diff.Filter{}
	assert.False(t, filter.Excluded(context.Background(), "anything/at/all.txt"))
}
