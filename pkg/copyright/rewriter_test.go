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

package copyright_test

import (
	"testing"

	"github.com/insyde-fw/smallver/pkg/copyright"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRewrite(t *testing.T) {
	tests := []struct {
		name        string
		opts        copyright.Options
		input       string
		want        string
		wantChanged bool
		wantMatches int
	}{
		{
			name:        "ranged_year_to_new_format",
			opts:        copyright.Options{Year: 2026, NewFormat: true},
			input:       "Copyright (c) 2013-2023 Insyde Software Corp. All Rights Reserved.",
			want:        "Copyright 2026 Insyde Software Corp. All Rights Reserved.",
			wantChanged: true,
			wantMatches: 1,
		},
		{
			name:        "ranged_year_to_legacy_format",
			opts:        copyright.Options{Year: 2026},
			input:       "Copyright (c) 2013 - 2023, Insyde Software Corp. All Rights Reserved.",
			want:        "Copyright (c) 2026, Insyde Software Corp. All Rights Reserved.",
			wantChanged: true,
			wantMatches: 1,
		},
		{
			name:        "single_year_with_comma",
			opts:        copyright.Options{Year: 2026, NewFormat: true},
			input:       "// Copyright (c) 2023, Insyde Software Corp. All Rights Reserved.\n",
			want:        "// Copyright 2026 Insyde Software Corp. All Rights Reserved.\n",
			wantChanged: true,
			wantMatches: 1,
		},
		{
			name:        "bare_year_to_legacy",
			opts:        copyright.Options{Year: 2026},
			input:       "Copyright 2020 Insyde Software Corp. All Rights Reserved.",
			want:        "Copyright (c) 2026, Insyde Software Corp. All Rights Reserved.",
			wantChanged: true,
			wantMatches: 1,
		},
		{
			name:        "no_header_passes_through",
			opts:        copyright.Options{Year: 2026, NewFormat: true},
			input:       "package main\n\nfunc main() {}\n",
			want:        "package main\n\nfunc main() {}\n",
			wantChanged: false,
			wantMatches: 0,
		},
		{
			name:        "different_holder_not_touched",
			opts:        copyright.Options{Year: 2026, NewFormat: true},
			input:       "Copyright (c) 2023 Acme Corp. All Rights Reserved.",
			want:        "Copyright (c) 2023 Acme Corp. All Rights Reserved.",
			wantChanged: false,
			wantMatches: 0,
		},
		{
			name: "custom_holder",
			opts: copyright.Options{
				Year:      2026,
				Holder:    "Acme Corp.",
				NewFormat: true,
			},
			input:       "Copyright (c) 2019-2024, Acme Corp.",
			want:        "Copyright 2026 Acme Corp.",
			wantChanged: true,
			wantMatches: 1,
		},
		{
			name:        "every_occurrence_rewritten",
			opts:        copyright.Options{Year: 2026, NewFormat: true},
			input:       "Copyright (c) 2020 Insyde Software Corp. All Rights Reserved.\n...\nCopyright (c) 2018-2022, Insyde Software Corp. All Rights Reserved.\n",
			want:        "Copyright 2026 Insyde Software Corp. All Rights Reserved.\n...\nCopyright 2026 Insyde Software Corp. All Rights Reserved.\n",
			wantChanged: true,
			wantMatches: 2,
		},
		{
			// Normalized new-format text re-matches and rewrites to itself.
			name:        "already_normalized_new_format",
			opts:        copyright.Options{Year: 2026, NewFormat: true},
			input:       "Copyright 2026 Insyde Software Corp. All Rights Reserved.",
			want:        "Copyright 2026 Insyde Software Corp. All Rights Reserved.",
			wantChanged: false,
			wantMatches: 1,
		},
		{
			// Normalized legacy text still matches and rewrites to itself.
			name:        "already_normalized_legacy_format",
			opts:        copyright.Options{Year: 2026},
			input:       "Copyright (c) 2026, Insyde Software Corp. All Rights Reserved.",
			want:        "Copyright (c) 2026, Insyde Software Corp. All Rights Reserved.",
			wantChanged: false,
			wantMatches: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := copyright.New(tt.opts)
			result := r.Rewrite(tt.input)

			assert.Equal(t, tt.want, result.Rewritten)
			assert.Equal(t, tt.wantChanged, result.Changed)
			assert.Equal(t, tt.wantMatches, result.Matches)
			assert.Equal(t, tt.input, result.Original)
		})
	}
}

func TestRewriteIsIdempotent(t *testing.T) {
	inputs := []string{
		"Copyright (c) 2013-2023 Insyde Software Corp. All Rights Reserved.",
		"Copyright 2011 Insyde Software Corp. All Rights Reserved.",
		"no header here",
	}

	for _, newFormat := range []bool{false, true} {
		r := copyright.New(copyright.Options{Year: 2026, NewFormat: newFormat})
		for _, input := range inputs {
			once := r.Rewrite(input).Rewritten
			twice := r.Rewrite(once).Rewritten
			require.Equal(t, once, twice, "rewrite must be idempotent for %q", input)
		}
	}
}

func TestRewriteFormatInvariants(t *testing.T) {
	input := "Copyright (c) 2013-2023, Insyde Software Corp. All Rights Reserved."

	newResult := copyright.New(copyright.Options{Year: 2026, NewFormat: true}).Rewrite(input)
	assert.NotContains(t, newResult.Rewritten, "(c)")

	legacyResult := copyright.New(copyright.Options{Year: 2026}).Rewrite(input)
	assert.Contains(t, legacyResult.Rewritten, "(c)")
}

func TestRewriteBytes(t *testing.T) {
	r := copyright.New(copyright.Options{Year: 2026, NewFormat: true})

	t.Run("text_content", func(t *testing.T) {
		out, matches := r.RewriteBytes([]byte("Copyright (c) 2023 Insyde Software Corp. All Rights Reserved."))
		assert.Equal(t, "Copyright 2026 Insyde Software Corp. All Rights Reserved.", string(out))
		assert.Equal(t, 1, matches)
	})

	t.Run("binary_content_untouched", func(t *testing.T) {
		binary := []byte{0x00, 0xff, 0xfe, 'C', 'o', 'p', 0x80}
		out, matches := r.RewriteBytes(binary)
		assert.Equal(t, binary, out)
		assert.Zero(t, matches)
	})

	t.Run("unchanged_content", func(t *testing.T) {
		out, matches := r.RewriteBytes([]byte("nothing to see"))
		assert.Equal(t, "nothing to see", string(out))
		assert.Zero(t, matches)
	})
}
