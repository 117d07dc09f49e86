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

// Package copyright normalizes copyright header lines in file content.
package copyright

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// DefaultHolder is the holder text recognized when none is configured.
const DefaultHolder = "Insyde Software Corp. All Rights Reserved."

// 🔧 Options configures a Rewriter. Year and Holder are explicit so the
// transformation stays pure: nothing is read from the clock or other ambient
// state at rewrite time.
type Options struct {
	Year      int    // Year written into normalized headers
	Holder    string // Holder text, defaults to DefaultHolder
	NewFormat bool   // Strip "(c)" and the comma from the output
}

// 🔄 Rewriter rewrites legacy copyright headers to a single normalized form.
//
// Recognized inputs cover both the ranged and single-year variants:
//
//	Copyright (c) 2013-2023, <holder>
//	Copyright (c) 2023 <holder>
//	Copyright 2023 <holder>
//
// Output is either the legacy rendering "Copyright (c) <year>, <holder>" or
// the new rendering "Copyright <year> <holder>". Every matching occurrence in
// the content is rewritten, not just the first. The transformation is
// idempotent: normalized text matches the pattern and rewrites to itself.
type Rewriter struct {
	year        int
	newFormat   bool
	holder      string
	pattern     *regexp.Regexp
	replacement string
}

// 📝 Result describes one rewrite pass over a piece of content.
type Result struct {
	Original  string // Content as given
	Rewritten string // Content after normalization
	Changed   bool   // Whether any text actually changed
	Matches   int    // Number of header occurrences that matched
}

// 🏭 New creates a Rewriter for the given options.
func New(opts Options) *Rewriter {
	holder := opts.Holder
	if holder == "" {
		holder = DefaultHolder
	}

	// Groups: keyword, optional "(c)", optional range start, target year,
	// optional comma and spacing, holder. Only the holder survives into the
	// output, so both separator styles normalize to the configured format.
	pattern := regexp.MustCompile(
		`(Copyright\s*)(\(c\)\s*)?(\d{4}\s*-\s*)?(\d{4})(,?\s*)(` + regexp.QuoteMeta(holder) + `)`,
	)

	var replacement string
	if opts.NewFormat {
		replacement = fmt.Sprintf("Copyright %d %s", opts.Year, holder)
	} else {
		replacement = fmt.Sprintf("Copyright (c) %d, %s", opts.Year, holder)
	}

	return &Rewriter{
		year:        opts.Year,
		newFormat:   opts.NewFormat,
		holder:      holder,
		pattern:     pattern,
		replacement: replacement,
	}
}

// Rewrite normalizes all copyright header occurrences in content. Content
// with no matching header passes through unchanged and is not an error.
func (r *Rewriter) Rewrite(content string) *Result {
	result := &Result{
		Original:  content,
		Rewritten: content,
	}

	matches := r.pattern.FindAllStringIndex(content, -1)
	if len(matches) == 0 {
		return result
	}

	result.Matches = len(matches)
	result.Rewritten = r.pattern.ReplaceAllLiteralString(content, r.replacement)
	result.Changed = result.Rewritten != content
	return result
}

// RewriteBytes normalizes headers in raw file content, returning the number
// of occurrences rewritten (zero when nothing changed). Content that is not
// valid UTF-8 is assumed binary and passed through untouched.
func (r *Rewriter) RewriteBytes(content []byte) ([]byte, int) {
	if !utf8.Valid(content) {
		return content, 0
	}
	result := r.Rewrite(string(content))
	if !result.Changed {
		return content, 0
	}
	return []byte(result.Rewritten), result.Matches
}

// Year returns the year written into normalized headers.
func (r *Rewriter) Year() int {
	return r.year
}
