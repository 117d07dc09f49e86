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

// Package fingerprint computes comparable content identities for files.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"

	"gitlab.com/tozd/go/errors"
)

// 🔑 Fingerprinter computes a comparable identity for a file. Two files with
// equal fingerprints are treated as content-equal for diff purposes.
type Fingerprinter interface {
	Fingerprint(path string) (string, error)
}

// 📦 ContentFingerprinter hashes the full file content with sha256. This is
// the single fingerprinting policy: size+mtime shortcuts are never mixed in,
// so renamed-but-identical and touched-but-unchanged files compare correctly.
type ContentFingerprinter struct{}

// 🏭 NewContentFingerprinter creates a new ContentFingerprinter
func NewContentFingerprinter() *ContentFingerprinter {
	return &ContentFingerprinter{}
}

// Fingerprint returns the hex sha256 digest of the file's content. Symlinks
// are followed; a broken link or unreadable file is an error for the caller
// to surface, not a silent skip.
func (f *ContentFingerprinter) Fingerprint(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", errors.Errorf("opening file for fingerprint: %w", err)
	}
	defer file.Close()

	h := sha256.New()
	if _, err := io.Copy(h, file); err != nil {
		return "", errors.Errorf("hashing file content: %w", err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
