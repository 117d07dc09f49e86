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

// Package config loads and merges smallver run configuration.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"gitlab.com/tozd/go/errors"
)

const (
	// DefaultOutputRoot is where diff output lands when nothing else is set.
	DefaultOutputRoot = "./MyDiffOutput"

	// DefaultPath is the config file looked up when no -c flag is given. A
	// missing file at this path is not an error; defaults apply instead.
	DefaultPath = "./SmallVersion.yaml"
)

// 📚 Config represents the complete run configuration.
type Config struct {
	OutputRoot         string   `json:"output_root,omitempty" yaml:"output_root,omitempty" hcl:"output_root,optional"`
	Verbose            bool     `json:"verbose,omitempty" yaml:"verbose,omitempty" hcl:"verbose,optional"`
	UpdateCopyright    bool     `json:"update_copyright,omitempty" yaml:"update_copyright,omitempty" hcl:"update_copyright,optional"`
	NewCopyrightFormat bool     `json:"new_copyright_format,omitempty" yaml:"new_copyright_format,omitempty" hcl:"new_copyright_format,optional"`
	ExcludeDirs        []string `json:"exclude_dirs,omitempty" yaml:"exclude_dirs,omitempty" hcl:"exclude_dirs,optional"`
	ExcludeFiles       []string `json:"exclude_files,omitempty" yaml:"exclude_files,omitempty" hcl:"exclude_files,optional"`
	ExcludeExts        []string `json:"exclude_exts,omitempty" yaml:"exclude_exts,omitempty" hcl:"exclude_exts,optional"`
	ExcludePatterns    []string `json:"exclude_patterns,omitempty" yaml:"exclude_patterns,omitempty" hcl:"exclude_patterns,optional"`
	CopyrightHolder    string   `json:"copyright_holder,omitempty" yaml:"copyright_holder,omitempty" hcl:"copyright_holder,optional"`
	CopyrightYear      int      `json:"copyright_year,omitempty" yaml:"copyright_year,omitempty" hcl:"copyright_year,optional"`
}

// 🏭 Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		OutputRoot: DefaultOutputRoot,
	}
}

// 🔍 Validate checks the configuration and normalizes paths and extensions.
func (cfg *Config) Validate() error {
	if cfg.OutputRoot == "" {
		cfg.OutputRoot = DefaultOutputRoot
	}
	cfg.OutputRoot = filepath.Clean(cfg.OutputRoot)

	if cfg.CopyrightYear < 0 {
		return errors.Errorf("copyright_year must not be negative: %d", cfg.CopyrightYear)
	}

	// Extensions are matched against path.Ext output, which keeps the dot.
	for i, ext := range cfg.ExcludeExts {
		if ext == "" {
			return errors.Errorf("exclude_exts[%d] is empty", i)
		}
		if !strings.HasPrefix(ext, ".") {
			cfg.ExcludeExts[i] = "." + ext
		}
	}

	return nil
}

// 📝 String returns a short description of where output goes.
func (cfg *Config) String() string {
	return fmt.Sprintf("output=%s update_copyright=%v new_format=%v",
		cfg.OutputRoot, cfg.UpdateCopyright, cfg.NewCopyrightFormat)
}
