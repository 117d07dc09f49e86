package config

// 🔀 Overrides is a partial configuration collected from CLI flags. Nil
// fields were not set on the command line and leave the file value alone.
type Overrides struct {
	OutputRoot         *string
	Verbose            *bool
	UpdateCopyright    *bool
	NewCopyrightFormat *bool
	ExcludeDirs        *[]string
	ExcludeFiles       *[]string
	ExcludeExts        *[]string
	ExcludePatterns    *[]string
	CopyrightHolder    *string
	CopyrightYear      *int
}

// Merge applies CLI overrides onto a file-loaded configuration. The
// precedence rule is single and deterministic: CLI wins, then the file
// value, then package defaults (already applied by Validate).
func Merge(cfg *Config, ov Overrides) *Config {
	if ov.OutputRoot != nil {
		cfg.OutputRoot = *ov.OutputRoot
	}
	if ov.Verbose != nil {
		cfg.Verbose = *ov.Verbose
	}
	if ov.UpdateCopyright != nil {
		cfg.UpdateCopyright = *ov.UpdateCopyright
	}
	if ov.NewCopyrightFormat != nil {
		cfg.NewCopyrightFormat = *ov.NewCopyrightFormat
	}
	if ov.ExcludeDirs != nil {
		cfg.ExcludeDirs = *ov.ExcludeDirs
	}
	if ov.ExcludeFiles != nil {
		cfg.ExcludeFiles = *ov.ExcludeFiles
	}
	if ov.ExcludeExts != nil {
		cfg.ExcludeExts = *ov.ExcludeExts
	}
	if ov.ExcludePatterns != nil {
		cfg.ExcludePatterns = *ov.ExcludePatterns
	}
	if ov.CopyrightHolder != nil {
		cfg.CopyrightHolder = *ov.CopyrightHolder
	}
	if ov.CopyrightYear != nil {
		cfg.CopyrightYear = *ov.CopyrightYear
	}
	return cfg
}
