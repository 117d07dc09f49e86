package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/insyde-fw/smallver/pkg/config"
	"github.com/insyde-fw/smallver/pkg/copyright"
	"github.com/insyde-fw/smallver/pkg/diff"
	"github.com/insyde-fw/smallver/pkg/fingerprint"
	"github.com/insyde-fw/smallver/pkg/output"
	"github.com/insyde-fw/smallver/pkg/status"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

var (
	// Flags
	configFile      string
	outputRoot      string
	verbose         bool
	updateCopyright bool
	newFormat       bool
	excludeDirs     []string
	excludeFiles    []string
	excludeExts     []string
	excludePatterns []string
	holder          string
	year            int
	debug           bool

	// exitCode is 2 when the run completed but some files failed to copy.
	exitCode int
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "smallver <folder_a> <folder_b>",
		Short: "Compare two folders and extract differences with copyright support",
		Args:  cobra.ExactArgs(2),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], args[1])
		},
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	addRootFlags(cmd)
	return cmd
}

// addRootFlags adds flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&configFile, "config", "c", config.DefaultPath, "config file path")
	cmd.Flags().StringVarP(&outputRoot, "output-root", "o", config.DefaultOutputRoot, "root output folder")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print a line per extracted file")
	cmd.Flags().BoolVarP(&updateCopyright, "update-copyright", "u", false, "enable copyright year update")
	cmd.Flags().BoolVarP(&newFormat, "new-copyright-format", "n", false, "write headers without (c) and comma")
	cmd.Flags().StringSliceVar(&excludeDirs, "exclude-dirs", nil, "folder names to exclude")
	cmd.Flags().StringSliceVar(&excludeFiles, "exclude-files", nil, "file names to exclude")
	cmd.Flags().StringSliceVar(&excludeExts, "exclude-exts", nil, "file extensions to exclude")
	cmd.Flags().StringSliceVar(&excludePatterns, "exclude-patterns", nil, "glob patterns to exclude")
	cmd.Flags().StringVar(&holder, "copyright-holder", "", "copyright holder text to recognize")
	cmd.Flags().IntVar(&year, "copyright-year", 0, "year written into headers (default: current year)")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
}

// collectOverrides turns changed CLI flags into a partial config. Flags left
// at their defaults do not override file values.
func collectOverrides(cmd *cobra.Command) config.Overrides {
	ov := config.Overrides{}
	if cmd.Flags().Changed("output-root") {
		ov.OutputRoot = &outputRoot
	}
	if cmd.Flags().Changed("verbose") {
		ov.Verbose = &verbose
	}
	if cmd.Flags().Changed("update-copyright") {
		ov.UpdateCopyright = &updateCopyright
	}
	if cmd.Flags().Changed("new-copyright-format") {
		ov.NewCopyrightFormat = &newFormat
	}
	if cmd.Flags().Changed("exclude-dirs") {
		ov.ExcludeDirs = &excludeDirs
	}
	if cmd.Flags().Changed("exclude-files") {
		ov.ExcludeFiles = &excludeFiles
	}
	if cmd.Flags().Changed("exclude-exts") {
		ov.ExcludeExts = &excludeExts
	}
	if cmd.Flags().Changed("exclude-patterns") {
		ov.ExcludePatterns = &excludePatterns
	}
	if cmd.Flags().Changed("copyright-holder") {
		ov.CopyrightHolder = &holder
	}
	if cmd.Flags().Changed("copyright-year") {
		ov.CopyrightYear = &year
	}
	return ov
}

func run(cmd *cobra.Command, folderA, folderB string) error {
	ctx := cmd.Context()
	logger := zerolog.Ctx(ctx)

	// Load config, then overlay CLI flags. CLI wins.
	cfg, err := config.LoadOrDefault(ctx, configFile, cmd.Flags().Changed("config"))
	if err != nil {
		logger.Error().Err(err).Msg("loading config file")
		return err
	}
	cfg = config.Merge(cfg, collectOverrides(cmd))
	if err := cfg.Validate(); err != nil {
		logger.Error().Err(err).Msg("invalid configuration")
		return err
	}

	// Refuse to wipe the output directory on a bad invocation.
	for _, root := range []string{folderA, folderB} {
		info, err := os.Stat(root)
		if err != nil {
			logger.Error().Str("root", root).Err(err).Msg("reading input root")
			return errors.Errorf("reading input root %s: %w", root, err)
		}
		if !info.IsDir() {
			return errors.Errorf("input root %s is not a directory", root)
		}
	}

	absOutput, err := filepath.Abs(cfg.OutputRoot)
	if err != nil {
		logger.Error().Err(err).Msg("getting absolute output path")
		return errors.Errorf("resolving output root: %w", err)
	}
	cfg.OutputRoot = absOutput

	// The ambient clock stops here; the rewriter itself takes an explicit year.
	var rewriter *copyright.Rewriter
	if cfg.UpdateCopyright {
		rewriteYear := cfg.CopyrightYear
		if rewriteYear == 0 {
			rewriteYear = time.Now().Year()
		}
		rewriter = copyright.New(copyright.Options{
			Year:      rewriteYear,
			Holder:    cfg.CopyrightHolder,
			NewFormat: cfg.NewCopyrightFormat,
		})
	}

	statusMgr := status.NewManager(cmd.OutOrStdout(), status.NewColorFormatter(), cfg.Verbose)

	differ := diff.NewDiffer(&diff.Filter{
		Dirs:     cfg.ExcludeDirs,
		Files:    cfg.ExcludeFiles,
		Exts:     cfg.ExcludeExts,
		Patterns: cfg.ExcludePatterns,
	}, fingerprint.NewContentFingerprinter())

	writer := output.NewWriter(output.Options{
		Root:      cfg.OutputRoot,
		RootA:     folderA,
		RootB:     folderB,
		Rewriter:  rewriter,
		StatusMgr: statusMgr,
	})

	// Wipe before comparing so a previous run's output inside either tree
	// can never leak into the result.
	if err := writer.Prepare(ctx); err != nil {
		logger.Error().Err(err).Msg("preparing output directory")
		return err
	}

	result, err := differ.Compare(ctx, folderA, folderB)
	if err != nil {
		logger.Error().Err(err).Msg("comparing trees")
		return err
	}

	failed := writer.Write(ctx, result)
	statusMgr.PrintSummary(cfg.OutputRoot)

	if failed > 0 {
		exitCode = 2
	}
	return nil
}
