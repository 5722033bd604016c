package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/convoctl/internal/archive"
	"github.com/fyrsmithlabs/convoctl/internal/render"
)

var (
	// convert command flags
	convertOutputDir string
	convertOverwrite bool
	convertDryRun    bool
)

func init() {
	convertCmd.Flags().StringVarP(&convertOutputDir, "output", "o", "", `output directory (default "markdown_conversations")`)
	convertCmd.Flags().BoolVar(&convertOverwrite, "overwrite", false, "overwrite existing output files")
	convertCmd.Flags().BoolVar(&convertDryRun, "dry-run", false, "report what would be written without writing anything")
}

var convertCmd = &cobra.Command{
	Use:   "convert <input.json>",
	Short: "Convert an archive into per-conversation Markdown documents",
	Long: `Convert a conversation archive into one Markdown document per
conversation, written under the output directory.

Conversion is best effort: unreadable input and per-conversation failures
are reported, and the command always exits 0.

Examples:
  # Convert into the default output directory
  convoctl convert conversations.json

  # Convert into a named directory, replacing existing documents
  convoctl convert conversations.json -o exported --overwrite

  # Preview the run without writing anything
  convoctl convert conversations.json --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	// Config supplies defaults; explicit flags win.
	opts := render.Options{
		OutputDir:     cfg.Convert.OutputDir,
		Overwrite:     cfg.Convert.Overwrite,
		DryRun:        convertDryRun,
		MaxNameLength: cfg.Convert.MaxNameLength,
	}
	if cmd.Flags().Changed("output") {
		opts.OutputDir = convertOutputDir
	}
	if cmd.Flags().Changed("overwrite") {
		opts.Overwrite = convertOverwrite
	}

	convertArchive(logger, opts, args[0])
	return nil
}

// convertArchive runs one conversion end to end. Errors are reported
// through the logger rather than returned; the process still exits 0.
func convertArchive(logger *zap.Logger, opts render.Options, inputFile string) {
	arc, err := archive.Load(inputFile)
	if err != nil {
		logger.Error("cannot read archive", zap.String("file", inputFile), zap.Error(err))
		return
	}

	summary, err := render.New(opts).Run(arc)
	if err != nil {
		logger.Error("conversion aborted", zap.Error(err))
		return
	}

	for _, o := range summary.Outcomes {
		reportOutcome(logger, o, summary.DryRun)
	}
	logger.Info("conversion finished",
		zap.Int("rendered", summary.Rendered),
		zap.Int("skipped", summary.Skipped),
		zap.Int("failed", summary.Failed),
		zap.Bool("dry_run", summary.DryRun),
	)
}

// reportOutcome logs one line per conversation outcome.
func reportOutcome(logger *zap.Logger, o render.Outcome, dryRun bool) {
	switch o.Status {
	case render.StatusRendered:
		msg := "rendered"
		if dryRun {
			msg = "would render"
		}
		logger.Info(msg, zap.String("title", o.Title), zap.String("path", o.Path))
	case render.StatusSkipped:
		logger.Info("skipped", zap.String("title", o.Title), zap.String("reason", o.Reason))
	case render.StatusFailed:
		logger.Error("failed", zap.String("title", o.Title), zap.String("path", o.Path), zap.Error(o.Err))
	}
}
