package main

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/convoctl/internal/archive"
	"github.com/fyrsmithlabs/convoctl/internal/selector"
)

var (
	// filter command flags
	filterUUIDs       []string
	filterNamePattern string
)

func init() {
	filterCmd.Flags().StringArrayVar(&filterUUIDs, "uuids", nil, "conversation identifier to keep (repeat the flag for multiple)")
	filterCmd.Flags().StringVar(&filterNamePattern, "name-pattern", "", "case-insensitive regular expression matched against conversation names")
	filterCmd.MarkFlagsOneRequired("uuids", "name-pattern")
	filterCmd.MarkFlagsMutuallyExclusive("uuids", "name-pattern")
}

var filterCmd = &cobra.Command{
	Use:   "filter <input.json> <output.json>",
	Short: "Filter an archive down to a subset of conversations",
	Long: `Filter a conversation archive by identifier or by name pattern and
write the retained conversations to a new archive file.

Exactly one of --uuids or --name-pattern must be given. If nothing
matches, no output file is written.

Examples:
  # Keep two conversations by identifier
  convoctl filter conversations.json subset.json --uuids u1 --uuids u2

  # Keep conversations whose name mentions python
  convoctl filter conversations.json subset.json --name-pattern python`,
	Args: cobra.ExactArgs(2),
	RunE: runFilter,
}

func runFilter(cmd *cobra.Command, args []string) error {
	_, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	sel, err := buildSelector(logger, filterUUIDs, filterNamePattern)
	if err != nil {
		logger.Error("cannot build selection", zap.Error(err))
		return nil
	}

	filterArchive(logger, sel, args[0], args[1])
	return nil
}

// buildSelector constructs the selection mode chosen on the command line.
// Identifiers that do not parse as UUIDs are still matched literally, but
// flagged: conversation identifiers in exports are UUIDs, so a malformed
// one is usually a typo.
func buildSelector(logger *zap.Logger, ids []string, pattern string) (selector.Selector, error) {
	if len(ids) > 0 {
		for _, id := range ids {
			if _, err := uuid.Parse(id); err != nil {
				logger.Warn("identifier is not a valid UUID", zap.String("id", id))
			}
		}
		return selector.ByIdentifiers(ids)
	}
	return selector.ByPattern(pattern)
}

// filterArchive runs one filter operation end to end. Errors are reported
// through the logger rather than returned.
func filterArchive(logger *zap.Logger, sel selector.Selector, inputFile, outputFile string) {
	arc, err := archive.Load(inputFile)
	if err != nil {
		logger.Error("cannot read archive", zap.String("file", inputFile), zap.Error(err))
		return
	}

	retained := selector.Apply(sel, arc)
	if len(retained) == 0 {
		logger.Warn("no conversations matched, not writing output",
			zap.String("criteria", sel.String()),
			zap.String("file", outputFile),
		)
		return
	}

	if err := archive.Save(outputFile, retained); err != nil {
		logger.Error("cannot write filtered archive", zap.String("file", outputFile), zap.Error(err))
		return
	}
	logger.Info("filtered archive written",
		zap.Int("conversations", len(retained)),
		zap.String("file", outputFile),
	)
}
