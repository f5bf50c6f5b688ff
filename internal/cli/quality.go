package cli

import (
	"fmt"
	"strings"

	"resumelens/internal/common"
	"resumelens/internal/quality"
	"resumelens/internal/types"

	"github.com/spf13/cobra"
)

var qualityCmd = &cobra.Command{
	Use:   "quality [text-file]",
	Short: "Evaluate the writing quality of resume text",
	Long: `Evaluate the writing quality of free resume text. The command takes
one argument: the path to a plain text file, for example a summary or a list
of bullet points. The text is scored on action verbs, quantified metrics,
technical depth, and professional tone, out of 25.

With --lines each line of the file is treated as a separate bullet point and
the non-empty lines are evaluated as one combined corpus.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		qualityConfig.OutputFormat = common.NormalizeOutputFormat(qualityConfig.OutputFormat)
		if qualityConfig.OutputFormat == "" {
			qualityConfig.OutputFormat = cfg.App.DefaultFormat
		}
		return common.ValidateOutputFormat(qualityConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runQuality,
}

var (
	qualityConfig common.CommandConfig
	qualityLines  bool
)

func init() {
	qualityCmd.Flags().StringVarP(&qualityConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	qualityCmd.Flags().StringVar(&qualityConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	qualityCmd.Flags().BoolVar(&qualityLines, "lines", false, "Treat each line as a separate bullet point")

	_ = qualityCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runQuality(cmd *cobra.Command, args []string) error {
	logger := getLoggerFromContext(cmd.Context())

	createInput := func(contents []string) (string, error) {
		if len(contents) != 1 {
			return "", fmt.Errorf("expected 1 file path, got %d", len(contents))
		}
		return contents[0], nil
	}

	logDetails := func(input string, cfg common.CommandConfig) {
		logger.Info("Starting content quality evaluation",
			"text_chars", len(input),
			"per_line", qualityLines,
			"output_format", cfg.OutputFormat)
	}

	qualityOperation := func(input string) (types.QualityScore, error) {
		if qualityLines {
			return quality.EvaluateAll(strings.Split(input, "\n")), nil
		}
		return quality.Evaluate(input), nil
	}

	err := common.RunLocalCommand(
		logger,
		qualityConfig,
		args,
		createInput,
		qualityOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to evaluate content quality: %w", err)
	}
	logger.Info("Content quality evaluation completed successfully")
	return nil
}
