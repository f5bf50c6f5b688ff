package cli

import (
	"encoding/json"
	"fmt"

	"resumelens/internal/common"
	"resumelens/internal/scoring"
	"resumelens/internal/types"
	"resumelens/internal/watch"

	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score [resume-file]",
	Short: "Score a resume snapshot against ATS criteria",
	Long: `Score a structured resume snapshot against rule-based ATS criteria.
The command takes one argument: the path to a resume snapshot in JSON format.
The result includes a total score out of 100, a per-section breakdown, a
letter grade, and actionable feedback.

With --watch the file is rescored automatically every time it changes.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		scoreConfig.OutputFormat = common.NormalizeOutputFormat(scoreConfig.OutputFormat)
		if scoreConfig.OutputFormat == "" {
			scoreConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(scoreConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runScore,
}

var (
	scoreConfig common.CommandConfig
	scoreWatch  bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	scoreCmd.Flags().StringVar(&scoreConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	scoreCmd.Flags().BoolVarP(&scoreWatch, "watch", "w", false, "Rescore the file whenever it changes")

	// Add completion for format flag
	_ = scoreCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runScore(cmd *cobra.Command, args []string) error {
	logger := getLoggerFromContext(cmd.Context())

	scoreOnce := func() error {
		createInput := func(contents []string) (types.ResumeSnapshot, error) {
			if len(contents) != 1 {
				return types.ResumeSnapshot{}, fmt.Errorf("expected 1 file path, got %d", len(contents))
			}
			var snapshot types.ResumeSnapshot
			if err := json.Unmarshal([]byte(contents[0]), &snapshot); err != nil {
				return types.ResumeSnapshot{}, fmt.Errorf("failed to parse resume snapshot: %w", err)
			}
			return snapshot, nil
		}

		logDetails := func(input types.ResumeSnapshot, cfg common.CommandConfig) {
			logger.Info("Starting resume scoring",
				"experience_entries", len(input.Experience),
				"skills", len(input.Skills),
				"output_format", cfg.OutputFormat)
		}

		scoreOperation := func(input types.ResumeSnapshot) (types.ATSScore, error) {
			return scoring.Calculate(input), nil
		}

		return common.RunLocalCommand(
			logger,
			scoreConfig,
			args,
			createInput,
			scoreOperation,
			logDetails,
		)
	}

	if err := scoreOnce(); err != nil {
		return fmt.Errorf("failed to score resume: %w", err)
	}

	if !scoreWatch {
		logger.Info("Resume scoring completed successfully")
		return nil
	}

	return watchAndRescore(cmd, args[0], scoreOnce)
}

// watchAndRescore keeps rescoring the file until the command context is done
func watchAndRescore(cmd *cobra.Command, file string, scoreOnce func() error) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	watcher, err := watch.NewFileWatcher(file, cfg.App.WatchDebounce, func() {
		if err := scoreOnce(); err != nil {
			logger.LogError(err, "Rescoring failed", "file", file)
		}
	}, logger)
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	if err := watcher.Start(); err != nil {
		return fmt.Errorf("failed to start file watcher: %w", err)
	}
	defer func() {
		if err := watcher.Stop(); err != nil {
			logger.LogError(err, "Failed to stop file watcher")
		}
	}()

	fmt.Printf("Watching %s for changes (press Ctrl+C to stop)\n", file)
	<-cmd.Context().Done()
	return nil
}
