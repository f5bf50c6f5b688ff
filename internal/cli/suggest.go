package cli

import (
	"context"
	"fmt"

	"resumelens/internal/ai"
	"resumelens/internal/common"
	"resumelens/internal/types"

	"github.com/spf13/cobra"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Generate AI-backed suggestions for a target job",
	Long: `Generate AI-backed suggestions for a target job description.
Each subcommand takes the path to a job description file in plain text
format and requires an AI API key (RESUMELENS_AI_APIKEY).`,
}

var (
	suggestConfig    common.CommandConfig
	suggestExp       string
	suggestSkillList []string
	suggestTitle     string
	suggestCompany   string
	suggestExisting  []string
)

var suggestKeywordsCmd = &cobra.Command{
	Use:   "keywords [job-description-file]",
	Short: "Extract keywords from a job description",
	Long: `Extract the skills, responsibilities, qualifications, action verbs,
and keywords a job description asks for.`,
	Args:    cobra.ExactArgs(1),
	PreRunE: suggestPreRun,
	RunE:    runSuggestKeywords,
}

var suggestSummaryCmd = &cobra.Command{
	Use:   "summary [job-description-file]",
	Short: "Draft professional summary options",
	Long: `Draft three professional summary options tailored to a job
description. Pass --experience and --skills to ground the drafts in your
background.`,
	Args:    cobra.ExactArgs(1),
	PreRunE: suggestPreRun,
	RunE:    runSuggestSummary,
}

var suggestBulletsCmd = &cobra.Command{
	Use:   "bullets [job-description-file]",
	Short: "Draft experience bullet points",
	Long: `Draft five achievement-oriented bullet points for a role, tailored
to a job description. The --title flag is required; pass --existing to avoid
duplicating bullet points you already have.`,
	Args:    cobra.ExactArgs(1),
	PreRunE: suggestPreRun,
	RunE:    runSuggestBullets,
}

var suggestSkillsCmd = &cobra.Command{
	Use:   "skills [job-description-file]",
	Short: "Suggest skills for a target job",
	Long: `Suggest skills relevant to a job description, each with a match
percentage. Pass --skills to exclude skills you already list.`,
	Args:    cobra.ExactArgs(1),
	PreRunE: suggestPreRun,
	RunE:    runSuggestSkills,
}

func suggestPreRun(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	suggestConfig.OutputFormat = common.NormalizeOutputFormat(suggestConfig.OutputFormat)
	if suggestConfig.OutputFormat == "" {
		suggestConfig.OutputFormat = cfg.App.DefaultFormat
	}
	return common.ValidateOutputFormat(suggestConfig.OutputFormat, cfg.App.SupportedFormats)
}

func init() {
	suggestCmd.PersistentFlags().StringVarP(&suggestConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	suggestCmd.PersistentFlags().StringVar(&suggestConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")

	suggestSummaryCmd.Flags().StringVar(&suggestExp, "experience", "", "Short description of your experience")
	suggestSummaryCmd.Flags().StringSliceVar(&suggestSkillList, "skills", nil, "Skills to highlight")

	suggestBulletsCmd.Flags().StringVar(&suggestTitle, "title", "", "Job title the bullet points are for")
	suggestBulletsCmd.Flags().StringVar(&suggestCompany, "company", "", "Company the role is at")
	suggestBulletsCmd.Flags().StringSliceVar(&suggestExisting, "existing", nil, "Existing bullet points to avoid duplicating")
	_ = suggestBulletsCmd.MarkFlagRequired("title")

	suggestSkillsCmd.Flags().StringSliceVar(&suggestSkillList, "skills", nil, "Skills you already list")

	suggestCmd.AddCommand(suggestKeywordsCmd)
	suggestCmd.AddCommand(suggestSummaryCmd)
	suggestCmd.AddCommand(suggestBulletsCmd)
	suggestCmd.AddCommand(suggestSkillsCmd)
}

// jobDescriptionInput builds a CreateInputFunc for commands whose only file
// argument is the job description.
func jobDescriptionInput[Input any](build func(jobDescription string) Input) common.CreateInputFunc[Input] {
	return func(contents []string) (Input, error) {
		var zero Input
		if len(contents) != 1 {
			return zero, fmt.Errorf("expected 1 file path, got %d", len(contents))
		}
		return build(contents[0]), nil
	}
}

func runSuggestKeywords(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	keywordsAIConfig := cfg.GetKeywordsConfig()
	aiService, err := ai.NewService(&keywordsAIConfig, "keywords", logger)
	if err != nil {
		return fmt.Errorf("failed to create AI service: %w", err)
	}

	createInput := jobDescriptionInput(func(jobDescription string) types.ExtractKeywordsInput {
		return types.ExtractKeywordsInput{JobDescription: jobDescription}
	})

	logDetails := func(input types.ExtractKeywordsInput, cfg common.CommandConfig) {
		logger.Info("Starting keyword extraction",
			"job_chars", len(input.JobDescription),
			"output_format", cfg.OutputFormat)
	}

	keywordsOperation := func(ctx context.Context, input types.ExtractKeywordsInput) (types.KeywordExtraction, *ai.TokenUsage, error) {
		return aiService.Provider.ExtractKeywords(ctx, input)
	}

	err = common.RunAICommand(
		cmd.Context(),
		logger,
		suggestConfig,
		args,
		createInput,
		keywordsOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to extract keywords: %w", err)
	}
	logger.Info("Keyword extraction completed successfully")
	return nil
}

func runSuggestSummary(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	summaryAIConfig := cfg.GetSummaryConfig()
	aiService, err := ai.NewService(&summaryAIConfig, "summary", logger)
	if err != nil {
		return fmt.Errorf("failed to create AI service: %w", err)
	}

	createInput := jobDescriptionInput(func(jobDescription string) types.SuggestSummaryInput {
		return types.SuggestSummaryInput{
			JobDescription: jobDescription,
			Experience:     suggestExp,
			Skills:         suggestSkillList,
		}
	})

	logDetails := func(input types.SuggestSummaryInput, cfg common.CommandConfig) {
		logger.Info("Starting summary suggestion",
			"job_chars", len(input.JobDescription),
			"skills", len(input.Skills),
			"output_format", cfg.OutputFormat)
	}

	summaryOperation := func(ctx context.Context, input types.SuggestSummaryInput) (types.SummarySuggestions, *ai.TokenUsage, error) {
		return aiService.Provider.SuggestSummaries(ctx, input)
	}

	err = common.RunAICommand(
		cmd.Context(),
		logger,
		suggestConfig,
		args,
		createInput,
		summaryOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to suggest summaries: %w", err)
	}
	logger.Info("Summary suggestion completed successfully")
	return nil
}

func runSuggestBullets(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	bulletsAIConfig := cfg.GetBulletsConfig()
	aiService, err := ai.NewService(&bulletsAIConfig, "bullets", logger)
	if err != nil {
		return fmt.Errorf("failed to create AI service: %w", err)
	}

	createInput := jobDescriptionInput(func(jobDescription string) types.SuggestBulletsInput {
		return types.SuggestBulletsInput{
			JobDescription:  jobDescription,
			JobTitle:        suggestTitle,
			Company:         suggestCompany,
			ExistingBullets: suggestExisting,
		}
	})

	logDetails := func(input types.SuggestBulletsInput, cfg common.CommandConfig) {
		logger.Info("Starting bullet point suggestion",
			"job_chars", len(input.JobDescription),
			"job_title", input.JobTitle,
			"existing_bullets", len(input.ExistingBullets),
			"output_format", cfg.OutputFormat)
	}

	bulletsOperation := func(ctx context.Context, input types.SuggestBulletsInput) (types.BulletSuggestions, *ai.TokenUsage, error) {
		return aiService.Provider.SuggestBullets(ctx, input)
	}

	err = common.RunAICommand(
		cmd.Context(),
		logger,
		suggestConfig,
		args,
		createInput,
		bulletsOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to suggest bullet points: %w", err)
	}
	logger.Info("Bullet point suggestion completed successfully")
	return nil
}

func runSuggestSkills(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	skillsAIConfig := cfg.GetSkillsConfig()
	aiService, err := ai.NewService(&skillsAIConfig, "skills", logger)
	if err != nil {
		return fmt.Errorf("failed to create AI service: %w", err)
	}

	createInput := jobDescriptionInput(func(jobDescription string) types.SuggestSkillsInput {
		return types.SuggestSkillsInput{
			JobDescription: jobDescription,
			CurrentSkills:  suggestSkillList,
		}
	})

	logDetails := func(input types.SuggestSkillsInput, cfg common.CommandConfig) {
		logger.Info("Starting skill suggestion",
			"job_chars", len(input.JobDescription),
			"current_skills", len(input.CurrentSkills),
			"output_format", cfg.OutputFormat)
	}

	skillsOperation := func(ctx context.Context, input types.SuggestSkillsInput) (types.SkillSuggestions, *ai.TokenUsage, error) {
		return aiService.Provider.SuggestSkills(ctx, input)
	}

	err = common.RunAICommand(
		cmd.Context(),
		logger,
		suggestConfig,
		args,
		createInput,
		skillsOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to suggest skills: %w", err)
	}
	logger.Info("Skill suggestion completed successfully")
	return nil
}
