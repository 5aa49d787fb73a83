package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"quiz-coach/internal/app"
	"quiz-coach/internal/domain"
	"quiz-coach/internal/dto"
	"quiz-coach/internal/logger"
	"quiz-coach/internal/quizgen"
)

type generateOutput struct {
	Prompt   string               `json:"prompt,omitempty"`
	Fallback bool                 `json:"fallback"`
	Question dto.QuestionResponse `json:"question"`
}

// NewGenerateCmd prints one generated question without storing it.
func NewGenerateCmd() *cobra.Command {
	var (
		subject    string
		scope      string
		choice     bool
		showPrompt bool
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one question and print it as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(subject) == "" || strings.TrimSpace(scope) == "" {
				return fmt.Errorf("--subject and --scope are required")
			}
			cfg, err := bootstrap()
			if err != nil {
				return err
			}
			defer logger.Sync()

			pipeline, err := app.NewPipeline(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			qt := domain.QuestionTypeFreeForm
			if choice {
				qt = domain.QuestionTypeMultipleChoice
			}
			return runGenerate(cmd.Context(), cmd.OutOrStdout(), pipeline, subject, scope, qt, showPrompt)
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "", "subject name")
	cmd.Flags().StringVar(&scope, "scope", "", "scope within the subject")
	cmd.Flags().BoolVar(&choice, "choice", false, "generate a four-option multiple-choice question")
	cmd.Flags().BoolVar(&showPrompt, "prompt", false, "include the prompt sent to the model")
	return cmd
}

func runGenerate(ctx context.Context, w io.Writer, pipeline *quizgen.Pipeline, subject, scope string, qt domain.QuestionType, showPrompt bool) error {
	res := pipeline.Generate(ctx, subject, scope, qt)
	out := generateOutput{
		Fallback: res.Fallback,
		Question: dto.NewQuestionResponse(res.Question, pipeline.Locale()),
	}
	if showPrompt {
		out.Prompt = res.Prompt
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(out)
}
