package quizgen

import (
	"context"

	"go.uber.org/zap"

	"quiz-coach/internal/domain"
	"quiz-coach/internal/logger"
)

// Pipeline runs one generation round: draw a difficulty, build the prompt,
// call the model and parse the reply.
type Pipeline struct {
	generator domain.TextGenerator
	selector  *DifficultySelector
	builder   *PromptBuilder
	parser    *ResponseParser
}

func NewPipeline(generator domain.TextGenerator, selector *DifficultySelector, builder *PromptBuilder, parser *ResponseParser) *Pipeline {
	return &Pipeline{
		generator: generator,
		selector:  selector,
		builder:   builder,
		parser:    parser,
	}
}

// Locale is the locale prompts are rendered in.
func (p *Pipeline) Locale() *Locale {
	return p.builder.locale
}

// Result is an unsaved question plus how its content was obtained.
type Result struct {
	Question *domain.Question
	Prompt   string
	Fallback bool
}

// Generate never fails: a failed or timed out model call yields the fallback payload.
func (p *Pipeline) Generate(ctx context.Context, subject, scope string, qt domain.QuestionType) Result {
	difficulty, weight := p.selector.Select()
	prompt := p.builder.Build(PromptRequest{
		Subject:    subject,
		Scope:      scope,
		Difficulty: difficulty,
		Type:       qt,
	})

	text, err := p.generator.Generate(ctx, prompt)
	payload := p.parser.Parse(Reply{Text: text, Err: err}, FallbackContext{
		Subject:    subject,
		Scope:      scope,
		Difficulty: difficulty,
		Type:       qt,
	})
	if payload.Fallback {
		logger.Get().Warn("Using fallback question payload",
			zap.String("subject", subject),
			zap.String("scope", scope),
			zap.String("difficulty", string(difficulty)),
			zap.Error(err))
	}

	return Result{
		Question: &domain.Question{
			Subject:    subject,
			Scope:      scope,
			Question:   payload.Question,
			Options:    payload.Options,
			Hint:       payload.Hint,
			Answer:     payload.Answer,
			Difficulty: difficulty,
			Score:      weight,
		},
		Prompt:   prompt,
		Fallback: payload.Fallback,
	}
}
