package quizgen

import (
	"fmt"
	"strings"

	"quiz-coach/internal/domain"
)

// PromptRequest describes one question to generate.
type PromptRequest struct {
	Subject    string
	Scope      string
	Difficulty domain.Difficulty
	Type       domain.QuestionType
}

// PromptBuilder renders generation prompts from a locale and an exemplar set.
type PromptBuilder struct {
	locale    *Locale
	exemplars ExemplarSet
}

// NewPromptBuilder creates a PromptBuilder. A nil locale selects Korean.
func NewPromptBuilder(locale *Locale, exemplars ExemplarSet) *PromptBuilder {
	if locale == nil {
		locale = Korean
	}
	return &PromptBuilder{locale: locale, exemplars: exemplars}
}

// Build renders the prompt for req.
func (b *PromptBuilder) Build(req PromptRequest) string {
	p := b.locale.Prompt
	choice := req.Type == domain.QuestionTypeMultipleChoice

	var sb strings.Builder
	if choice {
		sb.WriteString(p.ChoiceTitle)
	} else {
		sb.WriteString(p.FreeFormTitle)
	}
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "%s: %s\n", p.SubjectLabel, req.Subject)
	fmt.Fprintf(&sb, "%s: %s\n", p.ScopeLabel, req.Scope)
	fmt.Fprintf(&sb, "%s: %s\n", p.DifficultyLabel, b.locale.DifficultyLabel(req.Difficulty))
	if !choice {
		sb.WriteString(p.FreeFormTypeLine)
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	if choice {
		sb.WriteString(p.ChoiceInstruction)
	} else {
		sb.WriteString(p.FreeFormInstruction)
	}
	sb.WriteString("\n\n")

	for i, ex := range b.exemplars.For(req.Type) {
		fmt.Fprintf(&sb, p.ExampleHeading, i+1, ex.Title)
		sb.WriteString("\n")
		if choice {
			b.writeChoiceExemplar(&sb, ex)
		} else {
			b.writeFreeFormExemplar(&sb, ex)
		}
		sb.WriteString("\n")
	}

	if choice {
		sb.WriteString(p.ChoiceClosing)
	} else {
		sb.WriteString(p.FreeFormClosing)
	}
	sb.WriteString("\n")
	return sb.String()
}

func (b *PromptBuilder) writeFreeFormExemplar(sb *strings.Builder, ex Exemplar) {
	m := b.locale.Markers
	for i, clue := range ex.Clues {
		if len(ex.Clues) == 1 {
			fmt.Fprintf(sb, "%s: %s\n", m.Clue, clue)
		} else {
			fmt.Fprintf(sb, "%s%d: %s\n", m.Clue, i+1, clue)
		}
	}
	writeMarked(sb, m.Question, ex.Question)
	writeMarked(sb, m.Hint, ex.Hint)
	writeMarked(sb, m.Answer, ex.Answer)
}

func (b *PromptBuilder) writeChoiceExemplar(sb *strings.Builder, ex Exemplar) {
	m := b.locale.Markers
	writeMarked(sb, m.Question, ex.Question)
	for i, opt := range ex.Options {
		fmt.Fprintf(sb, "%d. %s\n", i+1, opt)
	}
	writeMarked(sb, m.Answer, ex.Answer)
	writeMarked(sb, m.Hint, ex.Hint)
}

func writeMarked(sb *strings.Builder, marker, value string) {
	sb.WriteString(marker)
	sb.WriteString(" ")
	sb.WriteString(value)
	sb.WriteString("\n")
}
