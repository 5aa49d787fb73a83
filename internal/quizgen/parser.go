package quizgen

import (
	"fmt"
	"strings"

	"quiz-coach/internal/domain"
)

// Field is the payload field a classified line is written to.
type Field int

const (
	FieldQuestion Field = iota
	FieldHint
	FieldAnswer
)

// LineRule assigns every line starting with Prefix to Field.
type LineRule struct {
	Prefix string
	Field  Field
}

// Reply is the outcome of one model call.
type Reply struct {
	Text string
	Err  error
}

// FallbackContext carries what the fallback payload is templated from.
type FallbackContext struct {
	Subject    string
	Scope      string
	Difficulty domain.Difficulty
	Type       domain.QuestionType
}

// Payload is the structured content extracted from a reply.
type Payload struct {
	Question string
	Options  []string
	Hint     string
	Answer   string
	// Fallback is set when the payload was templated rather than parsed.
	Fallback bool
}

// ResponseParser turns free-form model replies into payloads. It never fails.
type ResponseParser struct {
	locale *Locale
	rules  []LineRule
}

// NewResponseParser creates a parser for the locale's markers. A nil locale selects Korean.
func NewResponseParser(locale *Locale) *ResponseParser {
	if locale == nil {
		locale = Korean
	}
	return &ResponseParser{
		locale: locale,
		rules: []LineRule{
			{Prefix: locale.Markers.Question, Field: FieldQuestion},
			{Prefix: locale.Markers.Hint, Field: FieldHint},
			{Prefix: locale.Markers.Answer, Field: FieldAnswer},
		},
	}
}

// Rules returns the ordered line grammar.
func (p *ResponseParser) Rules() []LineRule {
	return p.rules
}

// Parse extracts a payload from reply, or templates a fallback when the call failed.
func (p *ResponseParser) Parse(reply Reply, fc FallbackContext) Payload {
	if p.failed(reply) {
		return p.fallback(fc)
	}

	choice := fc.Type == domain.QuestionTypeMultipleChoice
	var (
		out       Payload
		firstLine string
		sawQ      bool
	)
	for _, raw := range strings.Split(reply.Text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if firstLine == "" {
			firstLine = line
		}

		if field, rest, ok := p.classify(line); ok {
			switch field {
			case FieldQuestion:
				out.Question = rest
				sawQ = true
			case FieldHint:
				out.Hint = rest
			case FieldAnswer:
				out.Answer = rest
			}
			continue
		}
		if choice && isOptionLine(line) {
			out.Options = append(out.Options, strings.TrimSpace(line[2:]))
		}
	}

	if !sawQ {
		out.Question = firstLine
	}
	if choice {
		out.Options = normalizeOptions(out.Options)
	}
	return out
}

func (p *ResponseParser) failed(reply Reply) bool {
	if reply.Err != nil || strings.TrimSpace(reply.Text) == "" {
		return true
	}
	for _, sentinel := range p.locale.ErrorSentinels {
		if strings.HasPrefix(reply.Text, sentinel) {
			return true
		}
	}
	return false
}

func (p *ResponseParser) classify(line string) (Field, string, bool) {
	for _, r := range p.rules {
		if strings.HasPrefix(line, r.Prefix) {
			return r.Field, strings.TrimSpace(line[len(r.Prefix):]), true
		}
	}
	return 0, "", false
}

func (p *ResponseParser) fallback(fc FallbackContext) Payload {
	f := p.locale.Fallback
	out := Payload{
		Question: fmt.Sprintf(f.Question, fc.Subject, fc.Scope, p.locale.DifficultyLabel(fc.Difficulty)),
		Hint:     fmt.Sprintf(f.Hint, fc.Subject),
		Answer:   fmt.Sprintf(f.Answer, fc.Subject),
		Fallback: true,
	}
	if fc.Type == domain.QuestionTypeMultipleChoice {
		out.Options = make([]string, domain.OptionCount)
		for i := range out.Options {
			out.Options[i] = fmt.Sprintf(f.Option, fc.Subject, i+1)
		}
		out.Answer = FallbackChoiceAnswer
	}
	return out
}

// isOptionLine matches a leading digit 1-4 followed by a period.
func isOptionLine(line string) bool {
	return len(line) >= 2 && line[0] >= '1' && line[0] <= '4' && line[1] == '.'
}

func normalizeOptions(opts []string) []string {
	out := make([]string, domain.OptionCount)
	copy(out, opts)
	return out
}
