package quizgen_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quiz-coach/internal/domain"
	"quiz-coach/internal/quizgen"
)

var (
	freeForm = quizgen.FallbackContext{Subject: "국어", Scope: "음운", Difficulty: domain.DifficultyMedium, Type: domain.QuestionTypeFreeForm}
	choice   = quizgen.FallbackContext{Subject: "국어", Scope: "음운", Difficulty: domain.DifficultyMedium, Type: domain.QuestionTypeMultipleChoice}
)

func TestResponseParser_FreeForm(t *testing.T) {
	p := quizgen.NewResponseParser(quizgen.Korean)

	tests := []struct {
		name string
		text string
		want quizgen.Payload
	}{
		{
			name: "all markers",
			text: "문제: 다음에서 사용된 음운의 변동은?\n힌트: ㄴ이 ㄹ과 만나 ㄹ로 바뀜\n정답: 유음화",
			want: quizgen.Payload{Question: "다음에서 사용된 음운의 변동은?", Hint: "ㄴ이 ㄹ과 만나 ㄹ로 바뀜", Answer: "유음화"},
		},
		{
			name: "markers in any order with blank lines and padding",
			text: "\n  정답:   유음화  \n\n힌트: h\n   문제: q\n",
			want: quizgen.Payload{Question: "q", Hint: "h", Answer: "유음화"},
		},
		{
			name: "last match wins",
			text: "문제: first\n정답: a1\n문제: second\n정답: a2",
			want: quizgen.Payload{Question: "second", Answer: "a2"},
		},
		{
			name: "no markers uses first line",
			text: "  Here is your question  \nsomething else\n",
			want: quizgen.Payload{Question: "Here is your question"},
		},
		{
			name: "missing question marker with other markers",
			text: "프롬프트를 따라 작성했습니다.\n힌트: h\n정답: a",
			want: quizgen.Payload{Question: "프롬프트를 따라 작성했습니다.", Hint: "h", Answer: "a"},
		},
		{
			name: "option lines ignored for free form",
			text: "문제: q\n1. one\n정답: a",
			want: quizgen.Payload{Question: "q", Answer: "a"},
		},
		{
			name: "marker with empty value",
			text: "문제:\n힌트:",
			want: quizgen.Payload{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Parse(quizgen.Reply{Text: tt.text}, freeForm)
			assert.Equal(t, tt.want, got)
			assert.Empty(t, got.Options)
		})
	}
}

func TestResponseParser_TrimsAnswerForComparison(t *testing.T) {
	p := quizgen.NewResponseParser(nil)
	got := p.Parse(quizgen.Reply{Text: "문제: q\n힌트: h\n정답:   유음화   "}, freeForm)
	assert.Equal(t, "유음화", got.Answer)
}

func TestResponseParser_MultipleChoiceOptionCount(t *testing.T) {
	p := quizgen.NewResponseParser(quizgen.Korean)

	numbered := func(n int) string {
		var sb strings.Builder
		sb.WriteString("문제: q\n")
		for i := 0; i < n; i++ {
			// only 1-4 are option markers; repeat them for longer replies
			fmt.Fprintf(&sb, "%d. opt%d\n", i%4+1, i+1)
		}
		sb.WriteString("정답: 2\n힌트: h\n")
		return sb.String()
	}

	tests := []struct {
		name string
		n    int
		want []string
	}{
		{"zero options", 0, []string{"", "", "", ""}},
		{"two options", 2, []string{"opt1", "opt2", "", ""}},
		{"four options", 4, []string{"opt1", "opt2", "opt3", "opt4"}},
		{"six options", 6, []string{"opt1", "opt2", "opt3", "opt4"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Parse(quizgen.Reply{Text: numbered(tt.n)}, choice)
			require.Len(t, got.Options, domain.OptionCount)
			assert.Equal(t, tt.want, got.Options)
			assert.Equal(t, "q", got.Question)
			assert.Equal(t, "2", got.Answer)
			assert.Equal(t, "h", got.Hint)
		})
	}
}

func TestResponseParser_OptionLineGrammar(t *testing.T) {
	p := quizgen.NewResponseParser(quizgen.Korean)
	text := "문제: q\n1.국물\n5. five\n10. ten\n2)paren\n 3.   같이 \n4.\n"

	got := p.Parse(quizgen.Reply{Text: text}, choice)

	assert.Equal(t, []string{"국물", "같이", "", ""}, got.Options)
}

func TestResponseParser_Fallback(t *testing.T) {
	p := quizgen.NewResponseParser(quizgen.Korean)

	replies := map[string]quizgen.Reply{
		"call error":         {Err: errors.New("deadline exceeded")},
		"korean sentinel":    {Text: "API 호출 중 오류 발생"},
		"gateway sentinel":   {Text: "GEMINI API error"},
		"error wins on text": {Text: "문제: q", Err: errors.New("boom")},
		"empty reply":        {Text: ""},
		"blank reply":        {Text: "   \n\n  "},
	}

	for name, reply := range replies {
		t.Run(name, func(t *testing.T) {
			got := p.Parse(reply, freeForm)
			assert.True(t, got.Fallback)
			assert.Contains(t, got.Question, "국어")
			assert.Contains(t, got.Question, "음운")
			assert.Equal(t, "[예시] 국어 - 음운 (중) 문제를 생성했습니다.", got.Question)
			assert.Equal(t, "[예시] 국어 힌트입니다.", got.Hint)
			assert.Equal(t, "[예시] 국어 정답입니다.", got.Answer)
			assert.Empty(t, got.Options)

			mc := p.Parse(reply, choice)
			assert.True(t, mc.Fallback)
			assert.Contains(t, mc.Question, "국어")
			assert.Contains(t, mc.Question, "음운")
			assert.NotEmpty(t, mc.Hint)
			assert.Equal(t, quizgen.FallbackChoiceAnswer, mc.Answer)
			require.Len(t, mc.Options, domain.OptionCount)
			for _, opt := range mc.Options {
				assert.NotEmpty(t, opt)
			}
		})
	}
}

func TestResponseParser_SentinelMustBePrefix(t *testing.T) {
	p := quizgen.NewResponseParser(quizgen.Korean)
	got := p.Parse(quizgen.Reply{Text: "문제: GEMINI API error 란?"}, freeForm)
	assert.False(t, got.Fallback)
	assert.Equal(t, "GEMINI API error 란?", got.Question)
}

func TestResponseParser_Rules(t *testing.T) {
	rules := quizgen.NewResponseParser(quizgen.English).Rules()
	assert.Equal(t, []quizgen.LineRule{
		{Prefix: "question:", Field: quizgen.FieldQuestion},
		{Prefix: "hint:", Field: quizgen.FieldHint},
		{Prefix: "answer:", Field: quizgen.FieldAnswer},
	}, rules)
}
