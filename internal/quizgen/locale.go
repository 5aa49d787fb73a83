package quizgen

import (
	"fmt"

	"quiz-coach/internal/domain"
)

// Markers are the literal line prefixes shared by the prompt exemplars and the parser.
type Markers struct {
	Question string
	Hint     string
	Answer   string
	Clue     string
}

// PromptText holds the fixed sentences of a generation prompt.
type PromptText struct {
	FreeFormTitle       string
	ChoiceTitle         string
	SubjectLabel        string
	ScopeLabel          string
	DifficultyLabel     string
	FreeFormTypeLine    string
	FreeFormInstruction string
	ChoiceInstruction   string
	ExampleHeading      string // printf format: index, exemplar title
	FreeFormClosing     string
	ChoiceClosing       string
}

// FallbackText holds printf templates for the payload used when the model call fails.
type FallbackText struct {
	Question string // subject, scope, difficulty label
	Hint     string // subject
	Answer   string // subject
	Option   string // subject, option number
}

// Locale bundles everything language-specific about the pipeline.
type Locale struct {
	Name             string
	Markers          Markers
	DifficultyLabels map[domain.Difficulty]string
	Prompt           PromptText
	Fallback         FallbackText
	// ErrorSentinels are reply prefixes some gateways return in place of an error.
	ErrorSentinels []string
}

// FallbackChoiceAnswer is the fixed answer index of a multiple-choice fallback payload.
const FallbackChoiceAnswer = "1"

// Korean is the default locale.
var Korean = &Locale{
	Name: "ko",
	Markers: Markers{
		Question: "문제:",
		Hint:     "힌트:",
		Answer:   "정답:",
		Clue:     "단서",
	},
	DifficultyLabels: map[domain.Difficulty]string{
		domain.DifficultyHigh:   "상",
		domain.DifficultyMedium: "중",
		domain.DifficultyLow:    "하",
	},
	Prompt: PromptText{
		FreeFormTitle:       "[문제 생성 요청]",
		ChoiceTitle:         "[4지선다 문제 생성 요청]",
		SubjectLabel:        "과목",
		ScopeLabel:          "범위",
		DifficultyLabel:     "난이도",
		FreeFormTypeLine:    "문제 유형: 단서형, 객관식, 단답형 등 다양한 유형 중 랜덤",
		FreeFormInstruction: "아래 예시처럼 문제, 힌트, 정답만 만들어줘. (보기/선택지는 필요 없음)",
		ChoiceInstruction:   "아래 예시처럼 문제, 보기 4개(1.~4.), 정답, 힌트를 만들어줘.",
		ExampleHeading:      "예시%d(%s)",
		FreeFormClosing:     "정답은 반드시 하나만(번호가 아니라 내용) 제공해줘.",
		ChoiceClosing:       "정답은 반드시 보기 번호 하나만 숫자로 제공해줘.",
	},
	Fallback: FallbackText{
		Question: "[예시] %s - %s (%s) 문제를 생성했습니다.",
		Hint:     "[예시] %s 힌트입니다.",
		Answer:   "[예시] %s 정답입니다.",
		Option:   "[예시] %s 보기 %d",
	},
	ErrorSentinels: []string{"API 호출 중 오류", "GEMINI API error"},
}

// English is provided for deployments outside Korean schools.
var English = &Locale{
	Name: "en",
	Markers: Markers{
		Question: "question:",
		Hint:     "hint:",
		Answer:   "answer:",
		Clue:     "clue",
	},
	DifficultyLabels: map[domain.Difficulty]string{
		domain.DifficultyHigh:   "high",
		domain.DifficultyMedium: "medium",
		domain.DifficultyLow:    "low",
	},
	Prompt: PromptText{
		FreeFormTitle:       "[Question generation request]",
		ChoiceTitle:         "[Multiple-choice question generation request]",
		SubjectLabel:        "Subject",
		ScopeLabel:          "Scope",
		DifficultyLabel:     "Difficulty",
		FreeFormTypeLine:    "Question type: pick randomly among clue-based, short-answer and similar types",
		FreeFormInstruction: "Following the examples below, write only the question, the hint and the answer. (No options.)",
		ChoiceInstruction:   "Following the examples below, write the question, four options (1. to 4.), the answer and the hint.",
		ExampleHeading:      "Example %d (%s)",
		FreeFormClosing:     "Give exactly one answer, as content rather than a number.",
		ChoiceClosing:       "Give exactly one answer, as the option number only.",
	},
	Fallback: FallbackText{
		Question: "[sample] %s - %s (%s) question placeholder.",
		Hint:     "[sample] %s hint placeholder.",
		Answer:   "[sample] %s answer placeholder.",
		Option:   "[sample] %s option %d",
	},
	ErrorSentinels: []string{"API error"},
}

// LocaleByName resolves a configured locale name.
func LocaleByName(name string) (*Locale, error) {
	switch name {
	case "", "ko":
		return Korean, nil
	case "en":
		return English, nil
	default:
		return nil, fmt.Errorf("unsupported locale %q", name)
	}
}

// DifficultyLabel renders a tier in the locale's words.
func (l *Locale) DifficultyLabel(d domain.Difficulty) string {
	if label, ok := l.DifficultyLabels[d]; ok {
		return label
	}
	return string(d)
}
