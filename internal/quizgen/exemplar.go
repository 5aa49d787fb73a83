package quizgen

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"quiz-coach/internal/domain"
)

// Exemplar is one worked example embedded in a generation prompt.
type Exemplar struct {
	Title    string   `yaml:"title"`
	Clues    []string `yaml:"clues,omitempty"`
	Question string   `yaml:"question"`
	Options  []string `yaml:"options,omitempty"`
	Hint     string   `yaml:"hint"`
	Answer   string   `yaml:"answer"`
}

// ExemplarSet holds the exemplars of both question types.
type ExemplarSet struct {
	FreeForm       []Exemplar `yaml:"free_form"`
	MultipleChoice []Exemplar `yaml:"multiple_choice"`
}

// For returns the exemplars used for questions of type t.
func (s ExemplarSet) For(t domain.QuestionType) []Exemplar {
	if t == domain.QuestionTypeMultipleChoice {
		return s.MultipleChoice
	}
	return s.FreeForm
}

// Validate checks that every multiple-choice exemplar has exactly four options.
func (s ExemplarSet) Validate() error {
	if len(s.FreeForm) == 0 && len(s.MultipleChoice) == 0 {
		return fmt.Errorf("exemplar set is empty")
	}
	for i, ex := range s.MultipleChoice {
		if len(ex.Options) != domain.OptionCount {
			return fmt.Errorf("multiple_choice[%d] %q: want %d options, got %d", i, ex.Title, domain.OptionCount, len(ex.Options))
		}
	}
	return nil
}

// DefaultExemplars returns the built-in Korean exemplars.
func DefaultExemplars() ExemplarSet {
	return ExemplarSet{
		FreeForm: []Exemplar{
			{
				Title:    "국어-단서형",
				Clues:    []string{"신라→실라", "실내→실래", "광안리→광알리"},
				Question: "다음에서 사용된 음운의 변동은?",
				Hint:     "ㄴ이 ㄹ과 만나 ㄹ로 바뀌는 음운 변동",
				Answer:   "유음화",
			},
			{
				Title:    "국어-단답형",
				Question: "다음 중 비음화가 일어나는 단어를 고르시오.",
				Hint:     "비음화는 ㄱ, ㄷ, ㅂ이 ㄴ, ㅁ 앞에서 ㅇ, ㄴ, ㅁ으로 바뀌는 현상",
				Answer:   "국물",
			},
			{
				Title:    "수학-단서형",
				Clues:    []string{"√-1"},
				Question: "복소수 단위 i의 정의는 무엇인가요?",
				Hint:     "허수 단위",
				Answer:   "i",
			},
			{
				Title:    "수학-단답형",
				Question: "이차방정식 x^2-4=0의 두 실근의 곱을 구하시오.",
				Hint:     "근과 계수의 관계를 이용",
				Answer:   "-4",
			},
		},
		MultipleChoice: []Exemplar{
			{
				Title:    "국어",
				Question: "다음 중 유음화가 일어나는 단어는?",
				Options:  []string{"국물", "신라", "같이", "먹다"},
				Hint:     "ㄴ이 ㄹ과 만나 ㄹ로 바뀌는 음운 변동",
				Answer:   "2",
			},
			{
				Title:    "수학",
				Question: "이차방정식 x^2-4=0의 두 실근의 곱은?",
				Options:  []string{"4", "-4", "2", "-2"},
				Hint:     "근과 계수의 관계를 이용",
				Answer:   "2",
			},
		},
	}
}

// LoadExemplars reads an exemplar pack from a YAML file.
func LoadExemplars(path string) (ExemplarSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ExemplarSet{}, fmt.Errorf("read exemplar file: %w", err)
	}
	var set ExemplarSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return ExemplarSet{}, fmt.Errorf("parse exemplar file %s: %w", path, err)
	}
	if err := set.Validate(); err != nil {
		return ExemplarSet{}, err
	}
	return set, nil
}
