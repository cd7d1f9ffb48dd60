// Package catalog holds the versioned question-set editions and their
// companion point tables. Editions are embedded in the binary and loaded
// once at init; a malformed catalog is a build defect and panics.
package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"scorecard-engine/internal/model"
)

//go:embed editions.yaml
var editionsYAML []byte

type QuestionType string

const (
	SingleChoice QuestionType = "single-choice"
	MultiChoice  QuestionType = "multi-choice"
	NumericRange QuestionType = "numeric-range"
)

type Option struct {
	Value  string `yaml:"value" json:"value"`
	Label  string `yaml:"label" json:"label"`
	Points int    `yaml:"points" json:"-"`
}

// NumericBand maps a numeric answer in [Min, Max] to a point value.
type NumericBand struct {
	Min    float64 `yaml:"min" json:"min"`
	Max    float64 `yaml:"max" json:"max"`
	Points int     `yaml:"points" json:"-"`
}

type Question struct {
	ID   string       `yaml:"id" json:"id"`
	Text string       `yaml:"text" json:"text"`
	Type QuestionType `yaml:"type" json:"type"`

	// Retired questions are no longer shown by the UI layer but still
	// carry a point table; their answers are inferred.
	Retired bool `yaml:"retired" json:"-"`

	Options []Option      `yaml:"options" json:"options,omitempty"`
	Min     float64       `yaml:"min" json:"min,omitempty"`
	Max     float64       `yaml:"max" json:"max,omitempty"`
	Step    float64       `yaml:"step" json:"step,omitempty"`
	Bands   []NumericBand `yaml:"bands" json:"-"`
}

type Section struct {
	ID          string     `yaml:"id" json:"id"`
	Title       string     `yaml:"title" json:"title"`
	Description string     `yaml:"description" json:"description"`
	Weight      int        `yaml:"weight" json:"-"`
	MaxScore    int        `yaml:"max_score" json:"-"`
	Questions   []Question `yaml:"questions" json:"questions"`
}

type Edition struct {
	Version  string    `yaml:"version" json:"version"`
	Sections []Section `yaml:"sections" json:"sections"`
}

type catalogFile struct {
	Editions []Edition `yaml:"editions"`
}

var (
	registry = map[string]*Edition{}
	latest   string
)

func init() {
	var f catalogFile
	if err := yaml.Unmarshal(editionsYAML, &f); err != nil {
		panic(fmt.Sprintf("catalog: invalid editions.yaml: %v", err))
	}
	if len(f.Editions) == 0 {
		panic("catalog: no editions defined")
	}
	for i := range f.Editions {
		ed := &f.Editions[i]
		if err := ed.check(); err != nil {
			panic(fmt.Sprintf("catalog: edition %s: %v", ed.Version, err))
		}
		registry[ed.Version] = ed
		latest = ed.Version
	}
}

func (ed *Edition) check() error {
	weightSum := 0
	for _, s := range ed.Sections {
		weightSum += s.Weight
		for _, q := range s.Questions {
			for _, o := range q.Options {
				if o.Points < 0 || o.Points > 5 {
					return fmt.Errorf("question %s option %s: points %d outside [0,5]", q.ID, o.Value, o.Points)
				}
			}
		}
	}
	if weightSum != 100 {
		return fmt.Errorf("section weights sum to %d, want 100", weightSum)
	}
	return nil
}

// Get returns the edition for the given version string.
func Get(version string) (*Edition, bool) {
	ed, ok := registry[version]
	return ed, ok
}

// Default returns the latest edition, the one new assessments use.
func Default() *Edition {
	return registry[latest]
}

func (ed *Edition) Section(id string) (*Section, bool) {
	for i := range ed.Sections {
		if ed.Sections[i].ID == id {
			return &ed.Sections[i], true
		}
	}
	return nil, false
}

func (s *Section) Question(id string) (*Question, bool) {
	for i := range s.Questions {
		if s.Questions[i].ID == id {
			return &s.Questions[i], true
		}
	}
	return nil, false
}

// PointsFor converts an answer into points using the question's table.
// The answer's wire shape must match the question's declared type; a
// mismatched shape, an unknown option value, or an out-of-band number
// contributes zero.
func (q *Question) PointsFor(v model.AnswerValue) int {
	switch q.Type {
	case SingleChoice:
		if v.Kind != model.AnswerChoice {
			return 0
		}
		return q.optionPoints(v.Choice)
	case MultiChoice:
		if v.Kind != model.AnswerChoices {
			return 0
		}
		total := 0
		seen := map[string]bool{}
		for _, c := range v.Choices {
			if seen[c] {
				continue
			}
			seen[c] = true
			total += q.optionPoints(c)
		}
		if best := q.BestPoints(); total > best {
			total = best
		}
		return total
	case NumericRange:
		if v.Kind != model.AnswerNumber {
			return 0
		}
		for _, b := range q.Bands {
			if v.Number >= b.Min && v.Number <= b.Max {
				return b.Points
			}
		}
	}
	return 0
}

func (q *Question) optionPoints(value string) int {
	for _, o := range q.Options {
		if o.Value == value {
			return o.Points
		}
	}
	return 0
}

// BestPoints is the highest point total an answer to q can earn. For a
// multi-choice question that is the sum over its options, since every
// option may be selected at once.
func (q *Question) BestPoints() int {
	if q.Type == MultiChoice {
		total := 0
		for _, o := range q.Options {
			total += o.Points
		}
		return total
	}
	best := 0
	for _, o := range q.Options {
		if o.Points > best {
			best = o.Points
		}
	}
	for _, b := range q.Bands {
		if b.Points > best {
			best = b.Points
		}
	}
	return best
}
