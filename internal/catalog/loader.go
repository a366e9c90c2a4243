package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var embeddedContent []byte

type document struct {
	Modules       []Module        `yaml:"modules"`
	Glossary      []GlossaryTerm  `yaml:"glossary"`
	QuizQuestions []QuizQuestion  `yaml:"quizQuestions"`
	Timeline      []TimelineEvent `yaml:"timeline"`
	Flashcards    []Flashcard     `yaml:"flashcards"`
	LearningPaths []LearningPath  `yaml:"learningPaths"`
	Museum        []MuseumItem    `yaml:"museum"`
	Maps          []HistoricalMap `yaml:"maps"`
}

// Load reads the catalog from path, or the built-in content when path is
// empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Parse(embeddedContent)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Catalog, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := doc.validate(); err != nil {
		return nil, err
	}

	return &Catalog{
		modules:       doc.Modules,
		glossary:      doc.Glossary,
		questions:     doc.QuizQuestions,
		timeline:      doc.Timeline,
		flashcards:    doc.Flashcards,
		learningPaths: doc.LearningPaths,
		museum:        doc.Museum,
		maps:          doc.Maps,
	}, nil
}

func (d *document) validate() error {
	modules := make(map[string]bool, len(d.Modules))
	for _, m := range d.Modules {
		if m.ID == "" {
			return fmt.Errorf("catalog: module %d has no id", m.Number)
		}
		if modules[m.ID] {
			return fmt.Errorf("catalog: duplicate module id %q", m.ID)
		}
		modules[m.ID] = true

		cards := make(map[string]bool, len(m.Cards))
		for _, c := range m.Cards {
			if cards[c.ID] {
				return fmt.Errorf("catalog: duplicate card id %q in %s", c.ID, m.ID)
			}
			cards[c.ID] = true
		}
	}

	questions := make(map[string]bool, len(d.QuizQuestions))
	for _, q := range d.QuizQuestions {
		if questions[q.ID] {
			return fmt.Errorf("catalog: duplicate quiz question id %q", q.ID)
		}
		questions[q.ID] = true

		if !modules[q.ModuleID] {
			return fmt.Errorf("catalog: question %s references unknown module %q", q.ID, q.ModuleID)
		}
		switch q.Type {
		case QuestionMCQ:
			idx, err := strconv.Atoi(q.CorrectAnswer)
			if err != nil || idx < 0 || idx >= len(q.Options) {
				return fmt.Errorf("catalog: question %s answer %q is not an option index", q.ID, q.CorrectAnswer)
			}
		case QuestionShortAnswer:
			if q.CorrectAnswer == "" {
				return fmt.Errorf("catalog: question %s has no answer", q.ID)
			}
		default:
			return fmt.Errorf("catalog: question %s has unknown type %q", q.ID, q.Type)
		}
	}

	for _, m := range d.Modules {
		for _, qid := range m.QuizQuestions {
			if !questions[qid] {
				return fmt.Errorf("catalog: module %s lists unknown question %q", m.ID, qid)
			}
		}
	}

	for _, p := range d.LearningPaths {
		for _, mid := range p.Modules {
			if !modules[mid] {
				return fmt.Errorf("catalog: path %s references unknown module %q", p.ID, mid)
			}
		}
	}

	flashcards := make(map[string]bool, len(d.Flashcards))
	for _, f := range d.Flashcards {
		if flashcards[f.ID] {
			return fmt.Errorf("catalog: duplicate flashcard id %q", f.ID)
		}
		flashcards[f.ID] = true
	}
	return nil
}
