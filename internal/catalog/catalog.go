package catalog

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrModuleNotFound   = errors.New("module not found")
	ErrPathNotFound     = errors.New("learning path not found")
	ErrQuestionNotFound = errors.New("quiz question not found")
)

type QuestionType string

const (
	QuestionMCQ         QuestionType = "mcq"
	QuestionShortAnswer QuestionType = "short-answer"
)

type ImageItem struct {
	URL        string `yaml:"url" json:"url"`
	Caption    string `yaml:"caption" json:"caption"`
	Credit     string `yaml:"credit" json:"credit"`
	SourceLink string `yaml:"sourceLink" json:"sourceLink"`
	Alt        string `yaml:"alt" json:"alt"`
}

type VideoItem struct {
	Title     string `yaml:"title" json:"title"`
	Channel   string `yaml:"channel" json:"channel"`
	URL       string `yaml:"url" json:"url"`
	Relevance string `yaml:"relevance" json:"relevance"`
	Duration  string `yaml:"duration,omitempty" json:"duration,omitempty"`
}

type StudyCard struct {
	ID          string      `yaml:"id" json:"id"`
	Title       string      `yaml:"title" json:"title"`
	Content     string      `yaml:"content" json:"content"`
	FindOutMore string      `yaml:"findOutMore,omitempty" json:"findOutMore,omitempty"`
	Sources     []string    `yaml:"sources" json:"sources"`
	Images      []ImageItem `yaml:"images,omitempty" json:"images,omitempty"`
	Videos      []VideoItem `yaml:"videos,omitempty" json:"videos,omitempty"`
}

type Module struct {
	ID            string      `yaml:"id" json:"id"`
	Number        int         `yaml:"number" json:"number"`
	Title         string      `yaml:"title" json:"title"`
	Subtitle      string      `yaml:"subtitle" json:"subtitle"`
	Overview      string      `yaml:"overview" json:"overview"`
	KeyIdeas      []string    `yaml:"keyIdeas" json:"keyIdeas"`
	Cards         []StudyCard `yaml:"cards" json:"cards"`
	GlossaryTerms []string    `yaml:"glossaryTerms" json:"glossaryTerms"`
	Images        []ImageItem `yaml:"images" json:"images"`
	Videos        []VideoItem `yaml:"videos" json:"videos"`
	QuizQuestions []string    `yaml:"quizQuestions" json:"quizQuestions"`
	EstimatedTime string      `yaml:"estimatedTime" json:"estimatedTime"`
}

type GlossaryTerm struct {
	ID             string   `yaml:"id" json:"id"`
	Term           string   `yaml:"term" json:"term"`
	Definition     string   `yaml:"definition" json:"definition"`
	RelatedModules []string `yaml:"relatedModules" json:"relatedModules"`
}

// QuizQuestion.CorrectAnswer holds the option index for mcq questions and
// the expected text for short answers.
type QuizQuestion struct {
	ID            string       `yaml:"id" json:"id"`
	ModuleID      string       `yaml:"moduleId" json:"moduleId"`
	Type          QuestionType `yaml:"type" json:"type"`
	Question      string       `yaml:"question" json:"question"`
	Options       []string     `yaml:"options,omitempty" json:"options,omitempty"`
	CorrectAnswer string       `yaml:"correctAnswer" json:"correctAnswer,omitempty"`
	Explanation   string       `yaml:"explanation" json:"explanation,omitempty"`
	Difficulty    string       `yaml:"difficulty" json:"difficulty"`
}

type TimelineEvent struct {
	ID             string      `yaml:"id" json:"id"`
	Date           string      `yaml:"date" json:"date"`
	Time           string      `yaml:"time,omitempty" json:"time,omitempty"`
	Title          string      `yaml:"title" json:"title"`
	Description    string      `yaml:"description" json:"description"`
	Category       string      `yaml:"category" json:"category"`
	Location       string      `yaml:"location,omitempty" json:"location,omitempty"`
	RelatedModules []string    `yaml:"relatedModules" json:"relatedModules"`
	Images         []ImageItem `yaml:"images,omitempty" json:"images,omitempty"`
	Importance     string      `yaml:"importance" json:"importance"`
}

type Flashcard struct {
	ID       string `yaml:"id" json:"id"`
	Front    string `yaml:"front" json:"front"`
	Back     string `yaml:"back" json:"back"`
	Category string `yaml:"category" json:"category"`
	ModuleID string `yaml:"moduleId,omitempty" json:"moduleId,omitempty"`
}

type LearningPath struct {
	ID            string   `yaml:"id" json:"id"`
	Name          string   `yaml:"name" json:"name"`
	Description   string   `yaml:"description" json:"description"`
	EstimatedTime string   `yaml:"estimatedTime" json:"estimatedTime"`
	Modules       []string `yaml:"modules" json:"modules"`
	FocusAreas    []string `yaml:"focusAreas" json:"focusAreas"`
}

type MuseumItem struct {
	ID             string            `yaml:"id" json:"id"`
	Name           string            `yaml:"name" json:"name"`
	Type           string            `yaml:"type" json:"type"`
	Nation         string            `yaml:"nation" json:"nation"`
	Country        string            `yaml:"country" json:"country"`
	Description    string            `yaml:"description" json:"description"`
	Specifications map[string]string `yaml:"specifications" json:"specifications"`
	DesertRole     string            `yaml:"desertRole" json:"desertRole"`
	Image          string            `yaml:"image" json:"image"`
	ImageCredit    string            `yaml:"imageCredit" json:"imageCredit"`
	Featured       bool              `yaml:"featured,omitempty" json:"featured,omitempty"`
	FamousRaids    []string          `yaml:"famousRaids,omitempty" json:"famousRaids,omitempty"`
}

type HistoricalMap struct {
	ID             string   `yaml:"id" json:"id"`
	Title          string   `yaml:"title" json:"title"`
	Description    string   `yaml:"description" json:"description"`
	Image          string   `yaml:"image" json:"image"`
	Credit         string   `yaml:"credit" json:"credit"`
	Category       string   `yaml:"category" json:"category"`
	RelatedModules []string `yaml:"relatedModules" json:"relatedModules"`
}

type MuseumFilter struct {
	Type   string
	Nation string
}

// Catalog is the read-only study content. Accessors return fresh slices so
// callers cannot reorder the shared data.
type Catalog struct {
	modules       []Module
	glossary      []GlossaryTerm
	questions     []QuizQuestion
	timeline      []TimelineEvent
	flashcards    []Flashcard
	learningPaths []LearningPath
	museum        []MuseumItem
	maps          []HistoricalMap
}

func (c *Catalog) Modules() []Module {
	out := append([]Module{}, c.modules...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

func (c *Catalog) ModuleIDs() []string {
	mods := c.Modules()
	ids := make([]string, len(mods))
	for i, m := range mods {
		ids[i] = m.ID
	}
	return ids
}

func (c *Catalog) Module(id string) (Module, error) {
	for _, m := range c.modules {
		if m.ID == id {
			return m, nil
		}
	}
	return Module{}, ErrModuleNotFound
}

func (c *Catalog) Glossary() []GlossaryTerm {
	out := append([]GlossaryTerm{}, c.glossary...)
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Term) < strings.ToLower(out[j].Term)
	})
	return out
}

// Timeline returns events in chronological order. An empty category or
// "all" returns every event.
func (c *Catalog) Timeline(category string) []TimelineEvent {
	out := make([]TimelineEvent, 0, len(c.timeline))
	for _, e := range c.timeline {
		if isAll(category) || e.Category == category {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	return out
}

func (c *Catalog) Flashcards(moduleID string) []Flashcard {
	out := make([]Flashcard, 0, len(c.flashcards))
	for _, f := range c.flashcards {
		if moduleID == "" || f.ModuleID == moduleID {
			out = append(out, f)
		}
	}
	return out
}

func (c *Catalog) Flashcard(id string) (Flashcard, bool) {
	for _, f := range c.flashcards {
		if f.ID == id {
			return f, true
		}
	}
	return Flashcard{}, false
}

func (c *Catalog) QuizQuestions(moduleID string) []QuizQuestion {
	out := make([]QuizQuestion, 0)
	for _, q := range c.questions {
		if q.ModuleID == moduleID {
			out = append(out, q)
		}
	}
	return out
}

func (c *Catalog) Question(id string) (QuizQuestion, error) {
	for _, q := range c.questions {
		if q.ID == id {
			return q, nil
		}
	}
	return QuizQuestion{}, ErrQuestionNotFound
}

func (c *Catalog) LearningPaths() []LearningPath {
	return append([]LearningPath{}, c.learningPaths...)
}

func (c *Catalog) LearningPath(id string) (LearningPath, error) {
	for _, p := range c.learningPaths {
		if p.ID == id {
			return p, nil
		}
	}
	return LearningPath{}, ErrPathNotFound
}

func (c *Catalog) Museum(filter MuseumFilter) []MuseumItem {
	out := make([]MuseumItem, 0, len(c.museum))
	for _, item := range c.museum {
		typeMatch := isAll(filter.Type) || item.Type == filter.Type
		nationMatch := isAll(filter.Nation) || item.Nation == filter.Nation
		if typeMatch && nationMatch {
			out = append(out, item)
		}
	}
	return out
}

func (c *Catalog) Maps(category string) []HistoricalMap {
	out := make([]HistoricalMap, 0, len(c.maps))
	for _, m := range c.maps {
		if isAll(category) || m.Category == category {
			out = append(out, m)
		}
	}
	return out
}

func isAll(v string) bool {
	return v == "" || v == "all"
}
