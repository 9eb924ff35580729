// Package catalog loads the static quiz tables: questions, style ranges and
// labels, font tags and the font catalog. The tables are embedded in the
// binary, decoded once and never mutated afterwards.
package catalog

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"fontquiz/internal/model"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var embedded embed.FS

// QuestionCount is the fixed length of the quiz
const QuestionCount = 10

// QuestionsPerTrait is how many questions measure each axis
const QuestionsPerTrait = 2

var (
	ErrInvalidQuestions = errors.New("invalid question set")
	ErrInvalidStyles    = errors.New("invalid style table")
	ErrInvalidFonts     = errors.New("invalid font catalog")
)

// Tables is the decoded form of the data files
type Tables struct {
	Traits    []model.TraitInfo      `yaml:"traits"`
	Questions []model.Question       `yaml:"questions"`
	Ranges    []model.StyleRange     `yaml:"ranges"`
	Styles    []model.StyleInfo      `yaml:"styles"`
	Tags      map[string]model.Style `yaml:"tags"`
	Editorial []string               `yaml:"editorial"`
	Fonts     []model.FontRecord     `yaml:"fonts"`
}

// Catalog is the validated, read-only view over Tables.
// Slices returned by accessors are shared and must not be modified.
type Catalog struct {
	traits    []model.TraitInfo
	questions []model.Question
	ranges    []model.StyleRange
	styles    []model.StyleInfo
	labels    map[model.Style]string
	tags      map[string]model.Style
	editorial []string
	fonts     []model.FontRecord
}

var loadDefault = sync.OnceValues(func() (*Catalog, error) {
	return Load(embedded, "data")
})

// Default returns the embedded catalog, decoding it on first use
func Default() (*Catalog, error) {
	return loadDefault()
}

// Load decodes every *.yaml file under dir in fsys into one Tables value and
// validates it.
func Load(fsys fs.FS, dir string) (*Catalog, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog dir: %w", err)
	}

	var t Tables
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		data, err := fs.ReadFile(fsys, dir+"/"+e.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", e.Name(), err)
		}
		var part Tables
		if err := yaml.Unmarshal(data, &part); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", e.Name(), err)
		}
		t.merge(part)
	}
	return New(t)
}

func (t *Tables) merge(o Tables) {
	t.Traits = append(t.Traits, o.Traits...)
	t.Questions = append(t.Questions, o.Questions...)
	t.Ranges = append(t.Ranges, o.Ranges...)
	t.Styles = append(t.Styles, o.Styles...)
	t.Editorial = append(t.Editorial, o.Editorial...)
	t.Fonts = append(t.Fonts, o.Fonts...)
	if len(o.Tags) > 0 && t.Tags == nil {
		t.Tags = make(map[string]model.Style, len(o.Tags))
	}
	for k, v := range o.Tags {
		t.Tags[k] = v
	}
}

// New validates tables and builds a Catalog
func New(t Tables) (*Catalog, error) {
	if err := validateQuestions(t.Questions); err != nil {
		return nil, err
	}
	labels, err := validateStyles(t)
	if err != nil {
		return nil, err
	}
	if err := validateFonts(t); err != nil {
		return nil, err
	}

	return &Catalog{
		traits:    t.Traits,
		questions: t.Questions,
		ranges:    t.Ranges,
		styles:    t.Styles,
		labels:    labels,
		tags:      t.Tags,
		editorial: t.Editorial,
		fonts:     t.Fonts,
	}, nil
}

func validateQuestions(qs []model.Question) error {
	if len(qs) != QuestionCount {
		return fmt.Errorf("%w: want %d questions, got %d", ErrInvalidQuestions, QuestionCount, len(qs))
	}
	perTrait := make(map[model.Trait]int, len(model.AllTraits))
	for i, q := range qs {
		if q.ID != i+1 {
			return fmt.Errorf("%w: question at position %d has id %d", ErrInvalidQuestions, i+1, q.ID)
		}
		if _, err := model.ParseTrait(string(q.Trait)); err != nil {
			return fmt.Errorf("%w: question %d: %v", ErrInvalidQuestions, q.ID, err)
		}
		perTrait[q.Trait]++
	}
	for _, tr := range model.AllTraits {
		if perTrait[tr] != QuestionsPerTrait {
			return fmt.Errorf("%w: trait %s has %d questions, want %d", ErrInvalidQuestions, tr, perTrait[tr], QuestionsPerTrait)
		}
	}
	return nil
}

func validateStyles(t Tables) (map[model.Style]string, error) {
	if len(t.Ranges) == 0 {
		return nil, fmt.Errorf("%w: no style ranges", ErrInvalidStyles)
	}

	labels := make(map[model.Style]string, len(t.Styles))
	for _, s := range t.Styles {
		if s.Label == "" {
			return nil, fmt.Errorf("%w: style %s has no label", ErrInvalidStyles, s.Style)
		}
		labels[s.Style] = s.Label
	}
	if _, ok := labels[model.StyleTimelessEditorial]; !ok {
		return nil, fmt.Errorf("%w: missing label for %s", ErrInvalidStyles, model.StyleTimelessEditorial)
	}

	seen := make(map[model.Style]bool, len(t.Ranges))
	for _, r := range t.Ranges {
		if r.Style.IsOverride() {
			return nil, fmt.Errorf("%w: %s is rule-selected and cannot have a range", ErrInvalidStyles, r.Style)
		}
		if seen[r.Style] {
			return nil, fmt.Errorf("%w: duplicate range for %s", ErrInvalidStyles, r.Style)
		}
		seen[r.Style] = true
		if _, ok := labels[r.Style]; !ok {
			return nil, fmt.Errorf("%w: range style %s has no label", ErrInvalidStyles, r.Style)
		}
		for _, tr := range model.AllTraits {
			b, ok := r.Bounds[tr]
			if !ok {
				return nil, fmt.Errorf("%w: %s has no bound for %s", ErrInvalidStyles, r.Style, tr)
			}
			if b.Min < model.MinScore || b.Max > model.MaxScore || b.Min > b.Max {
				return nil, fmt.Errorf("%w: %s bound for %s is [%d,%d]", ErrInvalidStyles, r.Style, tr, b.Min, b.Max)
			}
		}
	}
	return labels, nil
}

func validateFonts(t Tables) error {
	if len(t.Fonts) == 0 {
		return fmt.Errorf("%w: catalog is empty", ErrInvalidFonts)
	}
	names := make(map[string]bool, len(t.Fonts))
	for _, f := range t.Fonts {
		if f.Name == "" {
			return fmt.Errorf("%w: font without a name", ErrInvalidFonts)
		}
		if names[f.Name] {
			return fmt.Errorf("%w: duplicate font %q", ErrInvalidFonts, f.Name)
		}
		names[f.Name] = true
		if !f.Traits.InRange() {
			return fmt.Errorf("%w: %s traits out of range (%s)", ErrInvalidFonts, f.Name, f.Traits)
		}
	}
	for _, name := range t.Editorial {
		if !names[name] {
			return fmt.Errorf("%w: editorial font %q not in catalog", ErrInvalidFonts, name)
		}
	}
	return nil
}

// Questions returns the quiz in order
func (c *Catalog) Questions() []model.Question { return c.questions }

// Question returns the question with the given 1-based id
func (c *Catalog) Question(id int) (model.Question, bool) {
	if id < 1 || id > len(c.questions) {
		return model.Question{}, false
	}
	return c.questions[id-1], true
}

// Traits returns the axis descriptions
func (c *Catalog) Traits() []model.TraitInfo { return c.traits }

// TraitInfo returns the description of one axis, falling back to bare pole names
func (c *Catalog) TraitInfo(t model.Trait) model.TraitInfo {
	for _, ti := range c.traits {
		if ti.Trait == t {
			return ti
		}
	}
	return model.TraitInfo{Trait: t, Label: string(t), LowPole: "low", HighPole: "high"}
}

// Ranges returns the style range table in scan order
func (c *Catalog) Ranges() []model.StyleRange { return c.ranges }

// Styles returns every style description
func (c *Catalog) Styles() []model.StyleInfo { return c.styles }

// StyleInfo returns the description of a style
func (c *Catalog) StyleInfo(s model.Style) model.StyleInfo {
	for _, si := range c.styles {
		if si.Style == s {
			return si
		}
	}
	return model.StyleInfo{Style: s, Label: string(s)}
}

// Labels maps styles to display labels
func (c *Catalog) Labels() map[model.Style]string { return c.labels }

// Tags maps internal font tags to styles
func (c *Catalog) Tags() map[string]model.Style { return c.tags }

// Editorial returns the override allow-list in priority order
func (c *Catalog) Editorial() []string { return c.editorial }

// Fonts returns the catalog in file order
func (c *Catalog) Fonts() []model.FontRecord { return c.fonts }

// Font returns the font with the given name
func (c *Catalog) Font(name string) (model.FontRecord, bool) {
	for _, f := range c.fonts {
		if f.Name == name {
			return f, true
		}
	}
	return model.FontRecord{}, false
}

// FontsByStyle lists the fonts whose tag resolves to s in catalog order.
// The editorial override lists its allow-list in priority order instead.
func (c *Catalog) FontsByStyle(s model.Style) []model.FontRecord {
	var out []model.FontRecord
	if s.IsOverride() {
		for _, name := range c.editorial {
			if f, ok := c.Font(name); ok {
				out = append(out, f)
			}
		}
		return out
	}
	for _, f := range c.fonts {
		if c.tags[f.Tag] == s {
			out = append(out, f)
		}
	}
	return out
}
