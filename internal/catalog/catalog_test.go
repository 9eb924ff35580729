package catalog

import (
	"testing"
	"testing/fstest"

	"fontquiz/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)

	require.Len(t, cat.Questions(), QuestionCount)
	perTrait := map[model.Trait]int{}
	for i, q := range cat.Questions() {
		assert.Equal(t, i+1, q.ID)
		assert.NotEmpty(t, q.OptionA)
		assert.NotEmpty(t, q.OptionB)
		perTrait[q.Trait]++
	}
	for _, tr := range model.AllTraits {
		assert.Equal(t, QuestionsPerTrait, perTrait[tr], tr)
	}

	assert.NotEmpty(t, cat.Fonts())
	assert.Equal(t, model.StyleClassicSerif, cat.Ranges()[0].Style, "scan order follows the file")
	assert.Equal(t, "Timeless Editorial", cat.Labels()[model.StyleTimelessEditorial])
	assert.Equal(t, model.StyleClassicSerif, cat.Tags()["modern-serif"])
	assert.Equal(t, "EB Garamond", cat.Editorial()[0])
	assert.Len(t, cat.Traits(), len(model.AllTraits))
}

func TestDefaultCatalogEveryStyleHasFonts(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)

	count := map[model.Style]int{}
	for _, f := range cat.Fonts() {
		count[cat.Tags()[f.Tag]]++
	}
	for _, r := range cat.Ranges() {
		assert.Positive(t, count[r.Style], r.Style)
	}
}

func TestQuestionLookup(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)

	q, ok := cat.Question(4)
	require.True(t, ok)
	assert.Equal(t, model.TraitEra, q.Trait)

	_, ok = cat.Question(0)
	assert.False(t, ok)
	_, ok = cat.Question(11)
	assert.False(t, ok)
}

func TestTraitAndStyleInfoFallbacks(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "Timeless", cat.TraitInfo(model.TraitEra).HighPole)
	assert.Equal(t, "Slab Serif", cat.StyleInfo(model.StyleSlabSerif).Label)
	assert.Equal(t, "nope", cat.StyleInfo(model.Style("nope")).Label)
}

const validQuestions = `
questions:
  - {id: 1, trait: tone}
  - {id: 2, trait: energy}
  - {id: 3, trait: design}
  - {id: 4, trait: era}
  - {id: 5, trait: structure}
  - {id: 6, trait: tone}
  - {id: 7, trait: energy}
  - {id: 8, trait: design}
  - {id: 9, trait: era}
  - {id: 10, trait: structure}
`

const validStyles = `
ranges:
  - style: slab-serif
    bounds:
      tone: {min: 1, max: 5}
      energy: {min: 1, max: 5}
      design: {min: 1, max: 5}
      era: {min: 1, max: 5}
      structure: {min: 1, max: 5}
styles:
  - {style: slab-serif, label: Slab Serif}
  - {style: timeless-editorial, label: Timeless Editorial}
tags:
  slab-serif: slab-serif
`

const validFonts = `
fonts:
  - name: Arvo
    tag: slab-serif
    traits: {tone: 3, energy: 4, design: 2, era: 4, structure: 4}
`

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{
		"d/questions.yaml": {Data: []byte(validQuestions)},
		"d/styles.yaml":    {Data: []byte(validStyles)},
		"d/fonts.yaml":     {Data: []byte(validFonts)},
	}
	cat, err := Load(fsys, "d")
	require.NoError(t, err)
	assert.Len(t, cat.Fonts(), 1)
	assert.Len(t, cat.Ranges(), 1)
}

func TestLoadRejectsBadTables(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
		want  error
	}{
		{
			name: "unknown-trait",
			files: map[string]string{
				"questions.yaml": "questions:\n  - {id: 1, trait: mood}\n",
				"styles.yaml":    validStyles,
				"fonts.yaml":     validFonts,
			},
		},
		{
			name: "too-few-questions",
			files: map[string]string{
				"questions.yaml": "questions:\n  - {id: 1, trait: tone}\n",
				"styles.yaml":    validStyles,
				"fonts.yaml":     validFonts,
			},
			want: ErrInvalidQuestions,
		},
		{
			name: "empty-catalog",
			files: map[string]string{
				"questions.yaml": validQuestions,
				"styles.yaml":    validStyles,
				"fonts.yaml":     "fonts: []\n",
			},
			want: ErrInvalidFonts,
		},
		{
			name: "trait-out-of-range",
			files: map[string]string{
				"questions.yaml": validQuestions,
				"styles.yaml":    validStyles,
				"fonts.yaml":     "fonts:\n  - {name: X, tag: slab-serif, traits: {tone: 0, energy: 1, design: 1, era: 1, structure: 1}}\n",
			},
			want: ErrInvalidFonts,
		},
		{
			name: "unknown-style",
			files: map[string]string{
				"questions.yaml": validQuestions,
				"styles.yaml":    "ranges:\n  - style: blackletter\n",
				"fonts.yaml":     validFonts,
			},
		},
		{
			name: "override-with-range",
			files: map[string]string{
				"questions.yaml": validQuestions,
				"styles.yaml": `
ranges:
  - style: timeless-editorial
    bounds:
      tone: {min: 1, max: 5}
      energy: {min: 1, max: 5}
      design: {min: 1, max: 5}
      era: {min: 1, max: 5}
      structure: {min: 1, max: 5}
styles:
  - {style: timeless-editorial, label: Timeless Editorial}
`,
				"fonts.yaml": validFonts,
			},
			want: ErrInvalidStyles,
		},
		{
			name: "editorial-font-missing",
			files: map[string]string{
				"questions.yaml": validQuestions,
				"styles.yaml":    validStyles + "editorial: [Garamond]\n",
				"fonts.yaml":     validFonts,
			},
			want: ErrInvalidFonts,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{}
			for name, data := range tt.files {
				fsys["d/"+name] = &fstest.MapFile{Data: []byte(data)}
			}
			_, err := Load(fsys, "d")
			require.Error(t, err)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestFontsByStyle(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)

	slab := cat.FontsByStyle(model.StyleSlabSerif)
	names := make([]string, len(slab))
	for i, f := range slab {
		names[i] = f.Name
	}
	assert.Equal(t, []string{"Roboto Slab", "Arvo", "Zilla Slab", "Bitter"}, names)

	editorial := cat.FontsByStyle(model.StyleTimelessEditorial)
	require.Len(t, editorial, 6)
	assert.Equal(t, "EB Garamond", editorial[0].Name)
	assert.Equal(t, "Playfair Display", editorial[1].Name)

	_, ok := cat.Font("Comic Sans")
	assert.False(t, ok)
}
