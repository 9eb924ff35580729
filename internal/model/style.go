package model

import (
	"fmt"
	"strings"
)

// Style is an aesthetic style the classifier can produce
type Style string

const (
	StyleClassicSerif      Style = "classic-serif"
	StyleHumanistSans      Style = "humanist-sans"
	StyleGeometricSans     Style = "geometric-sans"
	StyleGrotesqueSans     Style = "grotesque-sans"
	StyleSlabSerif         Style = "slab-serif"
	StyleExpressiveDisplay Style = "expressive-display"

	// StyleTimelessEditorial is chosen by a fixed rule ahead of range matching
	// and has no entry in the range table.
	StyleTimelessEditorial Style = "timeless-editorial"
)

// AllStyles is the closed set of styles
var AllStyles = []Style{
	StyleClassicSerif,
	StyleHumanistSans,
	StyleGeometricSans,
	StyleGrotesqueSans,
	StyleSlabSerif,
	StyleExpressiveDisplay,
	StyleTimelessEditorial,
}

// ParseStyle resolves a style name
func ParseStyle(s string) (Style, error) {
	st := Style(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range AllStyles {
		if st == known {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown style %q", s)
}

// UnmarshalText rejects style names outside the closed set
func (s *Style) UnmarshalText(text []byte) error {
	parsed, err := ParseStyle(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// IsOverride reports whether s is the rule-selected editorial style
func (s Style) IsOverride() bool {
	return s == StyleTimelessEditorial
}

// Bound is an inclusive score interval on one axis
type Bound struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// Contains reports whether score lies within the bound
func (b Bound) Contains(score int) bool {
	return score >= b.Min && score <= b.Max
}

// StyleRange holds the per-axis bounds that describe a style
type StyleRange struct {
	Style  Style           `json:"style" yaml:"style"`
	Bounds map[Trait]Bound `json:"bounds" yaml:"bounds"`
}

// Matches counts the axes of v that fall inside the range
func (r StyleRange) Matches(v TraitVector) int {
	n := 0
	for _, t := range AllTraits {
		if b, ok := r.Bounds[t]; ok && b.Contains(v.Get(t)) {
			n++
		}
	}
	return n
}

// StyleInfo describes a style for clients
type StyleInfo struct {
	Style       Style  `json:"style" bson:"style" yaml:"style"`
	Label       string `json:"label" bson:"label" yaml:"label"`
	Description string `json:"description" bson:"description" yaml:"description"`
}
