package model

import (
	"fmt"
	"strings"
)

// Trait is one of the five brand-personality axes
type Trait string

const (
	TraitTone      Trait = "tone"      // 1 serious .. 5 playful
	TraitEnergy    Trait = "energy"    // 1 calm .. 5 bold
	TraitDesign    Trait = "design"    // 1 crafted .. 5 minimal
	TraitEra       Trait = "era"       // 1 contemporary .. 5 timeless
	TraitStructure Trait = "structure" // 1 organic .. 5 systematic
)

// AllTraits is the fixed axis order used for iteration and vector slices
var AllTraits = [5]Trait{TraitTone, TraitEnergy, TraitDesign, TraitEra, TraitStructure}

// Score bounds shared by every trait axis
const (
	MinScore = 1
	MaxScore = 5
)

// ParseTrait resolves an axis name, rejecting anything outside the closed set
func ParseTrait(s string) (Trait, error) {
	t := Trait(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range AllTraits {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown trait %q", s)
}

// UnmarshalText lets catalog files and request bodies carry axis names
func (t *Trait) UnmarshalText(text []byte) error {
	parsed, err := ParseTrait(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// TraitVector holds one score per axis
type TraitVector struct {
	Tone      int `json:"tone" bson:"tone" yaml:"tone"`
	Energy    int `json:"energy" bson:"energy" yaml:"energy"`
	Design    int `json:"design" bson:"design" yaml:"design"`
	Era       int `json:"era" bson:"era" yaml:"era"`
	Structure int `json:"structure" bson:"structure" yaml:"structure"`
}

// NewTraitVector builds a vector from values in AllTraits order
func NewTraitVector(values [5]int) TraitVector {
	return TraitVector{
		Tone:      values[0],
		Energy:    values[1],
		Design:    values[2],
		Era:       values[3],
		Structure: values[4],
	}
}

// Get returns the score for an axis
func (v TraitVector) Get(t Trait) int {
	switch t {
	case TraitTone:
		return v.Tone
	case TraitEnergy:
		return v.Energy
	case TraitDesign:
		return v.Design
	case TraitEra:
		return v.Era
	case TraitStructure:
		return v.Structure
	}
	return 0
}

// Set updates the score for an axis
func (v *TraitVector) Set(t Trait, score int) {
	switch t {
	case TraitTone:
		v.Tone = score
	case TraitEnergy:
		v.Energy = score
	case TraitDesign:
		v.Design = score
	case TraitEra:
		v.Era = score
	case TraitStructure:
		v.Structure = score
	}
}

// Slice returns the scores in AllTraits order
func (v TraitVector) Slice() [5]int {
	return [5]int{v.Tone, v.Energy, v.Design, v.Era, v.Structure}
}

// Distance is the Manhattan distance between two vectors
func (v TraitVector) Distance(other TraitVector) int {
	a, b := v.Slice(), other.Slice()
	total := 0
	for i := range a {
		d := a[i] - b[i]
		if d < 0 {
			d = -d
		}
		total += d
	}
	return total
}

// InRange reports whether every axis lies within MinScore..MaxScore
func (v TraitVector) InRange() bool {
	for _, s := range v.Slice() {
		if s < MinScore || s > MaxScore {
			return false
		}
	}
	return true
}

func (v TraitVector) String() string {
	return fmt.Sprintf("tone=%d energy=%d design=%d era=%d structure=%d",
		v.Tone, v.Energy, v.Design, v.Era, v.Structure)
}

// TraitInfo names the poles of an axis for display
type TraitInfo struct {
	Trait    Trait  `json:"trait" yaml:"trait"`
	Label    string `json:"label" yaml:"label"`
	LowPole  string `json:"lowPole" yaml:"lowPole"`
	HighPole string `json:"highPole" yaml:"highPole"`
}
