package model

// FontRecord is a read-only catalog entry
type FontRecord struct {
	Name        string      `json:"name" bson:"name" yaml:"name"`
	URL         string      `json:"url" bson:"url" yaml:"url"`          // specimen / download page
	Traits      TraitVector `json:"traits" bson:"traits" yaml:"traits"` // 1-5 per axis
	Tag         string      `json:"tag" bson:"tag" yaml:"tag"`          // internal style variant, e.g. "old-style-serif"
	Family      string      `json:"family" bson:"family" yaml:"family"` // CSS font-family stack
	Personality []string    `json:"personality,omitempty" bson:"personality,omitempty" yaml:"personality"`
	UseCases    []string    `json:"useCases,omitempty" bson:"useCases,omitempty" yaml:"useCases"`
}

// Recommendation is the ranked output for a session
type Recommendation struct {
	Style      Style      `json:"style" bson:"style"`
	StyleLabel string     `json:"styleLabel" bson:"styleLabel"`
	Primary    FontRecord `json:"primary" bson:"primary"`
	Secondary  FontRecord `json:"secondary" bson:"secondary"`
	Tertiary   FontRecord `json:"tertiary" bson:"tertiary"`
}

// Fonts returns the recommendation in primary, secondary, tertiary order
func (r Recommendation) Fonts() [3]FontRecord {
	return [3]FontRecord{r.Primary, r.Secondary, r.Tertiary}
}

// Results bundles both trait vectors with the recommendation they produced.
// The vectors are always computed together and cleared together.
type Results struct {
	Coarse         TraitVector    `json:"coarse" bson:"coarse"`
	Display        TraitVector    `json:"display" bson:"display"`
	Recommendation Recommendation `json:"recommendation" bson:"recommendation"`
}
