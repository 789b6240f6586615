// Package routine holds the skincare domain: skin types, concerns, the static
// product catalog and routine generation.
package routine

import (
	"strings"
	"unicode"
)

// SkinType is the skin category chosen in the quiz.
type SkinType string

const (
	Oily        SkinType = "oily"
	Dry         SkinType = "dry"
	Combination SkinType = "combination"
)

// SkinTypes returns every skin type in quiz order.
func SkinTypes() []SkinType {
	return []SkinType{Oily, Dry, Combination}
}

// Valid reports whether s is one of the known skin types. The zero value is
// the "not chosen yet" state and is not valid.
func (s SkinType) Valid() bool {
	switch s {
	case Oily, Dry, Combination:
		return true
	}
	return false
}

// Label is the display form, e.g. "Combination".
func (s SkinType) Label() string { return capitalize(string(s)) }

// Concern is a skincare issue; several may be selected at once.
type Concern string

const (
	Acne              Concern = "acne"
	Dryness           Concern = "dryness"
	Aging             Concern = "aging"
	Wrinkles          Concern = "wrinkles"
	Hyperpigmentation Concern = "hyperpigmentation"
	Dullness          Concern = "dullness"
	SunDamage         Concern = "sun damage"
	Others            Concern = "others"
)

// Concerns returns every concern in quiz order.
func Concerns() []Concern {
	return []Concern{Acne, Dryness, Aging, Wrinkles, Hyperpigmentation, Dullness, SunDamage, Others}
}

func (c Concern) Valid() bool {
	for _, k := range Concerns() {
		if c == k {
			return true
		}
	}
	return false
}

// Label is the display form, e.g. "Sun Damage".
func (c Concern) Label() string { return capitalize(string(c)) }

// ProductStep is a single "Category: Product" recommendation. Steps compare by
// exact string value.
type ProductStep string

// Category returns the part before the first ": ", or "" when there is none.
func (p ProductStep) Category() string {
	cat, _, ok := strings.Cut(string(p), ": ")
	if !ok {
		return ""
	}
	return cat
}

// Product returns the part after the first ": ", or the whole step when there
// is no category prefix.
func (p ProductStep) Product() string {
	_, prod, ok := strings.Cut(string(p), ": ")
	if !ok {
		return string(p)
	}
	return prod
}

// Routine is a named, saved list of steps. ID and Products are fixed at creation.
type Routine struct {
	ID       string        `json:"id" yaml:"id"`
	Name     string        `json:"name" yaml:"name"`
	Products []ProductStep `json:"products" yaml:"products"`
}

// capitalize upper-cases the first letter of every word.
func capitalize(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
