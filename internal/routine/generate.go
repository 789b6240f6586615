package routine

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned by Remove for an index outside the list.
var ErrIndexOutOfRange = errors.New("routine index out of range")

// FallbackSteps is returned by Generate when no step was found.
func FallbackSteps() []ProductStep {
	return []ProductStep{"Cleanser: Basic Wash", "Toner: Basic Toner", "Moisturizer: Basic Cream"}
}

// Generate builds the routine for a skin type and concerns taken in the given
// order. Pairs missing from the catalog contribute nothing. The result is never
// empty.
func Generate(skin SkinType, concerns []Concern) []ProductStep {
	var combined []ProductStep
	for _, c := range concerns {
		steps, _ := Lookup(skin, c)
		combined = append(combined, steps...)
	}
	out := Dedupe(combined)
	if len(out) == 0 {
		return FallbackSteps()
	}
	return out
}

// Dedupe keeps the first occurrence of every step and drops later repeats.
func Dedupe(steps []ProductStep) []ProductStep {
	seen := make(map[ProductStep]struct{}, len(steps))
	out := make([]ProductStep, 0, len(steps))
	for _, s := range steps {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// Remove returns a new slice without the routine at index. The input is not
// modified.
func Remove(routines []Routine, index int) ([]Routine, error) {
	if index < 0 || index >= len(routines) {
		return routines, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, len(routines))
	}
	out := make([]Routine, 0, len(routines)-1)
	out = append(out, routines[:index]...)
	return append(out, routines[index+1:]...), nil
}

// DefaultName names an unnamed routine after the number already saved.
func DefaultName(savedCount int) string {
	return fmt.Sprintf("Routine %d", savedCount+1)
}
