package routine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

var (
	ErrUnknownSkinType = errors.New("unknown skin type")
	ErrUnknownConcern  = errors.New("unknown concern")
)

// maxSuggestDistance bounds how far a typo may be from a known value before we
// stop offering it as a suggestion.
const maxSuggestDistance = 3

// ParseSkinType accepts any casing and surrounding space.
func ParseSkinType(raw string) (SkinType, error) {
	in := normalize(raw)
	names := make([]string, 0, 3)
	for _, s := range SkinTypes() {
		if in == string(s) {
			return s, nil
		}
		names = append(names, string(s))
	}
	return "", unknown(ErrUnknownSkinType, raw, in, names)
}

// ParseConcern accepts any casing and treats '-' and '_' as spaces, so
// "sun-damage" and "SUN_DAMAGE" both resolve to SunDamage.
func ParseConcern(raw string) (Concern, error) {
	in := normalize(raw)
	names := make([]string, 0, 8)
	for _, c := range Concerns() {
		if in == string(c) {
			return c, nil
		}
		names = append(names, string(c))
	}
	return "", unknown(ErrUnknownConcern, raw, in, names)
}

// ParseConcerns parses every value in order; repeats collapse into one entry.
func ParseConcerns(raw []string) ([]Concern, error) {
	var set ConcernSet
	for _, r := range raw {
		c, err := ParseConcern(r)
		if err != nil {
			return nil, err
		}
		set.Add(c)
	}
	return set.Slice(), nil
}

func normalize(s string) string {
	s = strings.NewReplacer("-", " ", "_", " ").Replace(strings.ToLower(s))
	return strings.Join(strings.Fields(s), " ")
}

func unknown(kind error, raw, in string, names []string) error {
	if best := suggest(in, names); best != "" {
		return fmt.Errorf("%w %q (did you mean %q?)", kind, raw, best)
	}
	return fmt.Errorf("%w %q (valid: %s)", kind, raw, strings.Join(names, ", "))
}

// suggest returns the closest candidate within maxSuggestDistance edits.
func suggest(in string, candidates []string) string {
	if in == "" {
		return ""
	}
	best, bestDist := "", maxSuggestDistance+1
	for _, c := range candidates {
		if d := levenshtein.ComputeDistance(in, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}
