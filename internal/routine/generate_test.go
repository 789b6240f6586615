package routine

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestGenerateSingleConcern(t *testing.T) {
	t.Parallel()
	got := Generate(Oily, []Concern{Acne})
	want := []ProductStep{
		"Cleanser: Salicylic Acid Wash",
		"Toner: Witch Hazel",
		"Moisturizer: Oil-Free Gel",
		"Treatment: Benzoyl Peroxide",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Generate(oily, acne) mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateConcatenatesInOrder(t *testing.T) {
	t.Parallel()
	got := Generate(Oily, []Concern{Acne, Dryness})
	require.Len(t, got, 8)
	require.Equal(t, ProductStep("Cleanser: Salicylic Acid Wash"), got[0])
	require.Equal(t, ProductStep("Cleanser: Gentle Foam"), got[4])
	require.Equal(t, ProductStep("Treatment: Niacinamide Serum"), got[7])

	reversed := Generate(Oily, []Concern{Dryness, Acne})
	require.Equal(t, ProductStep("Cleanser: Gentle Foam"), reversed[0])
	require.ElementsMatch(t, got, reversed)
}

func TestGenerateDropsRepeatedSteps(t *testing.T) {
	t.Parallel()
	// aging and sun damage share the cleanser and toner for oily skin.
	got := Generate(Oily, []Concern{Aging, SunDamage})
	want := []ProductStep{
		"Cleanser: Gentle Foam",
		"Toner: Rose Water",
		"Moisturizer: Anti-Aging Cream",
		"Treatment: Retinol Serum",
		"Moisturizer: SPF Cream",
		"Treatment: Antioxidant Serum",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateFallback(t *testing.T) {
	t.Parallel()
	require.Equal(t, FallbackSteps(), Generate(Dry, nil))
	require.Equal(t, FallbackSteps(), Generate("", []Concern{Acne}))
	require.Equal(t, FallbackSteps(), Generate(Dry, []Concern{"blackheads"}))
	require.Equal(t, []ProductStep{"Cleanser: Basic Wash", "Toner: Basic Toner", "Moisturizer: Basic Cream"}, FallbackSteps())
}

func TestGenerateNeverEmptyAndUnique(t *testing.T) {
	t.Parallel()
	all := Concerns()
	for _, skin := range SkinTypes() {
		// every prefix and every single concern
		for i := range all {
			for _, in := range [][]Concern{all[:i+1], {all[i]}} {
				got := Generate(skin, in)
				require.NotEmpty(t, got)
				seen := map[ProductStep]bool{}
				for _, s := range got {
					require.False(t, seen[s], "duplicate %q for %s %v", s, skin, in)
					seen[s] = true
				}
				require.Equal(t, got, Generate(skin, in), "not deterministic")
			}
		}
	}
}

func TestDedupeKeepsFirstOccurrence(t *testing.T) {
	t.Parallel()
	in := []ProductStep{"a", "b", "a", "c", "b", "d"}
	require.Equal(t, []ProductStep{"a", "b", "c", "d"}, Dedupe(in))
	require.Equal(t, []ProductStep{"a", "b", "a", "c", "b", "d"}, in, "input modified")
	require.Empty(t, Dedupe(nil))
}

func TestDedupeIsCaseSensitive(t *testing.T) {
	t.Parallel()
	require.Len(t, Dedupe([]ProductStep{"Toner: Rose Water", "toner: rose water"}), 2)
}

func TestCatalogMatchesReference(t *testing.T) {
	t.Parallel()
	ref := map[string]string{
		"oily/acne":                     "Salicylic Acid Wash, Witch Hazel, Oil-Free Gel, Benzoyl Peroxide",
		"oily/dryness":                  "Gentle Foam, Hydrating Mist, Lightweight Cream, Niacinamide Serum",
		"oily/aging":                    "Gentle Foam, Rose Water, Anti-Aging Cream, Retinol Serum",
		"oily/wrinkles":                 "Micellar Water, Hydrating Mist, Anti-Wrinkle Cream, Peptide Serum",
		"oily/hyperpigmentation":        "Salicylic Acid Wash, Green Tea, Oil-Free Gel, Vitamin C Serum",
		"oily/dullness":                 "Gentle Foam, Exfoliating Toner, Lightweight Cream, Glycolic Acid Serum",
		"oily/sun damage":               "Gentle Foam, Rose Water, SPF Cream, Antioxidant Serum",
		"oily/others":                   "Basic Wash, Basic Toner, Basic Cream, Basic Serum",
		"dry/acne":                      "Creamy Wash, Rose Water, Rich Cream, Retinol Serum",
		"dry/dryness":                   "Micellar Water, Hyaluronic Acid, Heavy Cream, Ceramide Serum",
		"dry/aging":                     "Creamy Wash, Rose Water, Anti-Aging Cream, Retinol Serum",
		"dry/wrinkles":                  "Micellar Water, Hyaluronic Acid, Anti-Wrinkle Cream, Peptide Serum",
		"dry/hyperpigmentation":         "Creamy Wash, Rose Water, Rich Cream, Vitamin C Serum",
		"dry/dullness":                  "Micellar Water, Exfoliating Toner, Heavy Cream, Glycolic Acid Serum",
		"dry/sun damage":                "Creamy Wash, Rose Water, SPF Cream, Antioxidant Serum",
		"dry/others":                    "Basic Wash, Basic Toner, Basic Cream, Basic Serum",
		"combination/acne":              "Gel Wash, Green Tea, Light Lotion, Tea Tree Oil",
		"combination/dryness":           "Milky Cleanser, Aloe Vera, Balanced Cream, Vitamin C Serum",
		"combination/aging":             "Gel Wash, Green Tea, Anti-Aging Cream, Retinol Serum",
		"combination/wrinkles":          "Milky Cleanser, Aloe Vera, Anti-Wrinkle Cream, Peptide Serum",
		"combination/hyperpigmentation": "Gel Wash, Green Tea, Light Lotion, Vitamin C Serum",
		"combination/dullness":          "Milky Cleanser, Exfoliating Toner, Balanced Cream, Glycolic Acid Serum",
		"combination/sun damage":        "Gel Wash, Green Tea, SPF Cream, Antioxidant Serum",
		"combination/others":            "Basic Wash, Basic Toner, Basic Cream, Basic Serum",
	}
	categories := []string{"Cleanser", "Toner", "Moisturizer", "Treatment"}

	cells := 0
	for _, skin := range SkinTypes() {
		for _, c := range Concerns() {
			key := string(skin) + "/" + string(c)
			products, ok := ref[key]
			require.True(t, ok, key)
			var want []ProductStep
			for i, p := range strings.Split(products, ", ") {
				want = append(want, ProductStep(categories[i]+": "+p))
			}
			got, ok := Lookup(skin, c)
			require.True(t, ok, key)
			require.Equal(t, want, got, key)
			cells++
		}
	}
	require.Equal(t, len(ref), cells)
}

func TestLookupReturnsCopy(t *testing.T) {
	t.Parallel()
	steps, ok := Lookup(Dry, Acne)
	require.True(t, ok)
	steps[0] = "Cleanser: Tampered"
	again, _ := Lookup(Dry, Acne)
	require.Equal(t, ProductStep("Cleanser: Creamy Wash"), again[0])

	_, ok = Lookup("normal", Acne)
	require.False(t, ok)
}

func TestRemove(t *testing.T) {
	t.Parallel()
	rs := []Routine{{ID: "1", Name: "a"}, {ID: "2", Name: "b"}, {ID: "3", Name: "c"}}

	out, err := Remove(rs, 1)
	require.NoError(t, err)
	require.Equal(t, []Routine{{ID: "1", Name: "a"}, {ID: "3", Name: "c"}}, out)
	require.Len(t, rs, 3)
	require.Equal(t, "2", rs[1].ID)

	out, err = Remove(rs, 3)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	require.Equal(t, rs, out)

	_, err = Remove(nil, 0)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestDefaultName(t *testing.T) {
	t.Parallel()
	require.Equal(t, "Routine 1", DefaultName(0))
	require.Equal(t, "Routine 4", DefaultName(3))
}
