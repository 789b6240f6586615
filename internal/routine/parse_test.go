package routine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSkinType(t *testing.T) {
	t.Parallel()
	for in, want := range map[string]SkinType{"oily": Oily, " DRY ": Dry, "Combination": Combination} {
		got, err := ParseSkinType(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got)
	}

	_, err := ParseSkinType("olly")
	require.ErrorIs(t, err, ErrUnknownSkinType)
	require.Contains(t, err.Error(), `did you mean "oily"`)

	_, err = ParseSkinType("sensitive-and-reactive")
	require.ErrorIs(t, err, ErrUnknownSkinType)
	require.Contains(t, err.Error(), "valid: oily, dry, combination")
}

func TestParseConcern(t *testing.T) {
	t.Parallel()
	for _, in := range []string{"sun damage", "Sun-Damage", "SUN_DAMAGE", "  sun   damage "} {
		got, err := ParseConcern(in)
		require.NoError(t, err, in)
		require.Equal(t, SunDamage, got)
	}

	_, err := ParseConcern("wrinkels")
	require.ErrorIs(t, err, ErrUnknownConcern)
	require.Contains(t, err.Error(), `did you mean "wrinkles"`)

	_, err = ParseConcern("")
	require.ErrorIs(t, err, ErrUnknownConcern)
}

func TestParseConcernsCollapsesRepeats(t *testing.T) {
	t.Parallel()
	got, err := ParseConcerns([]string{"dullness", "acne", "Dullness"})
	require.NoError(t, err)
	require.Equal(t, []Concern{Dullness, Acne}, got)

	_, err = ParseConcerns([]string{"acne", "nope-nope-nope"})
	require.ErrorIs(t, err, ErrUnknownConcern)
}
