package localtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIn_IgnoresZoneDesignators(t *testing.T) {
	// Все варианты одной и той же настенной метки должны дать один результат
	want := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)

	inputs := []string{
		"2025-03-01T09:30:00",
		"2025-03-01T09:30:00Z",
		"2025-03-01T09:30:00z",
		"2025-03-01T09:30:00+03:00",
		"2025-03-01T09:30:00-05:00",
		"2025-03-01T09:30:00.123Z",
		"2025-03-01T09:30:00.999+03:00",
		"2025-03-01 09:30:00",
		"2025-03-01T09:30",
		"2025-03-01 09:30",
		"  2025-03-01T09:30:00Z  ",
	}

	for _, input := range inputs {
		got, err := ParseIn(input, time.UTC)
		require.NoError(t, err, "input %q", input)
		assert.True(t, got.Equal(want), "input %q: got %v, want %v", input, got, want)
	}
}

func TestParseIn_DateOnly(t *testing.T) {
	got, err := ParseIn("2025-03-01", time.UTC)
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)))
}

func TestParseIn_UsesGivenLocation(t *testing.T) {
	loc := time.FixedZone("campus", 3*60*60)

	got, err := ParseIn("2025-03-01T09:00:00Z", loc)
	require.NoError(t, err)

	// Суффикс Z отброшен: 09:00 это настенное время локации, а не UTC
	assert.Equal(t, 9, got.Hour())
	assert.Equal(t, loc, got.Location())
}

func TestParseIn_Unparsable(t *testing.T) {
	inputs := []string{
		"",
		"not a timestamp",
		"01.03.2025 09:00",
		"2025-03-01T",
	}

	for _, input := range inputs {
		_, err := ParseIn(input, time.UTC)
		require.Error(t, err, "input %q", input)
		assert.ErrorIs(t, err, ErrUnparsable, "input %q", input)
	}
}

func TestParse_UsesLocalLocation(t *testing.T) {
	got, err := Parse("2025-03-01T09:00:00")
	require.NoError(t, err)
	assert.Equal(t, time.Local, got.Location())
}
