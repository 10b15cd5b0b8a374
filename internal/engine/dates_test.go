package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlapsHalfOpen(t *testing.T) {
	a1 := mustDay(t, "2024-03-01")
	a2 := mustDay(t, "2024-03-05")

	cases := []struct {
		start, end string
		want       bool
	}{
		{"2024-03-04", "2024-03-06", true},  // tail overlap
		{"2024-02-28", "2024-03-02", true},  // head overlap
		{"2024-03-02", "2024-03-03", true},  // contained
		{"2024-02-01", "2024-04-01", true},  // containing
		{"2024-03-05", "2024-03-07", false}, // starts on checkout day
		{"2024-02-27", "2024-03-01", false}, // ends on arrival day
		{"2024-03-10", "2024-03-12", false}, // disjoint
	}
	for _, c := range cases {
		got := overlaps(mustDay(t, c.start), mustDay(t, c.end), a1, a2)
		assert.Equal(t, c.want, got, "[%s, %s)", c.start, c.end)
	}
}

func TestNightsAtLeastOne(t *testing.T) {
	assert.EqualValues(t, 4, nights(mustDay(t, "2024-03-01"), mustDay(t, "2024-03-05")))
	assert.EqualValues(t, 1, nights(mustDay(t, "2024-03-01"), mustDay(t, "2024-03-02")))
	assert.EqualValues(t, 1, nights(mustDay(t, "2024-03-01"), mustDay(t, "2024-03-01")))
}

func TestParseDay(t *testing.T) {
	_, err := parseDay("2024-13-40")
	require.ErrorIs(t, err, ErrValidation)
	_, err = parseDay("03/01/2024")
	require.ErrorIs(t, err, ErrValidation)

	d, err := parseDay("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", d.Format(dayLayout))
}
