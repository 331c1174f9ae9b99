package moneypkg

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestRound(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "NoFraction", input: "100", want: "100"},
		{name: "TwoDigits", input: "100.25", want: "100.25"},
		{name: "HalfUp", input: "100.255", want: "100.26"},
		{name: "HalfAwayFromZeroNegative", input: "-100.255", want: "-100.26"},
		{name: "TruncatesDown", input: "100.254", want: "100.25"},
		{name: "RoundsUp", input: "100.256", want: "100.26"},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			got := Round(decimal.RequireFromString(tc.input))
			require.True(t, got.Equal(decimal.RequireFromString(tc.want)),
				"Round(%s) = %s, want %s", tc.input, got, tc.want)
		})
	}
}

func TestIsPositive(t *testing.T) {
	require.True(t, IsPositive(decimal.RequireFromString("0.01")))
	require.False(t, IsPositive(decimal.Zero))
	require.False(t, IsPositive(decimal.RequireFromString("-1")))
}
