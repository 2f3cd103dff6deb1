package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestResolveMonthRange(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		month     int
		wantStart string
		wantEnd   string
	}{
		{
			name:      "january starts on KST new year midnight",
			year:      2024,
			month:     1,
			wantStart: "2023-12-31T15:00:00Z",
			wantEnd:   "2024-01-31T15:00:00Z",
		},
		{
			name:      "december rolls over into next year",
			year:      2023,
			month:     12,
			wantStart: "2023-11-30T15:00:00Z",
			wantEnd:   "2023-12-31T15:00:00Z",
		},
		{
			name:      "leap february has 29 days",
			year:      2024,
			month:     2,
			wantStart: "2024-01-31T15:00:00Z",
			wantEnd:   "2024-02-29T15:00:00Z",
		},
		{
			name:      "non-leap february has 28 days",
			year:      2023,
			month:     2,
			wantStart: "2023-01-31T15:00:00Z",
			wantEnd:   "2023-02-28T15:00:00Z",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng, err := ResolveMonthRange(tt.year, tt.month)
			require.NoError(t, err)
			require.Equal(t, mustTime(tt.wantStart), rng.StartUTC)
			require.Equal(t, mustTime(tt.wantEnd), rng.EndUTC)
			require.Equal(t, time.UTC, rng.StartUTC.Location())
		})
	}
}

func TestResolveMonthRange_Validation(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month int
	}{
		{"month zero", 2024, 0},
		{"month thirteen", 2024, 13},
		{"month negative", 2024, -1},
		{"year below floor", 1899, 6},
		{"year above ceiling", 2201, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveMonthRange(tt.year, tt.month)
			require.ErrorIs(t, err, ErrValidation)
		})
	}

	// bounds themselves are valid
	_, err := ResolveMonthRange(1900, 1)
	require.NoError(t, err)
	_, err = ResolveMonthRange(2200, 12)
	require.NoError(t, err)
}

func TestResolveMonthRange_HalfOpenAdjacency(t *testing.T) {
	jan, err := ResolveMonthRange(2024, 1)
	require.NoError(t, err)
	feb, err := ResolveMonthRange(2024, 2)
	require.NoError(t, err)

	// end of one month is exactly the start of the next, no gap and no overlap
	require.True(t, jan.EndUTC.Equal(feb.StartUTC))
}

func TestResolveDayRange(t *testing.T) {
	rng, err := ResolveDayRange(2024, 2, 29)
	require.NoError(t, err)
	require.Equal(t, mustTime("2024-02-28T15:00:00Z"), rng.StartUTC)
	require.Equal(t, mustTime("2024-02-29T15:00:00Z"), rng.EndUTC)

	_, err = ResolveDayRange(2023, 2, 29)
	require.ErrorIs(t, err, ErrValidation)
	_, err = ResolveDayRange(2024, 2, 30)
	require.ErrorIs(t, err, ErrValidation)
	_, err = ResolveDayRange(2024, 4, 31)
	require.ErrorIs(t, err, ErrValidation)
	_, err = ResolveDayRange(2024, 4, 0)
	require.ErrorIs(t, err, ErrValidation)
	_, err = ResolveDayRange(2024, 13, 1)
	require.ErrorIs(t, err, ErrValidation)
}

func TestPreviousPeriod(t *testing.T) {
	y, m := PreviousPeriod(2024, 1)
	require.Equal(t, 2023, y)
	require.Equal(t, 12, m)

	y, m = PreviousPeriod(2024, 7)
	require.Equal(t, 2024, y)
	require.Equal(t, 6, m)
}
