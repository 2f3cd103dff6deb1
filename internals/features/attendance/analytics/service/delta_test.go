package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMonthOverMonthDelta(t *testing.T) {
	tests := []struct {
		name     string
		current  int
		previous int
		want     *int
	}{
		{"growth rounds to nearest", 5, 3, intPtr(67)},
		{"decline", 3, 5, intPtr(-40)},
		{"unchanged", 4, 4, intPtr(0)},
		{"dropped to zero", 0, 4, intPtr(-100)},
		{"no prior data is nil, not zero", 7, 0, nil},
		{"both zero is still nil", 0, 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MonthOverMonthDelta(tt.current, tt.previous)
			if tt.want == nil {
				require.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			require.Equal(t, *tt.want, *got)
		})
	}
}

func intPtr(v int) *int { return &v }
