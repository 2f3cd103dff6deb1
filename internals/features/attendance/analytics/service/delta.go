package service

import "math"

// MonthOverMonthDelta returns round((current-previous)/previous*100) as a
// signed percent, or nil when previous == 0: the change is undefined, not
// infinite or zero, and callers render it as "no comparable data".
func MonthOverMonthDelta(current, previous int) *int {
	if previous == 0 {
		return nil
	}
	d := int(math.Round(float64(current-previous) / float64(previous) * 100))
	return &d
}
