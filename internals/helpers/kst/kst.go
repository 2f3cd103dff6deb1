// file: internals/helpers/kst/kst.go
package kst

import "time"

// The product calendar is fixed to Korea Standard Time. KST has no DST,
// so a fixed-offset zone is exact and avoids tzdata lookups.
const OffsetHours = 9

var Location = time.FixedZone("Asia/Seoul", OffsetHours*60*60)

// FromUTC converts a stored UTC instant to its KST wall-clock reading.
func FromUTC(t time.Time) time.Time {
	return t.In(Location)
}

// TimeOfDay formats the KST wall clock as "HH:MM" (minute precision).
func TimeOfDay(t time.Time) string {
	return FromUTC(t).Format("15:04")
}

// Weekday returns the KST weekday index, 0=Sunday .. 6=Saturday.
func Weekday(t time.Time) int {
	return int(FromUTC(t).Weekday())
}
