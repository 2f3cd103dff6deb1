package service

import (
	"math"
	"sort"

	"github.com/google/uuid"
)

type WeekdayBucket struct {
	Weekday     int // 0=Sunday .. 6=Saturday
	Count       int
	RatePercent int
}

type LocationBucket struct {
	Location    string
	Count       int
	RatePercent int
}

type MemberStatusSummary struct {
	TotalActiveMembers    int
	AttendedMembers       int
	AttendanceRatePercent int
	AbsentMembers         int
	AbsentRatePercent     int
}

func roundPercent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

// DayOfWeekDistribution tallies records into the 7 KST weekday buckets and
// sorts them by rate descending; exact ties keep Sun..Sat order.
func DayOfWeekDistribution(records []ClassifiedRecord) []WeekdayBucket {
	var counts [7]int
	for _, r := range records {
		counts[r.Weekday]++
	}
	total := len(records)

	out := make([]WeekdayBucket, 7)
	for i := 0; i < 7; i++ {
		out[i] = WeekdayBucket{
			Weekday:     i,
			Count:       counts[i],
			RatePercent: roundPercent(counts[i], total),
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].RatePercent > out[j].RatePercent })
	return out
}

// LocationDistribution tallies records per (normalized) location, sorted by
// rate descending with name order on ties.
func LocationDistribution(records []ClassifiedRecord) []LocationBucket {
	counts := make(map[string]int)
	for _, r := range records {
		counts[normalizeLocation(r.Record.AttendanceRecordLocation)]++
	}
	total := len(records)

	out := make([]LocationBucket, 0, len(counts))
	for loc, n := range counts {
		out = append(out, LocationBucket{
			Location:    loc,
			Count:       n,
			RatePercent: roundPercent(n, total),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Location < out[j].Location })
	sort.SliceStable(out, func(i, j int) bool { return out[i].RatePercent > out[j].RatePercent })
	return out
}

// MemberAttendanceStatus derives attended/absent counts against the current
// ACTIVE roster. The two rates are rounded independently and may not sum to
// 100. An empty roster yields an all-zero summary.
func MemberAttendanceStatus(records []ClassifiedRecord, totalActiveMembers int) MemberStatusSummary {
	if totalActiveMembers <= 0 {
		return MemberStatusSummary{}
	}

	attendedSet := make(map[uuid.UUID]struct{})
	for _, r := range records {
		attendedSet[r.Record.AttendanceRecordUserID] = struct{}{}
	}
	attended := len(attendedSet)
	absent := totalActiveMembers - attended

	return MemberStatusSummary{
		TotalActiveMembers:    totalActiveMembers,
		AttendedMembers:       attended,
		AttendanceRatePercent: roundPercent(attended, totalActiveMembers),
		AbsentMembers:         absent,
		AbsentRatePercent:     roundPercent(absent, totalActiveMembers),
	}
}
