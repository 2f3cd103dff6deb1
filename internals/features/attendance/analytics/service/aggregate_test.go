package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"runcrew_backend/internals/features/attendance/records/model"
)

func TestDayOfWeekDistribution(t *testing.T) {
	u := uuid.New()
	// Feb 2024 KST: 6th = Tue, 8th = Thu, 13th = Tue
	records := classify(t, []model.AttendanceRecordModel{
		rec(u, "2024-02-06T10:30:00Z", nil, false),
		rec(u, "2024-02-13T10:30:00Z", nil, false),
		rec(u, "2024-02-08T10:30:00Z", nil, false),
	})

	out := DayOfWeekDistribution(records)
	require.Len(t, out, 7)

	// sorted by rate descending
	require.Equal(t, 2, out[0].Weekday) // Tuesday
	require.Equal(t, 2, out[0].Count)
	require.Equal(t, 67, out[0].RatePercent)
	require.Equal(t, 4, out[1].Weekday) // Thursday
	require.Equal(t, 1, out[1].Count)
	require.Equal(t, 33, out[1].RatePercent)

	sum := 0
	for _, b := range out {
		sum += b.Count
	}
	require.Equal(t, len(records), sum)
}

func TestDayOfWeekDistribution_TiesKeepWeekdayOrder(t *testing.T) {
	out := DayOfWeekDistribution(nil)
	require.Len(t, out, 7)
	// all-zero: stable sort keeps Sunday..Saturday
	for i, b := range out {
		require.Equal(t, i, b.Weekday)
		require.Equal(t, 0, b.Count)
		require.Equal(t, 0, b.RatePercent)
	}
}

func TestLocationDistribution(t *testing.T) {
	u := uuid.New()
	records := classify(t, []model.AttendanceRecordModel{
		rec(u, "2024-02-06T10:30:00Z", strPtr("잠수교"), false),
		rec(u, "2024-02-07T10:30:00Z", strPtr("잠수교"), false),
		rec(u, "2024-02-08T10:30:00Z", strPtr("반포지구"), false),
		rec(u, "2024-02-09T10:30:00Z", nil, false),
	})

	out := LocationDistribution(records)
	require.Len(t, out, 3)

	require.Equal(t, "잠수교", out[0].Location)
	require.Equal(t, 2, out[0].Count)
	require.Equal(t, 50, out[0].RatePercent)

	// the two singletons tie at 25%; name order breaks the tie
	require.Equal(t, 1, out[1].Count)
	require.Equal(t, 1, out[2].Count)
	require.Less(t, out[1].Location, out[2].Location)

	for _, b := range out[1:] {
		require.Equal(t, 25, b.RatePercent)
	}
}

func TestMemberAttendanceStatus(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	records := classify(t, []model.AttendanceRecordModel{
		rec(a, "2024-02-06T10:30:00Z", nil, false),
		rec(a, "2024-02-13T10:30:00Z", nil, false), // repeat attendee counts once
		rec(b, "2024-02-06T10:30:00Z", nil, false),
	})

	s := MemberAttendanceStatus(records, 3)
	require.Equal(t, 3, s.TotalActiveMembers)
	require.Equal(t, 2, s.AttendedMembers)
	require.Equal(t, 67, s.AttendanceRatePercent)
	require.Equal(t, 1, s.AbsentMembers)
	require.Equal(t, 33, s.AbsentRatePercent)
}

func TestMemberAttendanceStatus_IndependentRounding(t *testing.T) {
	a := uuid.New()
	records := classify(t, []model.AttendanceRecordModel{
		rec(a, "2024-02-06T10:30:00Z", nil, false),
	})

	// 1/3 and 2/3 both round away from the exact thirds; 33+67 = 100 here,
	// but each side is rounded on its own
	s := MemberAttendanceStatus(records, 3)
	require.Equal(t, 33, s.AttendanceRatePercent)
	require.Equal(t, 67, s.AbsentRatePercent)
}

func TestMemberAttendanceStatus_EmptyRoster(t *testing.T) {
	s := MemberAttendanceStatus(nil, 0)
	require.Equal(t, MemberStatusSummary{}, s)
}

func TestMemberAttendanceStatus_NoRecords(t *testing.T) {
	s := MemberAttendanceStatus(nil, 5)
	require.Equal(t, 5, s.TotalActiveMembers)
	require.Equal(t, 0, s.AttendedMembers)
	require.Equal(t, 0, s.AttendanceRatePercent)
	require.Equal(t, 5, s.AbsentMembers)
	require.Equal(t, 100, s.AbsentRatePercent)
}
