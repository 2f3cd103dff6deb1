package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"runcrew_backend/internals/features/attendance/records/model"
)

func classify(t *testing.T, rows []model.AttendanceRecordModel) []ClassifiedRecord {
	t.Helper()
	return ReclassifyKST(rows, 2024, 2)
}

func TestGroupMeetings_KeyIsLocationPlusTime(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	records := classify(t, []model.AttendanceRecordModel{
		rec(a, "2024-02-06T10:30:00Z", strPtr("잠수교"), true),  // 19:30 KST
		rec(b, "2024-02-06T10:30:00Z", strPtr("잠수교"), false), // same meeting
		rec(a, "2024-02-09T23:00:00Z", strPtr("잠수교"), false), // 08:00 KST, different meeting
		rec(a, "2024-02-06T10:30:00Z", strPtr("반포지구"), false), // same time, other place
	})

	groups := GroupMeetings(records)
	require.Len(t, groups, 3)

	byKey := map[string]int{}
	for _, g := range groups {
		byKey[g.Key()] = len(g.Records)
	}
	require.Equal(t, 2, byKey["잠수교_19:30"])
	require.Equal(t, 1, byKey["잠수교_08:00"])
	require.Equal(t, 1, byKey["반포지구_19:30"])

	require.Equal(t, 3, CountMeetings(records))
}

func TestGroupMeetings_MissingLocationCollapsesToFallback(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	records := classify(t, []model.AttendanceRecordModel{
		rec(a, "2024-02-06T10:30:00Z", nil, false),
		rec(b, "2024-02-06T10:30:00Z", strPtr(""), false),
		rec(c, "2024-02-06T10:30:00Z", strPtr("   "), false),
	})

	groups := GroupMeetings(records)
	require.Len(t, groups, 1)
	require.Equal(t, FallbackLocation, groups[0].Location)
	require.Equal(t, "19:30", groups[0].TimeOfDay)
	require.Len(t, groups[0].Records, 3)
}

func TestGroupMeetings_DeterministicOrder(t *testing.T) {
	a := uuid.New()
	rows := []model.AttendanceRecordModel{
		rec(a, "2024-02-06T10:30:00Z", strPtr("뚝섬"), false),
		rec(a, "2024-02-06T23:00:00Z", strPtr("반포지구"), false),
		rec(a, "2024-02-06T10:30:00Z", strPtr("반포지구"), false),
	}

	first := GroupMeetings(classify(t, rows))
	second := GroupMeetings(classify(t, rows))
	require.Equal(t, first, second)

	for i := 1; i < len(first); i++ {
		require.Less(t, first[i-1].Key(), first[i].Key())
	}
}

func TestCountMeetings_Empty(t *testing.T) {
	require.Equal(t, 0, CountMeetings(nil))
}
