package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"runcrew_backend/internals/features/attendance/records/model"
)

func repeatRec(user uuid.UUID, n int, host bool) []model.AttendanceRecordModel {
	out := make([]model.AttendanceRecordModel, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, rec(user, "2024-02-06T10:30:00Z", nil, host))
	}
	return out
}

func TestAttendanceRanking_OrderAndRanks(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	names := map[uuid.UUID]string{a: "김철수", b: "박영희", c: "이민준"}

	var rows []model.AttendanceRecordModel
	rows = append(rows, repeatRec(a, 5, false)...)
	rows = append(rows, repeatRec(b, 3, false)...)
	rows = append(rows, repeatRec(c, 1, false)...)

	out := AttendanceRanking(classify(t, rows), names, b)
	require.Len(t, out, 3)

	require.Equal(t, []int{1, 2, 3}, []int{out[0].Rank, out[1].Rank, out[2].Rank})
	require.Equal(t, a, out[0].UserID)
	require.Equal(t, 5, out[0].Value)
	require.Equal(t, b, out[1].UserID)
	require.True(t, out[1].IsCurrentUser)
	require.False(t, out[0].IsCurrentUser)
	require.Equal(t, c, out[2].UserID)
}

func TestAttendanceRanking_ParticipantsOnly(t *testing.T) {
	a, zero := uuid.New(), uuid.New()
	names := map[uuid.UUID]string{a: "김철수", zero: "박영희"}

	out := AttendanceRanking(classify(t, repeatRec(a, 2, false)), names, zero)
	require.Len(t, out, 1)
	require.Equal(t, a, out[0].UserID)
}

func TestAttendanceRanking_TiesUseKoreanCollation(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	// ㄱ sorts before ㅂ under Korean collation
	names := map[uuid.UUID]string{a: "박영희", b: "김철수"}

	var rows []model.AttendanceRecordModel
	rows = append(rows, repeatRec(a, 3, false)...)
	rows = append(rows, repeatRec(b, 3, false)...)

	out := AttendanceRanking(classify(t, rows), names, uuid.Nil)
	require.Len(t, out, 2)
	require.Equal(t, "김철수", out[0].Name)
	require.Equal(t, 1, out[0].Rank)
	require.Equal(t, "박영희", out[1].Name)
	require.Equal(t, 2, out[1].Rank) // ties still get sequential ranks
}

func TestAttendanceRanking_Deterministic(t *testing.T) {
	ids := make([]uuid.UUID, 6)
	names := map[uuid.UUID]string{}
	var rows []model.AttendanceRecordModel
	for i := range ids {
		ids[i] = uuid.New()
		// same name and same count: only the user ID can break the tie
		names[ids[i]] = "러너"
		rows = append(rows, repeatRec(ids[i], 2, false)...)
	}

	first := AttendanceRanking(classify(t, rows), names, uuid.Nil)
	for i := 0; i < 10; i++ {
		again := AttendanceRanking(classify(t, rows), names, uuid.Nil)
		require.Equal(t, first, again)
	}
	for i := 1; i < len(first); i++ {
		require.Less(t, first[i-1].UserID.String(), first[i].UserID.String())
	}
}

func TestAttendanceRanking_PlaceholderName(t *testing.T) {
	unknown := uuid.New()
	out := AttendanceRanking(classify(t, repeatRec(unknown, 1, false)), nil, uuid.Nil)
	require.Len(t, out, 1)
	require.Equal(t, PlaceholderName, out[0].Name)
}

func TestHostingRanking_CountsHostedOnly(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	names := map[uuid.UUID]string{a: "김철수", b: "박영희"}

	var rows []model.AttendanceRecordModel
	rows = append(rows, repeatRec(a, 3, false)...)
	rows = append(rows, repeatRec(a, 2, true)...)
	rows = append(rows, repeatRec(b, 4, false)...) // attends a lot, never hosts

	out := HostingRanking(classify(t, rows), names, a)
	require.Len(t, out, 1)
	require.Equal(t, a, out[0].UserID)
	require.Equal(t, 2, out[0].Value)
	require.Equal(t, 1, out[0].Rank)
	require.True(t, out[0].IsCurrentUser)
}

func TestBuildRanking_Empty(t *testing.T) {
	require.Empty(t, AttendanceRanking(nil, nil, uuid.Nil))
	require.Empty(t, HostingRanking(nil, nil, uuid.Nil))
}
