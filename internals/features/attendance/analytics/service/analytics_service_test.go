package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"runcrew_backend/internals/features/attendance/records/model"
)

/* ===============================
   shared fixtures
=================================*/

func mustTime(s string) time.Time {
	v, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return v.UTC()
}

func strPtr(s string) *string { return &s }

func rec(user uuid.UUID, attendedAtUTC string, location *string, isHost bool) model.AttendanceRecordModel {
	return model.AttendanceRecordModel{
		AttendanceRecordID:         uuid.New(),
		AttendanceRecordUserID:     user,
		AttendanceRecordLocation:   location,
		AttendanceRecordAttendedAt: mustTime(attendedAtUTC),
		AttendanceRecordIsHost:     isHost,
	}
}

func deletedRec(user uuid.UUID, attendedAtUTC string, location *string, isHost bool) model.AttendanceRecordModel {
	r := rec(user, attendedAtUTC, location, isHost)
	r.AttendanceRecordDeletedAt = gorm.DeletedAt{Time: mustTime(attendedAtUTC).Add(time.Hour), Valid: true}
	return r
}

// fakeFetcher serves an in-memory row set. Its range filter is deliberately
// sloppy (±6h slack) to mimic a store whose UTC filter can leak adjacent-month
// rows; the reclassifier must absorb that.
type fakeFetcher struct {
	rows  []model.AttendanceRecordModel
	err   error
	calls int
}

func (f *fakeFetcher) FetchInRange(_ context.Context, _ uuid.UUID, startUTC, endUTC time.Time, memberIDs []uuid.UUID) ([]model.AttendanceRecordModel, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	allowed := make(map[uuid.UUID]struct{}, len(memberIDs))
	for _, id := range memberIDs {
		allowed[id] = struct{}{}
	}
	lo, hi := startUTC.Add(-6*time.Hour), endUTC.Add(6*time.Hour)
	var out []model.AttendanceRecordModel
	for _, r := range f.rows {
		if _, ok := allowed[r.AttendanceRecordUserID]; !ok {
			continue
		}
		if r.AttendanceRecordAttendedAt.Before(lo) || !r.AttendanceRecordAttendedAt.Before(hi) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

type fakeRoster struct {
	members []RosterMember
	extra   map[uuid.UUID]bool // non-ACTIVE memberships that still count for IsMember
	err     error
}

func (r *fakeRoster) ActiveMembers(context.Context, uuid.UUID) ([]RosterMember, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.members, nil
}

func (r *fakeRoster) IsMember(_ context.Context, _ uuid.UUID, userID uuid.UUID) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	for _, m := range r.members {
		if m.UserID == userID {
			return true, nil
		}
	}
	return r.extra[userID], nil
}

/* ===============================
   Monthly
=================================*/

func TestMonthly_FullPipeline(t *testing.T) {
	crewID := uuid.New()
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	roster := &fakeRoster{members: []RosterMember{
		{UserID: a, Name: "김철수"},
		{UserID: b, Name: "박영희"},
		{UserID: c, Name: "이민준"}, // never attends
	}}

	fetcher := &fakeFetcher{rows: []model.AttendanceRecordModel{
		// A: five attendances in Feb 2024 KST, two hosted
		rec(a, "2024-02-06T10:30:00Z", strPtr("잠수교"), true),
		rec(a, "2024-02-09T23:00:00Z", strPtr("반포지구"), false),
		rec(a, "2024-02-13T10:30:00Z", strPtr("잠수교"), true),
		rec(a, "2024-02-16T23:00:00Z", strPtr("반포지구"), false),
		rec(a, "2024-02-20T10:30:00Z", strPtr("잠수교"), false),
		// B: three attendances, same meetings as A
		rec(b, "2024-02-06T10:30:00Z", strPtr("잠수교"), false),
		rec(b, "2024-02-13T10:30:00Z", strPtr("잠수교"), false),
		rec(b, "2024-02-20T10:30:00Z", strPtr("잠수교"), false),
		// boundary row: 2024-03-01 00:00 KST, leaks through the sloppy fetch
		// but must be reclassified out of February
		rec(a, "2024-02-29T15:00:00Z", strPtr("잠수교"), false),
		// non-member row must never count
		rec(uuid.New(), "2024-02-06T10:30:00Z", strPtr("잠수교"), false),
	}}

	svc := NewAnalyticsServiceWith(fetcher, roster)
	res, err := svc.Monthly(context.Background(), MonthlyQuery{
		CrewID: crewID, Year: 2024, Month: 2, RequesterID: b,
	})
	require.NoError(t, err)

	require.Equal(t, 2024, res.Year)
	require.Equal(t, 2, res.Month)
	require.Equal(t, 8, res.TotalAttendanceCount)

	// distinct (location, HH:MM) meetings: 잠수교_19:30 and 반포지구_08:00
	require.Equal(t, 2, res.MeetingCount)

	require.Equal(t, 3, res.MemberStatus.TotalActiveMembers)
	require.Equal(t, 2, res.MemberStatus.AttendedMembers)
	require.Equal(t, 67, res.MemberStatus.AttendanceRatePercent)
	require.Equal(t, 1, res.MemberStatus.AbsentMembers)
	require.Equal(t, 33, res.MemberStatus.AbsentRatePercent)

	require.Len(t, res.DayParticipation, 7)
	require.Equal(t, 2, res.DayParticipation[0].Weekday) // Tuesday dominates
	require.Equal(t, 6, res.DayParticipation[0].Count)

	require.Len(t, res.AttendanceRanking, 2)
	require.Equal(t, a, res.AttendanceRanking[0].UserID)
	require.Equal(t, 5, res.AttendanceRanking[0].Value)
	require.Equal(t, 1, res.AttendanceRanking[0].Rank)
	require.Equal(t, b, res.AttendanceRanking[1].UserID)
	require.Equal(t, 3, res.AttendanceRanking[1].Value)
	require.Equal(t, 2, res.AttendanceRanking[1].Rank)
	require.True(t, res.AttendanceRanking[1].IsCurrentUser)

	require.Len(t, res.HostingRanking, 1)
	require.Equal(t, a, res.HostingRanking[0].UserID)
	require.Equal(t, 2, res.HostingRanking[0].Value)

	// empty January → no comparable prior month
	require.Nil(t, res.AttendanceCountDeltaPercent)
	require.Nil(t, res.MeetingCountDeltaPercent)
}

func TestMonthly_PriorMonthDeltas(t *testing.T) {
	a := uuid.New()
	roster := &fakeRoster{members: []RosterMember{{UserID: a, Name: "김철수"}}}
	fetcher := &fakeFetcher{rows: []model.AttendanceRecordModel{
		// January 2024: three records, one meeting slot
		rec(a, "2024-01-09T10:30:00Z", strPtr("잠수교"), false),
		rec(a, "2024-01-16T10:30:00Z", strPtr("잠수교"), false),
		rec(a, "2024-01-23T10:30:00Z", strPtr("잠수교"), false),
		// February 2024: five records, two meeting slots
		rec(a, "2024-02-06T10:30:00Z", strPtr("잠수교"), false),
		rec(a, "2024-02-13T10:30:00Z", strPtr("잠수교"), false),
		rec(a, "2024-02-20T10:30:00Z", strPtr("잠수교"), false),
		rec(a, "2024-02-09T23:00:00Z", strPtr("반포지구"), false),
		rec(a, "2024-02-16T23:00:00Z", strPtr("반포지구"), false),
	}}

	svc := NewAnalyticsServiceWith(fetcher, roster)
	res, err := svc.Monthly(context.Background(), MonthlyQuery{
		CrewID: uuid.New(), Year: 2024, Month: 2, RequesterID: a,
	})
	require.NoError(t, err)

	require.Equal(t, 5, res.TotalAttendanceCount)
	require.NotNil(t, res.AttendanceCountDeltaPercent)
	require.Equal(t, 67, *res.AttendanceCountDeltaPercent) // (5-3)/3
	require.NotNil(t, res.MeetingCountDeltaPercent)
	require.Equal(t, 100, *res.MeetingCountDeltaPercent) // (2-1)/1
}

func TestMonthly_ValidationBeforeFetch(t *testing.T) {
	fetcher := &fakeFetcher{}
	svc := NewAnalyticsServiceWith(fetcher, &fakeRoster{})

	_, err := svc.Monthly(context.Background(), MonthlyQuery{
		CrewID: uuid.New(), Year: 2024, Month: 13, RequesterID: uuid.New(),
	})
	require.ErrorIs(t, err, ErrValidation)
	require.Zero(t, fetcher.calls)
}

func TestMonthly_NonMemberGetsEmptyRankings(t *testing.T) {
	a := uuid.New()
	roster := &fakeRoster{members: []RosterMember{{UserID: a, Name: "김철수"}}}
	fetcher := &fakeFetcher{rows: []model.AttendanceRecordModel{
		rec(a, "2024-02-06T10:30:00Z", strPtr("잠수교"), true),
	}}

	svc := NewAnalyticsServiceWith(fetcher, roster)
	res, err := svc.Monthly(context.Background(), MonthlyQuery{
		CrewID: uuid.New(), Year: 2024, Month: 2, RequesterID: uuid.New(),
	})
	require.NoError(t, err)

	// aggregate stats still come back, only the leaderboards are withheld
	require.Equal(t, 1, res.TotalAttendanceCount)
	require.NotNil(t, res.AttendanceRanking)
	require.Empty(t, res.AttendanceRanking)
	require.NotNil(t, res.HostingRanking)
	require.Empty(t, res.HostingRanking)
}

func TestMonthly_EmptyRosterIsZeroResult(t *testing.T) {
	fetcher := &fakeFetcher{rows: []model.AttendanceRecordModel{
		rec(uuid.New(), "2024-02-06T10:30:00Z", strPtr("잠수교"), false),
	}}
	svc := NewAnalyticsServiceWith(fetcher, &fakeRoster{})

	res, err := svc.Monthly(context.Background(), MonthlyQuery{
		CrewID: uuid.New(), Year: 2024, Month: 2, RequesterID: uuid.New(),
	})
	require.NoError(t, err)
	require.Equal(t, 0, res.TotalAttendanceCount)
	require.Equal(t, 0, res.MeetingCount)
	require.Equal(t, MemberStatusSummary{}, res.MemberStatus)
	require.Empty(t, res.AttendanceRanking)
}

func TestMonthly_SoftDeletedRecordsExcluded(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	roster := &fakeRoster{members: []RosterMember{
		{UserID: a, Name: "김철수"},
		{UserID: b, Name: "박영희"},
	}}
	// one live row plus a soft-deleted hosted row at another meeting slot;
	// the deleted row must contribute to no count, bucket, meeting or ranking
	fetcher := &fakeFetcher{rows: []model.AttendanceRecordModel{
		rec(a, "2024-02-06T10:30:00Z", strPtr("잠수교"), false),
		deletedRec(b, "2024-02-09T23:00:00Z", strPtr("반포지구"), true),
	}}

	svc := NewAnalyticsServiceWith(fetcher, roster)
	res, err := svc.Monthly(context.Background(), MonthlyQuery{
		CrewID: uuid.New(), Year: 2024, Month: 2, RequesterID: a,
	})
	require.NoError(t, err)

	require.Equal(t, 1, res.TotalAttendanceCount)
	require.Equal(t, 1, res.MeetingCount)
	require.Equal(t, 1, res.MemberStatus.AttendedMembers)
	require.Equal(t, 1, res.MemberStatus.AbsentMembers)

	require.Len(t, res.AttendanceRanking, 1)
	require.Equal(t, a, res.AttendanceRanking[0].UserID)
	require.Empty(t, res.HostingRanking)

	for _, bucket := range res.LocationParticipation {
		require.NotEqual(t, "반포지구", bucket.Location)
	}
}

func TestMonthly_DataSourceErrorPropagates(t *testing.T) {
	a := uuid.New()
	roster := &fakeRoster{members: []RosterMember{{UserID: a, Name: "김철수"}}}
	fetcher := &fakeFetcher{err: ErrDataSource}

	svc := NewAnalyticsServiceWith(fetcher, roster)
	_, err := svc.Monthly(context.Background(), MonthlyQuery{
		CrewID: uuid.New(), Year: 2024, Month: 2, RequesterID: a,
	})
	require.ErrorIs(t, err, ErrDataSource)
}

func TestMonthly_EarliestSupportedMonth(t *testing.T) {
	a := uuid.New()
	roster := &fakeRoster{members: []RosterMember{{UserID: a, Name: "김철수"}}}
	svc := NewAnalyticsServiceWith(&fakeFetcher{}, roster)

	// January 1900 has no resolvable prior month; deltas are nil, not an error
	res, err := svc.Monthly(context.Background(), MonthlyQuery{
		CrewID: uuid.New(), Year: 1900, Month: 1, RequesterID: a,
	})
	require.NoError(t, err)
	require.Nil(t, res.AttendanceCountDeltaPercent)
	require.Nil(t, res.MeetingCountDeltaPercent)
}

/* ===============================
   MeetingsForDay
=================================*/

func TestMeetingsForDay(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	roster := &fakeRoster{members: []RosterMember{
		{UserID: a, Name: "김철수"},
		{UserID: b, Name: "박영희"},
	}}
	fetcher := &fakeFetcher{rows: []model.AttendanceRecordModel{
		rec(a, "2024-02-06T10:30:00Z", strPtr("잠수교"), true),  // Feb 6 19:30 KST
		rec(b, "2024-02-06T10:30:00Z", strPtr("잠수교"), false), // same meeting
		rec(a, "2024-02-06T23:00:00Z", strPtr("반포지구"), false), // Feb 7 08:00 KST → other day
	}}

	svc := NewAnalyticsServiceWith(fetcher, roster)
	groups, err := svc.MeetingsForDay(context.Background(), uuid.New(), 2024, 2, 6)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	require.Equal(t, "잠수교", groups[0].Location)
	require.Equal(t, "19:30", groups[0].TimeOfDay)
	require.Len(t, groups[0].Records, 2)

	_, err = svc.MeetingsForDay(context.Background(), uuid.New(), 2024, 2, 30)
	require.ErrorIs(t, err, ErrValidation)
}
