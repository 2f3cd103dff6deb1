package service

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// AnalyticsService turns raw UTC attendance rows into the KST-correct
// monthly statistics bundle. It is stateless and read-only: each call
// derives everything from one immutable snapshot.
type AnalyticsService struct {
	Records RecordFetcher
	Roster  MemberRoster
}

func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{
		Records: &GormRecordFetcher{DB: db},
		Roster:  &GormMemberRoster{DB: db},
	}
}

// NewAnalyticsServiceWith lets tests swap the data-source boundary.
func NewAnalyticsServiceWith(records RecordFetcher, roster MemberRoster) *AnalyticsService {
	return &AnalyticsService{Records: records, Roster: roster}
}

type MonthlyQuery struct {
	CrewID      uuid.UUID
	Year        int
	Month       int
	RequesterID uuid.UUID
}

type MonthlyResult struct {
	Year  int
	Month int

	DayParticipation      []WeekdayBucket
	LocationParticipation []LocationBucket
	MemberStatus          MemberStatusSummary

	AttendanceRanking []RankingEntry
	HostingRanking    []RankingEntry

	MeetingCount         int
	TotalAttendanceCount int

	// month-over-month deltas; nil = no comparable data in the prior month
	AttendanceCountDeltaPercent *int
	MeetingCountDeltaPercent    *int
}

// Monthly runs the full pipeline: resolve KST month boundaries, fetch the
// snapshot restricted to the ACTIVE roster, reclassify exactly, then derive
// distributions, member status, meetings, rankings and prior-month deltas.
// Validation happens before any data-source call.
func (s *AnalyticsService) Monthly(ctx context.Context, q MonthlyQuery) (*MonthlyResult, error) {
	rng, err := ResolveMonthRange(q.Year, q.Month)
	if err != nil {
		return nil, err
	}
	roster, err := s.Roster.ActiveMembers(ctx, q.CrewID)
	if err != nil {
		return nil, err
	}
	memberIDs := make([]uuid.UUID, 0, len(roster))
	activeSet := make(map[uuid.UUID]struct{}, len(roster))
	names := make(map[uuid.UUID]string, len(roster))
	for _, m := range roster {
		memberIDs = append(memberIDs, m.UserID)
		activeSet[m.UserID] = struct{}{}
		names[m.UserID] = m.Name
	}

	rows, err := s.Records.FetchInRange(ctx, q.CrewID, rng.StartUTC, rng.EndUTC, memberIDs)
	if err != nil {
		return nil, err
	}
	records := RestrictToMembers(ReclassifyKST(rows, q.Year, q.Month), activeSet)

	// Prior month for the deltas. A prior month outside the supported year
	// range simply counts as empty, it is not a caller error.
	var prevRecords []ClassifiedRecord
	prevYear, prevMonth := PreviousPeriod(q.Year, q.Month)
	if prevRng, prevErr := ResolveMonthRange(prevYear, prevMonth); prevErr == nil {
		prevRows, err := s.Records.FetchInRange(ctx, q.CrewID, prevRng.StartUTC, prevRng.EndUTC, memberIDs)
		if err != nil {
			return nil, err
		}
		prevRecords = RestrictToMembers(ReclassifyKST(prevRows, prevYear, prevMonth), activeSet)
	}

	res := &MonthlyResult{
		Year:                 q.Year,
		Month:                q.Month,
		TotalAttendanceCount: len(records),
	}

	// The three aggregation families are independent pure functions over the
	// same snapshot; run them concurrently.
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		res.DayParticipation = DayOfWeekDistribution(records)
		return nil
	})
	g.Go(func() error {
		res.LocationParticipation = LocationDistribution(records)
		return nil
	})
	g.Go(func() error {
		res.MemberStatus = MemberAttendanceStatus(records, len(roster))
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res.MeetingCount = CountMeetings(records)
	res.AttendanceCountDeltaPercent = MonthOverMonthDelta(len(records), len(prevRecords))
	res.MeetingCountDeltaPercent = MonthOverMonthDelta(res.MeetingCount, CountMeetings(prevRecords))

	// Rankings run over the raw reclassified rows, not the meeting view.
	// A requester without a membership gets two empty leaderboards.
	isMember, err := s.Roster.IsMember(ctx, q.CrewID, q.RequesterID)
	if err != nil {
		return nil, err
	}
	if isMember {
		res.AttendanceRanking = AttendanceRanking(records, names, q.RequesterID)
		res.HostingRanking = HostingRanking(records, names, q.RequesterID)
	} else {
		res.AttendanceRanking = []RankingEntry{}
		res.HostingRanking = []RankingEntry{}
	}

	return res, nil
}

// MeetingsForDay groups one KST day's records into their meetings, for the
// management views ("meetings today").
func (s *AnalyticsService) MeetingsForDay(ctx context.Context, crewID uuid.UUID, year, month, day int) ([]MeetingGroup, error) {
	rng, err := ResolveDayRange(year, month, day)
	if err != nil {
		return nil, err
	}

	roster, err := s.Roster.ActiveMembers(ctx, crewID)
	if err != nil {
		return nil, err
	}
	memberIDs := make([]uuid.UUID, 0, len(roster))
	activeSet := make(map[uuid.UUID]struct{}, len(roster))
	for _, m := range roster {
		memberIDs = append(memberIDs, m.UserID)
		activeSet[m.UserID] = struct{}{}
	}

	rows, err := s.Records.FetchInRange(ctx, crewID, rng.StartUTC, rng.EndUTC, memberIDs)
	if err != nil {
		return nil, err
	}

	classified := RestrictToMembers(ReclassifyKST(rows, year, month), activeSet)
	// day-level exact filter on top of the month reclassification
	dayOnly := classified[:0:0]
	for _, r := range classified {
		if r.Day == day {
			dayOnly = append(dayOnly, r)
		}
	}
	return GroupMeetings(dayOnly), nil
}
