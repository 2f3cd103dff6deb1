package dto

import (
	"runcrew_backend/internals/features/attendance/analytics/service"
	recorddto "runcrew_backend/internals/features/attendance/records/dto"
	recordmodel "runcrew_backend/internals/features/attendance/records/model"
)

type WeekdayBucketResponse struct {
	Weekday     int `json:"weekday"` // 0=Sunday .. 6=Saturday (KST)
	Count       int `json:"count"`
	RatePercent int `json:"rate_percent"`
}

type LocationBucketResponse struct {
	Location    string `json:"location"`
	Count       int    `json:"count"`
	RatePercent int    `json:"rate_percent"`
}

type MemberStatusResponse struct {
	TotalActiveMembers    int `json:"total_active_members"`
	AttendedMembers       int `json:"attended_members"`
	AttendanceRatePercent int `json:"attendance_rate_percent"`
	AbsentMembers         int `json:"absent_members"`
	AbsentRatePercent     int `json:"absent_rate_percent"`
}

type RankingEntryResponse struct {
	UserID        string `json:"user_id"`
	Name          string `json:"name"`
	Value         int    `json:"value"`
	Rank          int    `json:"rank"`
	IsCurrentUser bool   `json:"is_current_user"`
}

type MonthlyAnalyticsResponse struct {
	Year  int `json:"year"`
	Month int `json:"month"`

	DayParticipation       []WeekdayBucketResponse  `json:"day_participation"`
	LocationParticipation  []LocationBucketResponse `json:"location_participation"`
	MemberAttendanceStatus MemberStatusResponse     `json:"member_attendance_status"`

	AttendanceRanking []RankingEntryResponse `json:"attendance_ranking"`
	HostingRanking    []RankingEntryResponse `json:"hosting_ranking"`

	MeetingCount         int `json:"meeting_count"`
	TotalAttendanceCount int `json:"total_attendance_count"`

	// null = no comparable data in the prior month (not 0%)
	AttendanceCountDeltaPercent *int `json:"attendance_count_delta_percent"`
	MeetingCountDeltaPercent    *int `json:"meeting_count_delta_percent"`
}

type MeetingGroupResponse struct {
	Location      string                               `json:"location"`
	TimeOfDay     string                               `json:"time_of_day"` // "HH:MM" KST
	AttendeeCount int                                  `json:"attendee_count"`
	Records       []recorddto.AttendanceRecordResponse `json:"records"`
}

func ToMonthlyAnalyticsResponse(r *service.MonthlyResult) *MonthlyAnalyticsResponse {
	out := &MonthlyAnalyticsResponse{
		Year:  r.Year,
		Month: r.Month,
		MemberAttendanceStatus: MemberStatusResponse{
			TotalActiveMembers:    r.MemberStatus.TotalActiveMembers,
			AttendedMembers:       r.MemberStatus.AttendedMembers,
			AttendanceRatePercent: r.MemberStatus.AttendanceRatePercent,
			AbsentMembers:         r.MemberStatus.AbsentMembers,
			AbsentRatePercent:     r.MemberStatus.AbsentRatePercent,
		},
		MeetingCount:                r.MeetingCount,
		TotalAttendanceCount:        r.TotalAttendanceCount,
		AttendanceCountDeltaPercent: r.AttendanceCountDeltaPercent,
		MeetingCountDeltaPercent:    r.MeetingCountDeltaPercent,
	}

	out.DayParticipation = make([]WeekdayBucketResponse, 0, len(r.DayParticipation))
	for _, b := range r.DayParticipation {
		out.DayParticipation = append(out.DayParticipation, WeekdayBucketResponse{
			Weekday: b.Weekday, Count: b.Count, RatePercent: b.RatePercent,
		})
	}

	out.LocationParticipation = make([]LocationBucketResponse, 0, len(r.LocationParticipation))
	for _, b := range r.LocationParticipation {
		out.LocationParticipation = append(out.LocationParticipation, LocationBucketResponse{
			Location: b.Location, Count: b.Count, RatePercent: b.RatePercent,
		})
	}

	out.AttendanceRanking = toRankingResponses(r.AttendanceRanking)
	out.HostingRanking = toRankingResponses(r.HostingRanking)
	return out
}

func toRankingResponses(entries []service.RankingEntry) []RankingEntryResponse {
	out := make([]RankingEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, RankingEntryResponse{
			UserID:        e.UserID.String(),
			Name:          e.Name,
			Value:         e.Value,
			Rank:          e.Rank,
			IsCurrentUser: e.IsCurrentUser,
		})
	}
	return out
}

func ToMeetingGroupResponses(groups []service.MeetingGroup) []MeetingGroupResponse {
	out := make([]MeetingGroupResponse, 0, len(groups))
	for _, g := range groups {
		rows := make([]recordmodel.AttendanceRecordModel, 0, len(g.Records))
		for _, r := range g.Records {
			rows = append(rows, r.Record)
		}
		out = append(out, MeetingGroupResponse{
			Location:      g.Location,
			TimeOfDay:     g.TimeOfDay,
			AttendeeCount: len(g.Records),
			Records:       recorddto.ToAttendanceRecordResponseList(rows),
		})
	}
	return out
}
