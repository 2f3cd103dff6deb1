package service

import (
	"sort"
	"strings"
)

// FallbackLocation replaces a missing/blank location before grouping, so
// all null-location records of the same time bucket collapse together.
const FallbackLocation = "기타"

// MeetingGroup is a derived, non-persisted grouping: one distinct
// (location, KST time-of-day) combination is one meeting.
type MeetingGroup struct {
	Location  string
	TimeOfDay string // "HH:MM"
	Records   []ClassifiedRecord
}

func (g MeetingGroup) Key() string {
	return g.Location + "_" + g.TimeOfDay
}

func normalizeLocation(loc *string) string {
	if loc == nil || strings.TrimSpace(*loc) == "" {
		return FallbackLocation
	}
	return *loc
}

// GroupMeetings collapses records into meetings keyed by location + "HH:MM".
// Output is sorted by key so repeated runs over the same snapshot are
// identical.
func GroupMeetings(records []ClassifiedRecord) []MeetingGroup {
	byKey := make(map[string]*MeetingGroup)
	for _, r := range records {
		loc := normalizeLocation(r.Record.AttendanceRecordLocation)
		key := loc + "_" + r.TimeOfDay
		g, ok := byKey[key]
		if !ok {
			g = &MeetingGroup{Location: loc, TimeOfDay: r.TimeOfDay}
			byKey[key] = g
		}
		g.Records = append(g.Records, r)
	}

	out := make([]MeetingGroup, 0, len(byKey))
	for _, g := range byKey {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })
	return out
}

// CountMeetings counts distinct (location, time-of-day) combinations.
func CountMeetings(records []ClassifiedRecord) int {
	seen := make(map[string]struct{})
	for _, r := range records {
		key := normalizeLocation(r.Record.AttendanceRecordLocation) + "_" + r.TimeOfDay
		seen[key] = struct{}{}
	}
	return len(seen)
}
