package service

import (
	"sort"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"runcrew_backend/internals/features/attendance/records/model"
)

// PlaceholderName stands in for a member whose display name could not be
// resolved; leaderboards never render a null name.
const PlaceholderName = "알 수 없음"

type RankingEntry struct {
	UserID        uuid.UUID
	Name          string
	Value         int
	Rank          int
	IsCurrentUser bool
}

// BuildRanking tallies one record-count leaderboard. Only users with at
// least one matching record appear ("participants only"); zero-value
// members are omitted entirely. Ordering: value descending, then Korean
// collation of the display name ascending, then user ID — ranks are strictly
// sequential 1..N even on exact value ties.
func BuildRanking(records []ClassifiedRecord, names map[uuid.UUID]string, requesterID uuid.UUID, match func(model.AttendanceRecordModel) bool) []RankingEntry {
	counts := make(map[uuid.UUID]int)
	for _, r := range records {
		if match == nil || match(r.Record) {
			counts[r.Record.AttendanceRecordUserID]++
		}
	}

	entries := make([]RankingEntry, 0, len(counts))
	for userID, n := range counts {
		name, ok := names[userID]
		if !ok || name == "" {
			name = PlaceholderName
		}
		entries = append(entries, RankingEntry{
			UserID:        userID,
			Name:          name,
			Value:         n,
			IsCurrentUser: userID == requesterID,
		})
	}

	col := collate.New(language.Korean)
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Value != entries[j].Value {
			return entries[i].Value > entries[j].Value
		}
		if cmp := col.CompareString(entries[i].Name, entries[j].Name); cmp != 0 {
			return cmp < 0
		}
		return entries[i].UserID.String() < entries[j].UserID.String()
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

// AttendanceRanking counts every record per user.
func AttendanceRanking(records []ClassifiedRecord, names map[uuid.UUID]string, requesterID uuid.UUID) []RankingEntry {
	return BuildRanking(records, names, requesterID, nil)
}

// HostingRanking counts only hosted records per user.
func HostingRanking(records []ClassifiedRecord, names map[uuid.UUID]string, requesterID uuid.UUID) []RankingEntry {
	return BuildRanking(records, names, requesterID, func(r model.AttendanceRecordModel) bool {
		return r.AttendanceRecordIsHost
	})
}
