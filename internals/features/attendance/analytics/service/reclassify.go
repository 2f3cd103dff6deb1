package service

import (
	"github.com/google/uuid"

	"runcrew_backend/internals/features/attendance/records/model"
	"runcrew_backend/internals/helpers/kst"
)

// ClassifiedRecord is a raw attendance row tagged with its exact KST
// calendar attribution.
type ClassifiedRecord struct {
	Record    model.AttendanceRecordModel
	Day       int    // KST day of month
	Weekday   int    // 0=Sunday .. 6=Saturday, KST
	TimeOfDay string // "HH:MM", KST, minute precision
}

// ReclassifyKST re-derives each record's true KST calendar month and drops
// anything outside the target (year, month). The DB range filter works on
// UTC instants, so rows from the adjacent month can leak in near the +9h
// boundary; this exact pass runs unconditionally after every fetch, even
// when the resolver range was already exact.
func ReclassifyKST(rows []model.AttendanceRecordModel, year, month int) []ClassifiedRecord {
	out := make([]ClassifiedRecord, 0, len(rows))
	for i := range rows {
		// soft-deleted rows never count, even if a data source returns them
		if rows[i].AttendanceRecordDeletedAt.Valid {
			continue
		}
		local := kst.FromUTC(rows[i].AttendanceRecordAttendedAt)
		if local.Year() != year || int(local.Month()) != month {
			continue
		}
		out = append(out, ClassifiedRecord{
			Record:    rows[i],
			Day:       local.Day(),
			Weekday:   kst.Weekday(rows[i].AttendanceRecordAttendedAt),
			TimeOfDay: kst.TimeOfDay(rows[i].AttendanceRecordAttendedAt),
		})
	}
	return out
}

// RestrictToMembers keeps only records whose user is in the ACTIVE roster.
// The fetch already filters by member IDs; this guards the invariant at the
// computation layer as well.
func RestrictToMembers(records []ClassifiedRecord, active map[uuid.UUID]struct{}) []ClassifiedRecord {
	out := make([]ClassifiedRecord, 0, len(records))
	for _, r := range records {
		if _, ok := active[r.Record.AttendanceRecordUserID]; ok {
			out = append(out, r)
		}
	}
	return out
}
