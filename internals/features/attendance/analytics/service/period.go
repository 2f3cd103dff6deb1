package service

import (
	"fmt"
	"time"

	"runcrew_backend/internals/helpers/kst"
)

// MonthRange is a half-open UTC instant range [StartUTC, EndUTC) that
// covers exactly one KST calendar month.
type MonthRange struct {
	StartUTC time.Time
	EndUTC   time.Time
}

const (
	minYear = 1900
	maxYear = 2200
)

// ResolveMonthRange converts a (year, month) pair into the UTC range of
// that KST month. KST midnight of day 1 shifted by -9h is the start; the
// next month's first KST instant (Go normalizes month 13 to January of
// year+1) is the exclusive end.
func ResolveMonthRange(year, month int) (MonthRange, error) {
	if month < 1 || month > 12 {
		return MonthRange{}, fmt.Errorf("%w: month must be 1-12, got %d", ErrValidation, month)
	}
	if year < minYear || year > maxYear {
		return MonthRange{}, fmt.Errorf("%w: year must be %d-%d, got %d", ErrValidation, minYear, maxYear, year)
	}

	startKST := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, kst.Location)
	endKST := time.Date(year, time.Month(month)+1, 1, 0, 0, 0, 0, kst.Location)

	return MonthRange{
		StartUTC: startKST.UTC(),
		EndUTC:   endKST.UTC(),
	}, nil
}

// ResolveDayRange is the single-day variant, used for the meetings-today view.
func ResolveDayRange(year, month, day int) (MonthRange, error) {
	if _, err := ResolveMonthRange(year, month); err != nil {
		return MonthRange{}, err
	}
	startKST := time.Date(year, time.Month(month), day, 0, 0, 0, 0, kst.Location)
	// time.Date normalizes overflow (Feb 30 → Mar 2), so a changed day/month
	// means the input day does not exist in this month.
	if day < 1 || startKST.Day() != day || int(startKST.Month()) != month {
		return MonthRange{}, fmt.Errorf("%w: day %d is not in %04d-%02d", ErrValidation, day, year, month)
	}
	return MonthRange{
		StartUTC: startKST.UTC(),
		EndUTC:   startKST.AddDate(0, 0, 1).UTC(),
	}, nil
}

// PreviousPeriod rolls (year, month) back one KST month, Jan → Dec.
func PreviousPeriod(year, month int) (int, int) {
	if month == 1 {
		return year - 1, 12
	}
	return year, month - 1
}
