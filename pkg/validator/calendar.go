package validator

import (
	"fmt"
	"strconv"
	"time"

	"github.com/feedlint/feedlint/pkg/feed"
	"github.com/feedlint/feedlint/pkg/profile"
)

// parseFeedDate reads a YYYYMMDD date by fixed position. Out of range
// components normalise onto the calendar rather than failing; non-numeric
// input reports ok=false.
func parseFeedDate(value string) (time.Time, bool) {
	if len(value) != 8 {
		return time.Time{}, false
	}

	year, yearErr := strconv.Atoi(value[0:4])
	month, monthErr := strconv.Atoi(value[4:6])
	day, dayErr := strconv.Atoi(value[6:8])

	if yearErr != nil || monthErr != nil || dayErr != nil {
		return time.Time{}, false
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}

func isoDate(date time.Time) string {
	return date.Format("2006-01-02")
}

// expectedPeriod classifies a date: weekends are always period 1, the fixed
// summer window is period 3, the fixed school breaks are period 2 and every
// other weekday defaults to period 1 (school term). Dates outside the
// covered years fall through to the default.
func expectedPeriod(date time.Time, p *profile.Profile) int {
	weekday := date.Weekday()
	if weekday == time.Saturday || weekday == time.Sunday {
		return 1
	}

	iso := isoDate(date)

	if p.SummerPeriod.Contains(iso) {
		return 3
	}

	for _, window := range p.SchoolBreaks {
		if window.Contains(iso) {
			return 2
		}
	}

	return 1
}

// expectedDayType classifies a date: holidays and Sundays are type 3,
// Saturdays type 2 and working days type 1.
func expectedDayType(date time.Time, p *profile.Profile) int {
	if p.IsHoliday(isoDate(date)) || date.Weekday() == time.Sunday {
		return 3
	}
	if date.Weekday() == time.Saturday {
		return 2
	}

	return 1
}

// checkCalendarClassification compares the declared holiday, period and
// day_type of every calendar exception against the values derived from the
// profile's holiday and period calendar. The three columns are a network
// extension: when they are absent a single informational result notes the
// checks were skipped. Declared values that do not parse as integers are
// skipped silently, the generic format checks already cover them.
func checkCalendarClassification(calendarDates feed.Table, p *profile.Profile) []Result {
	if len(calendarDates) == 0 {
		return nil
	}

	hasColumns := calendarDates.HasColumn("holiday") &&
		calendarDates.HasColumn("period") &&
		calendarDates.HasColumn("day_type")

	if !hasColumns {
		return []Result{newResult(RuleCalendarExtension, StatusInfo, []string{
			"File does not contain the extra columns \"holiday\", \"period\" and \"day_type\", so the specific checks were skipped.",
		})}
	}

	var holidayErrors, periodErrors, dayTypeErrors []string

	for index, row := range calendarDates {
		dateValue := row["date"]
		if dateValue == "" {
			continue
		}

		date, ok := parseFeedDate(dateValue)
		if !ok {
			// Malformed dates belong to the general format checks.
			continue
		}

		line := feed.LineNumber(index)

		if declared, err := strconv.Atoi(row["holiday"]); err == nil {
			expected := 0
			if p.IsHoliday(isoDate(date)) {
				expected = 1
			}
			if declared != expected {
				holidayErrors = append(holidayErrors, fmt.Sprintf("Line %d: Date %s - error in 'holiday'. Expected: %d, Found: %d",
					line, dateValue, expected, declared))
			}
		}

		if declared, err := strconv.Atoi(row["period"]); err == nil {
			expected := expectedPeriod(date, p)
			if declared != expected {
				periodErrors = append(periodErrors, fmt.Sprintf("Line %d: Date %s - error in 'period'. Expected: %d, Found: %d",
					line, dateValue, expected, declared))
			}
		}

		if declared, err := strconv.Atoi(row["day_type"]); err == nil {
			expected := expectedDayType(date, p)
			if declared != expected {
				dayTypeErrors = append(dayTypeErrors, fmt.Sprintf("Line %d: Date %s - error in 'day_type'. Expected: %d, Found: %d",
					line, dateValue, expected, declared))
			}
		}
	}

	fieldResult := func(rule Rule, errors []string) Result {
		if len(errors) > 0 {
			return newResult(rule, StatusError, limitMessages(errors))
		}
		return newResult(rule, StatusSuccess, []string{"No issues found."})
	}

	return []Result{
		fieldResult(RuleCalendarHoliday, holidayErrors),
		fieldResult(RuleCalendarPeriod, periodErrors),
		fieldResult(RuleCalendarDayType, dayTypeErrors),
	}
}
