// Package isoweek resolves ISO-8601 calendar weeks to concrete dates.
// Week 1 is the week containing the year's first Thursday, equivalently the
// week containing January 4th. Weeks start on Monday.
package isoweek

import (
	"fmt"
	"time"
)

// MinYear and MaxYear bound the years the resolver accepts.
const (
	MinYear = 2000
	MaxYear = 2100
)

// Resolve returns the seven dates of the given ISO week, Monday through
// Sunday. Week 1 of a year can start in the prior December; the last week can
// spill into January.
func Resolve(week, year int) ([7]time.Time, error) {
	var dates [7]time.Time
	if year < MinYear || year > MaxYear {
		return dates, fmt.Errorf("year %d out of range [%d, %d]", year, MinYear, MaxYear)
	}
	if week < 1 || week > Weeks(year) {
		return dates, fmt.Errorf("week %d out of range [1, %d] for year %d", week, Weeks(year), year)
	}
	monday := weekOneMonday(year).AddDate(0, 0, (week-1)*7)
	for i := range dates {
		dates[i] = monday.AddDate(0, 0, i)
	}
	return dates, nil
}

// ResolveWorkdays returns only Monday through Friday of the given ISO week
func ResolveWorkdays(week, year int) ([5]time.Time, error) {
	var workdays [5]time.Time
	dates, err := Resolve(week, year)
	if err != nil {
		return workdays, err
	}
	copy(workdays[:], dates[:5])
	return workdays, nil
}

// Weeks returns the number of ISO weeks in the year, 52 or 53
func Weeks(year int) int {
	// December 28th always falls in the last ISO week of its year.
	w, _ := lastWeekOf(year)
	return w
}

// Of returns the ISO week and week-based year a date falls in
func Of(date time.Time) (week, year int) {
	y, w := date.ISOWeek()
	return w, y
}

// weekOneMonday locates the Monday of week 1: step back from January 4th to
// the start of its week.
func weekOneMonday(year int) time.Time {
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	weekday := int(jan4.Weekday())
	if weekday == 0 { // Sunday is 7 in ISO numbering
		weekday = 7
	}
	return jan4.AddDate(0, 0, 1-weekday)
}

func lastWeekOf(year int) (int, int) {
	dec28 := time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC)
	y, w := dec28.ISOWeek()
	return w, y
}
