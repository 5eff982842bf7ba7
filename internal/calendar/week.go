package calendar

import (
	"fmt"
	"time"
)

const DaysPerWeek = 7

var weekdayNames = [...]string{
	time.Sunday:    "Sun",
	time.Monday:    "Mon",
	time.Tuesday:   "Tue",
	time.Wednesday: "Wed",
	time.Thursday:  "Thu",
	time.Friday:    "Fri",
	time.Saturday:  "Sat",
}

var monthNames = [...]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// WeekdayName is the shared short weekday lookup. Grid headers and the
// schedule generator both go through it so a week window that starts on a
// Monday is labelled Mon..Sun, not Sun..Sat.
func WeekdayName(w time.Weekday) string {
	if w < time.Sunday || w > time.Saturday {
		return "?"
	}
	return weekdayNames[w]
}

func MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return "?"
	}
	return monthNames[m-1]
}

// WeekDates returns 7 consecutive days starting at start+weekOffset*7.
// The window is anchored on start, not on a calendar Sunday.
func WeekDates(start Day, weekOffset int) []Day {
	first := start.AddDays(weekOffset * DaysPerWeek)
	out := make([]Day, 0, DaysPerWeek)
	for i := 0; i < DaysPerWeek; i++ {
		out = append(out, first.AddDays(i))
	}
	return out
}

// WeekRangeLabel renders the window for weekOffset as "Feb 16-22", or
// "Feb 23-Mar 1" when it crosses a month.
func WeekRangeLabel(start Day, weekOffset int) string {
	first := start.AddDays(weekOffset * DaysPerWeek)
	last := first.AddDays(DaysPerWeek - 1)
	if first.Month() == last.Month() {
		return fmt.Sprintf("%s %d-%d", MonthName(first.Month()), first.DayOfMonth(), last.DayOfMonth())
	}
	return fmt.Sprintf("%s %d-%s %d", MonthName(first.Month()), first.DayOfMonth(), MonthName(last.Month()), last.DayOfMonth())
}
