package calendar

import (
	"testing"
	"time"
)

func TestWeekDatesAnchorsOnStart(t *testing.T) {
	start := MustParseDateKey("2026-02-16") // Monday
	got := WeekDates(start, 0)
	if len(got) != 7 {
		t.Fatalf("expected 7 days, got %d", len(got))
	}
	if got[0].Weekday() != time.Monday || got[6].Weekday() != time.Sunday {
		t.Fatalf("expected Mon..Sun window, got %s..%s", got[0].Label(), got[6].Label())
	}
	if got[0].Key() != "2026-02-16" || got[6].Key() != "2026-02-22" {
		t.Fatalf("unexpected window: %s..%s", got[0], got[6])
	}
}

func TestWeekDatesOffset(t *testing.T) {
	start := MustParseDateKey("2026-02-16")
	got := WeekDates(start, 5)
	if got[0].Key() != "2026-03-23" || got[6].Key() != "2026-03-29" {
		t.Fatalf("unexpected last week: %s..%s", got[0], got[6])
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].DaysUntil(got[i]) != 1 {
			t.Fatalf("days not consecutive at %d", i)
		}
	}
}

func TestWeekdayNames(t *testing.T) {
	want := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	for i, name := range want {
		if got := WeekdayName(time.Weekday(i)); got != name {
			t.Fatalf("weekday %d: got %s want %s", i, got, name)
		}
	}
	if WeekdayName(time.Weekday(9)) != "?" {
		t.Fatal("expected placeholder for out of range weekday")
	}
}

func TestWeekRangeLabel(t *testing.T) {
	start := MustParseDateKey("2026-02-16")
	if got := WeekRangeLabel(start, 0); got != "Feb 16-22" {
		t.Fatalf("unexpected label: %s", got)
	}
	if got := WeekRangeLabel(start, 1); got != "Feb 23-Mar 1" {
		t.Fatalf("unexpected cross month label: %s", got)
	}
}
