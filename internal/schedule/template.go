// Package schedule expands the fixed weekly plan into dated task instances.
package schedule

import (
	"time"

	"github.com/sandeepkv93/neuraplan/internal/model"
)

// Entry is one slot of a weekday template.
type Entry struct {
	Title  string
	Domain model.DomainID
	Slot   string
}

var eveningBlock = []Entry{
	{Title: "AI / ML", Domain: model.DomainAIML, Slot: "19:00-20:00"},
	{Title: "CS Core", Domain: model.DomainCSCore, Slot: "20:00-21:00"},
	{Title: "Full Stack", Domain: model.DomainFullStack, Slot: "22:00-23:00"},
	{Title: "DSA", Domain: model.DomainDSA, Slot: "23:00-00:00"},
}

var nightRoutine = []Entry{
	{Title: "Aptitude", Domain: model.DomainAptitude, Slot: "00:00-01:00"},
	{Title: "UPSC", Domain: model.DomainUPSC, Slot: "01:00-04:00"},
	{Title: "Freelancing", Domain: model.DomainFreelance, Slot: "04:00-08:00"},
}

// Template returns the daytime entries for a weekday, evening block
// included. The night routine is separate because it is filed under the
// following date.
func Template(w time.Weekday) []Entry {
	var day []Entry
	switch w {
	case time.Monday:
		day = []Entry{
			{Title: "College", Domain: model.DomainCollege, Slot: "09:00-13:00"},
			{Title: "Discrete Mathematics", Domain: model.DomainCollege, Slot: "14:00-17:00"},
			{Title: "Discrete Mathematics", Domain: model.DomainCollege, Slot: "17:00-19:00"},
		}
	case time.Tuesday:
		day = []Entry{
			{Title: "College", Domain: model.DomainCollege, Slot: "09:00-17:00"},
			{Title: "Computer Network", Domain: model.DomainCollege, Slot: "17:00-19:00"},
		}
	case time.Thursday:
		day = []Entry{
			{Title: "College", Domain: model.DomainCollege, Slot: "09:00-17:00"},
			{Title: "Cloud Computing", Domain: model.DomainCollege, Slot: "17:00-19:00"},
		}
	case time.Wednesday, time.Friday:
		day = []Entry{
			{Title: "College", Domain: model.DomainCollege, Slot: "09:00-19:00"},
		}
	case time.Saturday:
		day = weekend("VLSI")
	case time.Sunday:
		day = weekend("SWE")
	}
	return append(day, eveningBlock...)
}

func weekend(subject string) []Entry {
	return []Entry{
		{Title: "Coding / Minor Project", Domain: model.DomainCoding, Slot: "09:00-11:00"},
		{Title: subject, Domain: model.DomainCollege, Slot: "11:00-13:00"},
		{Title: "Creative + Portfolio", Domain: model.DomainCreative, Slot: "14:00-18:00"},
	}
}

// NightRoutine returns the after-midnight entries of a day.
func NightRoutine() []Entry {
	out := make([]Entry, len(nightRoutine))
	copy(out, nightRoutine)
	return out
}
