package store

import (
	"slices"
	"strings"

	"github.com/sandeepkv93/neuraplan/internal/model"
)

// SortChronological orders tasks by date, then by slot start, then by the
// full slot text. Keys are zero padded so byte order is time order. A task
// without a slot sorts before any slotted task on the same day. The sort is
// stable.
func SortChronological(tasks []model.Task) {
	slices.SortStableFunc(tasks, compareChronological)
}

func Chronological(tasks []model.Task) []model.Task {
	out := slices.Clone(tasks)
	SortChronological(out)
	return out
}

func compareChronological(a, b model.Task) int {
	if c := strings.Compare(a.Date, b.Date); c != 0 {
		return c
	}
	if c := strings.Compare(model.SlotStart(a.TimeSlot), model.SlotStart(b.TimeSlot)); c != 0 {
		return c
	}
	return strings.Compare(a.TimeSlot, b.TimeSlot)
}
