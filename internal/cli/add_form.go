package cli

import (
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/sandeepkv93/neuraplan/internal/calendar"
	"github.com/sandeepkv93/neuraplan/internal/model"
	"github.com/sandeepkv93/neuraplan/internal/planner"
)

func validateTitle(s string) error {
	if strings.TrimSpace(s) == "" {
		return &model.ValidationError{Field: "title", Reason: "task title is required"}
	}
	return nil
}

func validateOptionalDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	_, err := calendar.ParseDateKey(strings.TrimSpace(s))
	return err
}

func domainOptions() []huh.Option[model.DomainID] {
	domains := model.Domains()
	out := make([]huh.Option[model.DomainID], 0, len(domains))
	for _, d := range domains {
		out = append(out, huh.NewOption(d.Icon+" "+d.Name, d.ID))
	}
	return out
}

// taskForm edits in in place; fields already set by flags are prefilled.
func taskForm(in *planner.TaskInput) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&in.Title).
				Validate(validateTitle),
			huh.NewInput().
				Title("Description").
				Value(&in.Description),
			huh.NewSelect[model.DomainID]().
				Title("Domain").
				Options(domainOptions()...).
				Value(&in.Domain),
			huh.NewSelect[model.Priority]().
				Title("Priority").
				Options(
					huh.NewOption("Low", model.PriorityLow),
					huh.NewOption("Medium", model.PriorityMedium),
					huh.NewOption("High", model.PriorityHigh),
				).
				Value(&in.Priority),
			huh.NewInput().
				Title("Date (YYYY-MM-DD, blank for today)").
				Placeholder("2026-03-02").
				Value(&in.Date).
				Validate(validateOptionalDate),
			huh.NewInput().
				Title("Time slot").
				Placeholder("09:00-10:30").
				Value(&in.TimeSlot),
		),
	).WithShowHelp(false)
}

func promptTask(in *planner.TaskInput) error {
	if err := taskForm(in).Run(); err != nil {
		return err
	}
	in.Title = strings.TrimSpace(in.Title)
	in.Date = strings.TrimSpace(in.Date)
	return nil
}
