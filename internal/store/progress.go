package store

import "github.com/sandeepkv93/neuraplan/internal/model"

type DomainProgress struct {
	Domain  model.Domain
	Total   int
	Done    int
	Percent int
}

// Progress reports every catalog domain in catalog order, including
// domains with no tasks.
func Progress(tasks []model.Task) []DomainProgress {
	domains := model.Domains()
	pos := make(map[model.DomainID]int, len(domains))
	out := make([]DomainProgress, len(domains))
	for i, d := range domains {
		pos[d.ID] = i
		out[i].Domain = d
	}
	for _, t := range tasks {
		i, ok := pos[t.Domain]
		if !ok {
			continue
		}
		out[i].Total++
		if t.Done {
			out[i].Done++
		}
	}
	for i := range out {
		out[i].Percent = percent(out[i].Done, out[i].Total)
	}
	return out
}

type Summary struct {
	Total      int
	Done       int
	Pending    int
	Percent    int
	TodayTotal int
	TodayDone  int
	TodayPct   int
}

func Summarize(tasks []model.Task, todayKey string) Summary {
	var s Summary
	for _, t := range tasks {
		s.Total++
		if t.Done {
			s.Done++
		}
		if t.Date == todayKey {
			s.TodayTotal++
			if t.Done {
				s.TodayDone++
			}
		}
	}
	s.Pending = s.Total - s.Done
	s.Percent = percent(s.Done, s.Total)
	s.TodayPct = percent(s.TodayDone, s.TodayTotal)
	return s
}

// percent rounds half up like the overview badges.
func percent(done, total int) int {
	if total == 0 {
		return 0
	}
	return (done*200 + total) / (total * 2)
}
