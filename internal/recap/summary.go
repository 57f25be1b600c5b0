package recap

import (
	"math"
	"sort"
	"strings"
)

// Stats summarizes one snapshot for the dashboard header cards.
type Stats struct {
	Total         int `json:"total"`
	Present       int `json:"present"`
	Teaching      int `json:"teaching"`
	AvgPercentage int `json:"avgPercentage"`
}

// Summarize derives the header stats from an already-computed snapshot.
func Summarize(daily []DailyStatus, activities []Activity, recaps []MonthlyRecap) Stats {
	s := Stats{Total: len(daily), Teaching: len(activities)}
	for _, d := range daily {
		if d.Status == StatusPresent {
			s.Present++
		}
	}
	if len(recaps) > 0 {
		var sum float64
		for _, r := range recaps {
			sum += r.Percentage
		}
		s.AvgPercentage = int(math.Round(sum / float64(len(recaps))))
	}
	return s
}

// SortDaily orders the daily list the way the dashboard shows it: present
// first, then excused/sick, then absent. Present entries tie-break on
// check-in time, everything else on name.
func SortDaily(list []DailyStatus) {
	sort.SliceStable(list, func(i, j int) bool {
		pi, pj := statusPriority(list[i].Status), statusPriority(list[j].Status)
		if pi != pj {
			return pi < pj
		}
		if list[i].Status == StatusPresent && list[j].Status == StatusPresent {
			return derefClock(list[i].TimeIn) < derefClock(list[j].TimeIn)
		}
		return list[i].Name < list[j].Name
	})
}

func statusPriority(s Status) int {
	switch s {
	case StatusPresent:
		return 0
	case StatusExcused, StatusSick:
		return 1
	default:
		return 2
	}
}

func derefClock(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// FilterDaily keeps entries whose name or NIP contains the query,
// case-insensitively on the name. An empty query keeps everything.
func FilterDaily(list []DailyStatus, query string) []DailyStatus {
	if query == "" {
		return list
	}
	q := strings.ToLower(query)
	out := make([]DailyStatus, 0, len(list))
	for _, d := range list {
		if strings.Contains(strings.ToLower(d.Name), q) || strings.Contains(d.NIP, query) {
			out = append(out, d)
		}
	}
	return out
}

// FilterRecaps keeps recaps whose name contains the query.
func FilterRecaps(list []MonthlyRecap, query string) []MonthlyRecap {
	if query == "" {
		return list
	}
	q := strings.ToLower(query)
	out := make([]MonthlyRecap, 0, len(list))
	for _, r := range list {
		if strings.Contains(strings.ToLower(r.Name), q) {
			out = append(out, r)
		}
	}
	return out
}
