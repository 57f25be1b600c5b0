package recap

import "presensi/internal/roster"

// StandardWorkingDays is the fixed denominator for the monthly percentage.
// It is a policy constant, not derived from the calendar.
const StandardWorkingDays = 20

// Monthly computes the unique-day presence recap per roster member from the
// month's attendance punches. Each calendar day counts at most once no
// matter how many IN punches it holds; punches whose timestamp does not
// parse are excluded from the day set. The percentage is deliberately not
// clamped: more present days than the standard yields more than 100.
func Monthly(people []roster.Person, punches []Punch) []MonthlyRecap {
	out := make([]MonthlyRecap, 0, len(people))
	for _, p := range people {
		days := make(map[string]struct{})
		for _, punch := range punches {
			if punch.NIP != p.NIP || punch.Type != PunchIn {
				continue
			}
			if day, ok := dayKey(punch.Timestamp); ok {
				days[day] = struct{}{}
			}
		}
		out = append(out, MonthlyRecap{
			NIP:          p.NIP,
			Name:         p.DisplayName(),
			PresentCount: len(days),
			Percentage:   float64(len(days)) / StandardWorkingDays * 100,
		})
	}
	return out
}
