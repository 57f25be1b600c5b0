package recap

import (
	"strings"

	"presensi/internal/roster"
)

// statusRule is one row of the classification table. Rules are evaluated in
// order; the first that applies wins. A check-in always beats any leave
// entry, and check-out never influences status.
type statusRule struct {
	status  Status
	applies func(in *Punch, leave *Leave) bool
}

var statusRules = []statusRule{
	{StatusPresent, func(in *Punch, _ *Leave) bool { return in != nil }},
	{StatusSick, func(_ *Punch, l *Leave) bool { return l != nil && strings.EqualFold(l.Category, LeaveSick) }},
	{StatusExcused, func(_ *Punch, l *Leave) bool { return l != nil }},
	{StatusAbsent, func(*Punch, *Leave) bool { return true }},
}

func classify(in *Punch, leave *Leave) Status {
	for _, rule := range statusRules {
		if rule.applies(in, leave) {
			return rule.status
		}
	}
	return StatusAbsent
}

// Reconcile joins the operational roster with today's punches and leave
// entries, producing one DailyStatus per person. The first IN punch is the
// check-in and the first OUT the check-out; the source is assumed
// time-ordered, so encounter order is the tie-break. A person with no
// matching records is simply ABSENT.
func Reconcile(people []roster.Person, punches []Punch, leaves []Leave) []DailyStatus {
	out := make([]DailyStatus, 0, len(people))
	for _, p := range people {
		var in, checkout *Punch
		for i := range punches {
			if punches[i].NIP != p.NIP {
				continue
			}
			switch punches[i].Type {
			case PunchIn:
				if in == nil {
					in = &punches[i]
				}
			case PunchOut:
				if checkout == nil {
					checkout = &punches[i]
				}
			}
		}

		var leave *Leave
		for i := range leaves {
			if leaves[i].NIP == p.NIP {
				leave = &leaves[i]
				break
			}
		}

		ds := DailyStatus{
			NIP:    p.NIP,
			Name:   p.DisplayName(),
			Status: classify(in, leave),
		}
		if in != nil {
			t := FormatClock(in.Timestamp)
			ds.TimeIn = &t
			ds.PhotoURL = in.Photo
		}
		if checkout != nil {
			t := FormatClock(checkout.Timestamp)
			ds.TimeOut = &t
		}
		out = append(out, ds)
	}
	return out
}

// FormatSessions renders teaching sessions for display. Sessions are
// independent of attendance status.
func FormatSessions(sessions []Session) []Activity {
	out := make([]Activity, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, Activity{
			ID:        "teach-" + s.ID,
			Name:      s.Name,
			Subject:   s.Subject,
			ClassName: s.ClassName,
			TimeRange: FormatClock(s.StartTime) + " - " + FormatClock(s.EndTime),
			EndTime:   s.EndTime,
		})
	}
	return out
}
