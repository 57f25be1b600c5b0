// Package recap derives the per-person daily status and monthly attendance
// recap from the raw spreadsheet records. All inputs arrive loosely typed
// from the dashboard source; nothing here mutates them or talks to the
// network.
package recap

// Punch directions as they appear in the attendance sheet.
const (
	PunchIn  = "IN"
	PunchOut = "OUT"
)

// LeaveSick is the leave category that maps to SICK; anything else maps to
// EXCUSED.
const LeaveSick = "Sick"

// Status classifies one person's day.
type Status string

const (
	StatusPresent Status = "PRESENT"
	StatusSick    Status = "SICK"
	StatusExcused Status = "EXCUSED"
	StatusAbsent  Status = "ABSENT"
)

// Punch is a single attendance event. Timestamp stays a raw string so a
// malformed value degrades per record instead of failing a whole batch.
type Punch struct {
	NIP       string
	Type      string
	Timestamp string
	Photo     string
}

// Leave is a leave entry scoped to the current day.
type Leave struct {
	NIP      string
	Category string
	Reason   string
}

// Session is one raw teaching activity record.
type Session struct {
	ID        string
	Name      string
	Subject   string
	ClassName string
	StartTime string
	EndTime   string
}

// DailyStatus is the derived view of one person's day. TimeIn/TimeOut are nil
// when no matching punch exists.
type DailyStatus struct {
	NIP      string  `json:"nip"`
	Name     string  `json:"name"`
	Status   Status  `json:"status"`
	TimeIn   *string `json:"timeIn"`
	TimeOut  *string `json:"timeOut"`
	PhotoURL string  `json:"photoUrl,omitempty"`
}

// Activity is a teaching session formatted for display.
type Activity struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Subject   string `json:"subject"`
	ClassName string `json:"className"`
	TimeRange string `json:"timeRange"`
	EndTime   string `json:"endTime"`
}

// MonthlyRecap is the derived monthly presence view of one person.
type MonthlyRecap struct {
	NIP          string  `json:"nip"`
	Name         string  `json:"name"`
	PresentCount int     `json:"presentCount"`
	Percentage   float64 `json:"percentage"`
}
