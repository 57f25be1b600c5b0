package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"presensi/internal/recap"
)

// Bundle is the combined dashboard payload for the current day. Fields the
// server omitted decode as nil slices, which downstream code treats as empty.
type Bundle struct {
	Attendance []recap.Punch
	Teaching   []recap.Session
	Leaves     []recap.Leave
}

// looseString tolerates the type drift of Apps Script JSON: NIPs and ids come
// back as numbers or strings depending on how the cell was typed.
type looseString string

func (s *looseString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = ""
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = looseString(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*s = looseString(num.String())
	return nil
}

type punchWire struct {
	NIP       looseString `json:"nip"`
	Type      looseString `json:"type"`
	Timestamp looseString `json:"timestamp"`
	Photo     looseString `json:"photo"`
}

type sessionWire struct {
	ID        looseString `json:"id"`
	Name      looseString `json:"name"`
	Subject   looseString `json:"subject"`
	ClassName looseString `json:"className"`
	StartTime looseString `json:"startTime"`
	EndTime   looseString `json:"endTime"`
}

type leaveWire struct {
	NIP    looseString `json:"nip"`
	Status looseString `json:"status"`
	Reason looseString `json:"reason"`
}

// FetchDashboard retrieves the attendance, teaching and leave sequences in
// one call so every refresh works from a consistent pair with the roster.
func (c *Client) FetchDashboard(ctx context.Context) (Bundle, error) {
	u := fmt.Sprintf("%s?action=GET_DASHBOARD_DATA&t=%d", c.WebAppURL, c.cacheBust())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Bundle{}, err
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return Bundle{}, fmt.Errorf("dashboard request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return Bundle{}, fmt.Errorf("dashboard fetch error: %s", resp.Status)
	}

	var out struct {
		Attendance []punchWire   `json:"attendance"`
		Teaching   []sessionWire `json:"teaching"`
		Leaves     []leaveWire   `json:"leaves"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Bundle{}, fmt.Errorf("failed to decode dashboard payload: %w", err)
	}

	bundle := Bundle{
		Attendance: make([]recap.Punch, 0, len(out.Attendance)),
		Teaching:   make([]recap.Session, 0, len(out.Teaching)),
		Leaves:     make([]recap.Leave, 0, len(out.Leaves)),
	}
	for _, w := range out.Attendance {
		bundle.Attendance = append(bundle.Attendance, recap.Punch{
			NIP:       string(w.NIP),
			Type:      string(w.Type),
			Timestamp: string(w.Timestamp),
			Photo:     string(w.Photo),
		})
	}
	for _, w := range out.Teaching {
		bundle.Teaching = append(bundle.Teaching, recap.Session{
			ID:        string(w.ID),
			Name:      string(w.Name),
			Subject:   string(w.Subject),
			ClassName: string(w.ClassName),
			StartTime: string(w.StartTime),
			EndTime:   string(w.EndTime),
		})
	}
	for _, w := range out.Leaves {
		bundle.Leaves = append(bundle.Leaves, recap.Leave{
			NIP:      string(w.NIP),
			Category: string(w.Status),
			Reason:   string(w.Reason),
		})
	}
	return bundle, nil
}
