package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
)

// Action tags a submission payload.
type Action string

const (
	ActionAttendance Action = "ATTENDANCE"
	ActionTeaching   Action = "TEACHING"
	ActionLeave      Action = "LEAVE"
)

// Valid reports whether the action is one of the known tags.
func (a Action) Valid() bool {
	switch a {
	case ActionAttendance, ActionTeaching, ActionLeave:
		return true
	}
	return false
}

// Submitter identifies who sent a submission.
type Submitter struct {
	Name string `json:"name"`
	NIP  string `json:"nip"`
	Role string `json:"role"`
}

// Submission is the payload relayed to the web app. Data is free-form and
// passed through untouched.
type Submission struct {
	Action Action          `json:"action"`
	User   Submitter       `json:"user"`
	Data   json.RawMessage `json:"data"`
}

// Submit posts a payload to the web app. The endpoint does not expose a
// readable response to cross-origin callers, so delivery is fire-and-forget:
// only local transport errors are observable, and "delivered but rejected"
// cannot be told apart from "accepted". The response status is ignored for
// the same reason.
func (c *Client) Submit(ctx context.Context, sub Submission) error {
	body, err := json.Marshal(sub)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.WebAppURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "text/plain;charset=utf-8")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		submissionsFailedTotal.Inc()
		return fmt.Errorf("submission request failed: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	submissionsRelayedTotal.Inc()

	c.log.WithFields(logrus.Fields{
		"action": sub.Action,
		"nip":    sub.User.NIP,
	}).Debug("submission posted")
	return nil
}
