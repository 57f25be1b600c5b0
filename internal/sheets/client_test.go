package sheets

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	log := logrus.New()
	log.SetOutput(io.Discard)
	return New(srv.URL, "https://example.invalid/pub?output=csv", srv.URL, 2*time.Second, log)
}

func TestFetchDirectory(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.URL.Query().Get("url"))
		assert.NotEmpty(t, r.URL.Query().Get("timestamp"))
		io.WriteString(w, "Username,NIP,Nama,Role\nguru1,001,Ahmad,Guru\nadmin1,002,Siti,Admin\n")
	})

	people, err := c.FetchDirectory(context.Background())
	require.NoError(t, err)
	require.Len(t, people, 2)
	assert.Equal(t, "Ahmad", people[0].Name)
	assert.Equal(t, "Admin", people[1].Role)
}

func TestFetchDirectoryHTMLBody(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "<!DOCTYPE html><html><body>Sign in</body></html>")
	})

	_, err := c.FetchDirectory(context.Background())
	assert.ErrorIs(t, err, ErrNotCSV)
}

func TestFetchDirectoryServerError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := c.FetchDirectory(context.Background())
	assert.Error(t, err)
}

func TestFetchDashboard(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET_DASHBOARD_DATA", r.URL.Query().Get("action"))
		json.NewEncoder(w).Encode(map[string]any{
			"attendance": []map[string]any{
				{"nip": 198506, "type": "IN", "timestamp": "2024-05-01T07:00:00", "photo": "p.jpg"},
			},
			"teaching": []map[string]any{
				{"id": 3, "name": "Ahmad", "subject": "IPA", "className": "7B", "startTime": "2024-05-01T07:30:00", "endTime": "2024-05-01T09:00:00"},
			},
			"leaves": []map[string]any{
				{"nip": "197005", "status": "Sick", "reason": "demam"},
			},
		})
	})

	bundle, err := c.FetchDashboard(context.Background())
	require.NoError(t, err)
	require.Len(t, bundle.Attendance, 1)
	// Numeric cells decode as their string form.
	assert.Equal(t, "198506", bundle.Attendance[0].NIP)
	assert.Equal(t, "IN", bundle.Attendance[0].Type)
	require.Len(t, bundle.Teaching, 1)
	assert.Equal(t, "3", bundle.Teaching[0].ID)
	require.Len(t, bundle.Leaves, 1)
	assert.Equal(t, "Sick", bundle.Leaves[0].Category)
}

func TestFetchDashboardAbsentFields(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{}`)
	})

	bundle, err := c.FetchDashboard(context.Background())
	require.NoError(t, err)
	assert.Empty(t, bundle.Attendance)
	assert.Empty(t, bundle.Teaching)
	assert.Empty(t, bundle.Leaves)
}

func TestFetchDashboardMalformedJSON(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "<!DOCTYPE html>")
	})

	_, err := c.FetchDashboard(context.Background())
	assert.Error(t, err)
}

func TestFetchReport(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET_REPORT", r.URL.Query().Get("action"))
		assert.Equal(t, "2024-05-01", r.URL.Query().Get("start"))
		assert.Equal(t, "2024-05-31", r.URL.Query().Get("end"))
		io.WriteString(w, `[{"Tanggal":"2024-05-01","Nama":"Ahmad"}]`)
	})

	rows, err := c.FetchReport(context.Background(), "2024-05-01", "2024-05-31")
	require.NoError(t, err)
	assert.Equal(t, []string{"Tanggal", "Nama"}, rows.Keys)
	require.Len(t, rows.Rows, 1)
}

func TestSubmit(t *testing.T) {
	var got Submission
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "text/plain;charset=utf-8", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	})

	sub := Submission{
		Action: ActionAttendance,
		User:   Submitter{Name: "Ahmad", NIP: "001", Role: "Guru"},
		Data:   json.RawMessage(`{"type":"IN"}`),
	}
	require.NoError(t, c.Submit(context.Background(), sub))
	assert.Equal(t, ActionAttendance, got.Action)
	assert.Equal(t, "001", got.User.NIP)
}

func TestSubmitIgnoresStatusCode(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})
	// The real endpoint is opaque cross-origin; status is not a signal.
	assert.NoError(t, c.Submit(context.Background(), Submission{Action: ActionLeave}))
}

func TestSubmitCountsRelayed(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {})

	before := testutil.ToFloat64(submissionsRelayedTotal)
	require.NoError(t, c.Submit(context.Background(), Submission{Action: ActionAttendance}))
	assert.Equal(t, before+1, testutil.ToFloat64(submissionsRelayedTotal))
}

func TestSubmitCountsTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // connection refused from here on

	log := logrus.New()
	log.SetOutput(io.Discard)
	c := New(srv.URL, "https://example.invalid/pub?output=csv", srv.URL, time.Second, log)

	before := testutil.ToFloat64(submissionsFailedTotal)
	err := c.Submit(context.Background(), Submission{Action: ActionLeave})
	require.Error(t, err)
	assert.Equal(t, before+1, testutil.ToFloat64(submissionsFailedTotal))
}

func TestActionValid(t *testing.T) {
	assert.True(t, ActionAttendance.Valid())
	assert.True(t, ActionTeaching.Valid())
	assert.True(t, ActionLeave.Valid())
	assert.False(t, Action("LOGIN").Valid())
	assert.False(t, Action("").Valid())
}
