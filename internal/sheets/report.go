package sheets

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"presensi/internal/report"
)

// FetchReport retrieves the flat report rows for an inclusive ISO date range.
func (c *Client) FetchReport(ctx context.Context, start, end string) (report.Rows, error) {
	u := fmt.Sprintf("%s?action=GET_REPORT&start=%s&end=%s&t=%d", c.WebAppURL, start, end, c.cacheBust())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return report.Rows{}, err
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return report.Rows{}, fmt.Errorf("report request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return report.Rows{}, fmt.Errorf("report fetch error: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return report.Rows{}, fmt.Errorf("report read failed: %w", err)
	}
	return report.ParseRows(body)
}
