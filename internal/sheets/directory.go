package sheets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"presensi/internal/roster"
	"presensi/internal/sheetcsv"
)

// ErrNotCSV marks a directory response that is an HTML page (the sheet's
// error or login screen) instead of the CSV export.
var ErrNotCSV = errors.New("directory returned HTML, not CSV")

// FetchDirectory downloads the roster CSV through the proxy and adapts it
// into Person records. Any failure is returned to the caller, which degrades
// to the fallback roster.
func (c *Client) FetchDirectory(ctx context.Context) ([]roster.Person, error) {
	u := fmt.Sprintf("%s?url=%s&timestamp=%d", c.ProxyURL, url.QueryEscape(c.CSVURL), c.cacheBust())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("directory request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("directory fetch error: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("directory read failed: %w", err)
	}
	text := string(body)
	if !looksLikeCSV(text) {
		return nil, ErrNotCSV
	}

	return roster.FromRecords(sheetcsv.Parse(text)), nil
}

func looksLikeCSV(text string) bool {
	trimmed := strings.TrimSpace(text)
	return trimmed != "" && !strings.HasPrefix(trimmed, "<!DOCTYPE html")
}
