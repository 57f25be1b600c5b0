// Package report turns the flat row payload of the report endpoint into the
// downloadable CSV blob.
package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Rows is a decoded report payload. Keys holds the first row's field order as
// it appeared on the wire; Go maps discard it, and the CSV header must match
// the source order.
type Rows struct {
	Keys []string
	Rows []map[string]any
}

// ParseRows decodes a JSON array of flat row objects.
func ParseRows(data []byte) (Rows, error) {
	var rows []map[string]any
	if err := json.Unmarshal(data, &rows); err != nil {
		return Rows{}, fmt.Errorf("failed to decode report payload: %w", err)
	}
	keys, err := firstRowKeys(data)
	if err != nil {
		return Rows{}, err
	}
	return Rows{Keys: keys, Rows: rows}, nil
}

// firstRowKeys walks the token stream to recover the key order of the first
// object in the array.
func firstRowKeys(data []byte) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '[' {
		return nil, errors.New("report payload is not an array")
	}
	if !dec.More() {
		return nil, nil
	}
	tok, err = dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errors.New("report row is not an object")
	}
	var keys []string
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, _ := keyTok.(string)
		keys = append(keys, key)
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return nil, err
		}
	}
	return keys, nil
}

// Empty reports whether there is nothing to export.
func (r Rows) Empty() bool { return len(r.Rows) == 0 }

// CSV renders the rows as the export blob: the header line is the first
// row's keys joined bare, every value is wrapped in quotes verbatim.
func (r Rows) CSV() string {
	if r.Empty() {
		return ""
	}
	lines := make([]string, 0, len(r.Rows)+1)
	lines = append(lines, strings.Join(r.Keys, ","))
	for _, row := range r.Rows {
		fields := make([]string, 0, len(r.Keys))
		for _, key := range r.Keys {
			fields = append(fields, `"`+stringify(row[key])+`"`)
		}
		lines = append(lines, strings.Join(fields, ","))
	}
	return strings.Join(lines, "\n")
}

// Filename names the download after its date range.
func Filename(start, end string) string {
	return "Laporan_Absensi_" + start + "_" + end + ".csv"
}

// stringify renders a decoded JSON value the way the export shows it:
// numbers without a trailing ".0", null as empty.
func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprint(val)
	}
}
