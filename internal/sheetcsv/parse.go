// Package sheetcsv parses the delimited text a published spreadsheet exports.
// The format is CSV-like but hand-edited upstream, so the parser never fails:
// malformed quoting degrades to best-effort field boundaries.
package sheetcsv

import "strings"

// Record is one data row keyed by normalized header name. A row shorter than
// the header leaves its trailing keys absent, not empty.
type Record map[string]string

// Parse splits raw text into records. The first non-blank line is the header
// row (normalized); every following non-blank line is data. Fewer than two
// non-blank lines yields an empty result.
func Parse(text string) []Record {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) < 2 {
		return nil
	}

	headers := parseLine(lines[0])
	for i, h := range headers {
		headers[i] = NormalizeHeader(h)
	}

	records := make([]Record, 0, len(lines)-1)
	for _, line := range lines[1:] {
		values := parseLine(line)
		rec := make(Record, len(headers))
		for i, header := range headers {
			if header == "" || i >= len(values) {
				continue
			}
			rec[header] = values[i]
		}
		records = append(records, rec)
	}
	return records
}

// parseLine scans one line character by character. A double quote toggles
// quoted mode, except a doubled quote inside a quoted field, which emits one
// literal quote. Commas split fields only outside quoted mode.
func parseLine(line string) []string {
	var values []string
	var cur strings.Builder
	inQuotes := false
	for i := 0; i < len(line); i++ {
		switch c := line[i]; {
		case c == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				cur.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case c == ',' && !inQuotes:
			values = append(values, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	values = append(values, cur.String())
	for i, v := range values {
		values[i] = cleanField(v)
	}
	return values
}

// cleanField trims whitespace, strips one matching pair of surrounding
// quotes, and collapses doubled quotes. The collapse repeats the unescape
// already done during the scan and is normally a no-op; a value whose real
// content begins and ends with a quote loses that pair here. Intent upstream
// is ambiguous, so the behavior is kept as-is. The strip requires a matching
// pair: a lone boundary quote from malformed input is kept.
func cleanField(v string) string {
	v = strings.TrimSpace(v)
	if len(v) >= 2 && v[0] == '"' && v[len(v)-1] == '"' {
		v = v[1 : len(v)-1]
	}
	return strings.ReplaceAll(v, `""`, `"`)
}
