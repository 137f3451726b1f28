package csv

import "strings"

// Stringify serializes a table back to delimited text. Column order comes
// from the table; values missing from a row become empty strings. Output
// lines are always LF-delimited regardless of how the input was parsed.
// An empty table serializes to "".
func Stringify(table *Table, opts ParseOptions) string {
	opts = opts.normalize()
	if table == nil || (len(table.Columns) == 0 && len(table.Rows) == 0) {
		return ""
	}

	delim := string(opts.Delimiter)
	var lines []string

	if opts.HasHeaders {
		header := make([]string, len(table.Columns))
		for i, col := range table.Columns {
			header[i] = escapeField(col, opts.Delimiter)
		}
		lines = append(lines, strings.Join(header, delim))
	}

	for _, row := range table.Rows {
		fields := make([]string, len(table.Columns))
		for i, col := range table.Columns {
			fields[i] = escapeField(row[col], opts.Delimiter)
		}
		lines = append(lines, strings.Join(fields, delim))
	}

	return strings.Join(lines, "\n")
}

// escapeField quotes a value when it contains the delimiter, a quote, a
// newline, or leading/trailing whitespace (which parsing would otherwise
// trim away). Embedded quotes are doubled.
func escapeField(value string, delimiter rune) string {
	needsQuoting := strings.ContainsRune(value, delimiter) ||
		strings.ContainsAny(value, "\"\n\r") ||
		(value != "" && strings.TrimSpace(value) != value)
	if !needsQuoting {
		return value
	}
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}
