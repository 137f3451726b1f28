package csv

import (
	"fmt"
	"strings"
)

// Parse converts delimited text into a Table. Lines split on \r\n or \n.
// With HasHeaders the first surviving line names the columns; otherwise
// columns are synthesized as column_0..column_n from the first line's field
// count and that line is kept as data. Short rows pad missing trailing
// columns with ""; extra fields beyond the column count are dropped.
// Malformed quoting is tolerated, never an error.
func Parse(content string, opts ParseOptions) *Table {
	opts = opts.normalize()

	lines := splitLines(content)
	if opts.SkipEmptyLines {
		kept := lines[:0]
		for _, line := range lines {
			if strings.TrimSpace(line) != "" {
				kept = append(kept, line)
			}
		}
		lines = kept
	}
	if len(lines) == 0 {
		return &Table{}
	}

	var columns []string
	var data []string
	if opts.HasHeaders {
		columns = ParseLine(lines[0], opts.Delimiter)
		data = lines[1:]
	} else {
		first := ParseLine(lines[0], opts.Delimiter)
		columns = make([]string, len(first))
		for i := range first {
			columns[i] = fmt.Sprintf("column_%d", i)
		}
		data = lines
	}

	table := &Table{Columns: columns}
	for _, line := range data {
		fields := ParseLine(line, opts.Delimiter)
		row := make(Row, len(columns))
		for i, col := range columns {
			if i < len(fields) {
				row[col] = fields[i]
			} else {
				row[col] = ""
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}

// ParseLine splits one physical line into fields with a two-state scan.
// A quote toggles quoted mode; inside quotes a doubled quote is a literal
// quote; the delimiter separates fields only outside quotes. An
// unterminated quote is not an error: the remainder of the line is literal
// field content. Whitespace outside quoted sections is trimmed from field
// edges; quoted content is kept verbatim.
func ParseLine(line string, delimiter rune) []string {
	var fields []string
	var field strings.Builder
	var space strings.Builder
	inQuotes := false

	flush := func() {
		fields = append(fields, field.String())
		field.Reset()
		space.Reset()
	}

	// Unquoted whitespace is buffered in space and committed only when
	// more field content follows, so edges trim and interior runs keep.
	commit := func() {
		if field.Len() > 0 {
			field.WriteString(space.String())
		}
		space.Reset()
	}

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		switch {
		case inQuotes:
			if ch != '"' {
				field.WriteRune(ch)
			} else if i+1 < len(runes) && runes[i+1] == '"' {
				field.WriteRune('"')
				i++
			} else {
				inQuotes = false
			}
		case ch == '"':
			commit()
			inQuotes = true
		case ch == delimiter:
			flush()
		case ch == ' ' || ch == '\t' || ch == '\r':
			space.WriteRune(ch)
		default:
			commit()
			field.WriteRune(ch)
		}
	}
	flush()
	return fields
}

// splitLines splits on \n so both Unix and Windows line endings parse.
// Physical lines that end inside an open quote are merged with the
// following line, keeping the original terminator, so quoted fields carry
// embedded newlines (and \r\n sequences) exactly. A \r is treated as a
// line-ending artifact only at record boundaries.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	raw := strings.Split(content, "\n")

	var lines []string
	var pending string
	open := false
	for _, line := range raw {
		if open {
			pending += "\n" + line
		} else {
			pending = line
		}
		open = quoteOpen(pending)
		if !open {
			lines = append(lines, strings.TrimSuffix(pending, "\r"))
			pending = ""
		}
	}
	if open {
		lines = append(lines, strings.TrimSuffix(pending, "\r"))
	}
	return lines
}

// quoteOpen reports whether a line ends inside an unterminated quote.
func quoteOpen(line string) bool {
	in := false
	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		if runes[i] != '"' {
			continue
		}
		if in && i+1 < len(runes) && runes[i+1] == '"' {
			i++
			continue
		}
		in = !in
	}
	return in
}
