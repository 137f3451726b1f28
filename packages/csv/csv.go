package csv

// Row maps column names to cell values for one record. Column order lives
// on the owning Table, not on the Row.
type Row map[string]string

// Table is an ordered sequence of rows sharing one column set.
type Table struct {
	Columns []string
	Rows    []Row
}

// NewTable builds a table with the given column order and no rows.
func NewTable(columns ...string) *Table {
	return &Table{Columns: columns}
}

// Append adds a row. Keys not in the table's column set are ignored by
// Stringify; missing keys serialize as empty strings.
func (t *Table) Append(row Row) {
	t.Rows = append(t.Rows, row)
}

// Get returns the cell at (row, column), or "" when out of range.
func (t *Table) Get(row int, column string) string {
	if row < 0 || row >= len(t.Rows) {
		return ""
	}
	return t.Rows[row][column]
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// ParseOptions configures parsing and serialization.
type ParseOptions struct {
	// Delimiter separates fields. Defaults to ','.
	Delimiter rune
	// HasHeaders treats the first line as column names. When false,
	// columns are synthesized as column_0, column_1, ...
	HasHeaders bool
	// SkipEmptyLines drops lines that are empty after trimming.
	SkipEmptyLines bool
	// Encoding names the text encoding for file I/O wrappers. The codec
	// itself always operates on UTF-8 strings.
	Encoding string
}

// DefaultParseOptions returns the documented defaults: comma delimiter,
// header row present, blank lines skipped, UTF-8.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{
		Delimiter:      ',',
		HasHeaders:     true,
		SkipEmptyLines: true,
		Encoding:       "utf-8",
	}
}

// normalize fills zero-valued fields so callers can pass a partially
// constructed ParseOptions.
func (o ParseOptions) normalize() ParseOptions {
	if o.Delimiter == 0 {
		o.Delimiter = ','
	}
	if o.Encoding == "" {
		o.Encoding = "utf-8"
	}
	return o
}
