package csv

import (
	"fmt"
	"strings"
)

// Expectations describes what a table must look like to pass validation.
// Zero-valued fields are not checked.
type Expectations struct {
	// Columns that must be present, in any order.
	Columns []string `yaml:"columns"`
	// RowCount is the exact number of data rows required; 0 disables the
	// check.
	RowCount int `yaml:"rowCount"`
	// MinRows and MaxRows bound the row count; 0 disables each.
	MinRows int `yaml:"minRows"`
	MaxRows int `yaml:"maxRows"`
	// RequiredFields must be non-empty on every row.
	RequiredFields []string `yaml:"requiredFields"`
}

// ValidationResult aggregates every violation found rather than stopping
// at the first.
type ValidationResult struct {
	Valid    bool
	Errors   []string
	RowCount int
	Columns  []string
}

// Validate checks a table against expectations. All checks run
// independently; Errors collects one human-readable entry per violation.
func Validate(table *Table, want Expectations) *ValidationResult {
	result := &ValidationResult{
		Valid:    true,
		RowCount: table.Len(),
		Columns:  table.Columns,
	}

	have := make(map[string]bool, len(table.Columns))
	for _, col := range table.Columns {
		have[col] = true
	}
	for _, col := range want.Columns {
		if !have[col] {
			result.fail("missing expected column %q (found: %s)", col, strings.Join(table.Columns, ", "))
		}
	}

	if want.RowCount > 0 && table.Len() != want.RowCount {
		result.fail("expected exactly %d rows, found %d", want.RowCount, table.Len())
	}
	if want.MinRows > 0 && table.Len() < want.MinRows {
		result.fail("expected at least %d rows, found %d", want.MinRows, table.Len())
	}
	if want.MaxRows > 0 && table.Len() > want.MaxRows {
		result.fail("expected at most %d rows, found %d", want.MaxRows, table.Len())
	}

	for _, field := range want.RequiredFields {
		if !have[field] {
			// Missing column already reported above when expected;
			// a required field on an absent column is its own error.
			if !contains(want.Columns, field) {
				result.fail("required field %q is not a column", field)
			}
			continue
		}
		for i, row := range table.Rows {
			if strings.TrimSpace(row[field]) == "" {
				result.fail("row %d: required field %q is empty", i+1, field)
			}
		}
	}

	return result
}

// FailedResult converts an upstream read failure into a validation result
// with a single error entry, so callers never see the raw error as a
// panic or have to special-case I/O problems.
func FailedResult(err error) *ValidationResult {
	return &ValidationResult{
		Valid:    false,
		Errors:   []string{fmt.Sprintf("failed to read input: %v", err)},
		RowCount: 0,
	}
}

func (r *ValidationResult) fail(format string, args ...any) {
	r.Valid = false
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
