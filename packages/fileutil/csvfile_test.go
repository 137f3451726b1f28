package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/testkit-dev/testkit/packages/csv"
)

func TestReadWriteCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "data.csv")

	table := csv.NewTable("name", "note")
	table.Append(csv.Row{"name": "Alice", "note": "has, a comma"})
	table.Append(csv.Row{"name": "Bob", "note": `said "hi"`})

	opts := csv.DefaultParseOptions()
	require.NoError(t, WriteCSVFile(path, table, opts))

	got, err := ReadCSVFile(path, opts)
	require.NoError(t, err)
	require.Equal(t, table.Columns, got.Columns)
	require.Equal(t, table.Len(), got.Len())
	assert.Equal(t, table.Rows[0], got.Rows[0])
	assert.Equal(t, table.Rows[1], got.Rows[1])
}

func TestReadCSVFile_Missing(t *testing.T) {
	_, err := ReadCSVFile(filepath.Join(t.TempDir(), "nope.csv"), csv.DefaultParseOptions())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.csv")
}

func TestReadWriteCSVFile_Latin1(t *testing.T) {
	path := filepath.Join(t.TempDir(), "latin1.csv")

	table := csv.NewTable("name")
	table.Append(csv.Row{"name": "café"})

	opts := csv.DefaultParseOptions()
	opts.Encoding = "iso-8859-1"
	require.NoError(t, WriteCSVFile(path, table, opts))

	// On disk the é is a single latin-1 byte, not UTF-8.
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "\xe9")

	got, err := ReadCSVFile(path, opts)
	require.NoError(t, err)
	assert.Equal(t, "café", got.Get(0, "name"))
}

func TestReadCSVFile_UnknownEncoding(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("a\n1"), 0o644))

	opts := csv.DefaultParseOptions()
	opts.Encoding = "ebcdic"
	_, err := ReadCSVFile(path, opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported encoding")
}

func TestValidateCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.csv")
	content := "id,name\n1,Alice\n2,\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	result := ValidateCSVFile(path, csv.DefaultParseOptions(), csv.Expectations{
		Columns:        []string{"id", "name", "email"},
		RequiredFields: []string{"name"},
	})

	require.False(t, result.Valid)
	assert.Equal(t, 2, result.RowCount)
	assert.Len(t, result.Errors, 2)
}

func TestValidateCSVFile_ReadFailure(t *testing.T) {
	result := ValidateCSVFile(filepath.Join(t.TempDir(), "missing.csv"), csv.DefaultParseOptions(), csv.Expectations{})

	require.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 0, result.RowCount)
}
