package csv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Basic(t *testing.T) {
	table := Parse("name,age\nAlice,30\nBob,25", DefaultParseOptions())

	require.Equal(t, []string{"name", "age"}, table.Columns)
	require.Equal(t, 2, table.Len())
	assert.Equal(t, Row{"name": "Alice", "age": "30"}, table.Rows[0])
	assert.Equal(t, Row{"name": "Bob", "age": "25"}, table.Rows[1])
}

func TestParse_CRLFLineEndings(t *testing.T) {
	table := Parse("name,age\r\nAlice,30\r\n", DefaultParseOptions())

	require.Equal(t, 1, table.Len())
	assert.Equal(t, "Alice", table.Get(0, "name"))
}

func TestParse_QuotedFields(t *testing.T) {
	table := Parse("note\n\"has, a comma\"\n\"has \"\"quotes\"\"\"", DefaultParseOptions())

	require.Equal(t, 2, table.Len())
	assert.Equal(t, "has, a comma", table.Get(0, "note"))
	assert.Equal(t, `has "quotes"`, table.Get(1, "note"))
}

func TestParse_QuotedNewline(t *testing.T) {
	table := Parse("note\n\"line one\nline two\"", DefaultParseOptions())

	require.Equal(t, 1, table.Len())
	assert.Equal(t, "line one\nline two", table.Get(0, "note"))
}

func TestParse_QuotedCarriageReturn(t *testing.T) {
	// A \r inside a quoted cell is cell content, not a line-ending
	// artifact, even when the file itself uses CRLF record endings.
	table := Parse("note,id\r\n\"a\r\nb\",1\r\n", DefaultParseOptions())

	require.Equal(t, 1, table.Len())
	assert.Equal(t, "a\r\nb", table.Get(0, "note"))
	assert.Equal(t, "1", table.Get(0, "id"))
}

func TestParse_UnterminatedQuote(t *testing.T) {
	// Tolerated: the rest of the line is literal field content.
	table := Parse("a,b\n\"unclosed,value", DefaultParseOptions())

	require.Equal(t, 1, table.Len())
	assert.Equal(t, "unclosed,value", table.Get(0, "a"))
	assert.Equal(t, "", table.Get(0, "b"))
}

func TestParse_ShortRowPadsWithEmpty(t *testing.T) {
	table := Parse("a,b,c\n1,2", DefaultParseOptions())

	require.Equal(t, 1, table.Len())
	assert.Equal(t, Row{"a": "1", "b": "2", "c": ""}, table.Rows[0])
}

func TestParse_LongRowDropsExtras(t *testing.T) {
	table := Parse("a,b\n1,2,3,4", DefaultParseOptions())

	require.Equal(t, 1, table.Len())
	assert.Equal(t, Row{"a": "1", "b": "2"}, table.Rows[0])
}

func TestParse_NoHeaders(t *testing.T) {
	opts := DefaultParseOptions()
	opts.HasHeaders = false
	table := Parse("1,2\n3,4", opts)

	require.Equal(t, []string{"column_0", "column_1"}, table.Columns)
	require.Equal(t, 2, table.Len())
	assert.Equal(t, "1", table.Get(0, "column_0"))
	assert.Equal(t, "4", table.Get(1, "column_1"))
}

func TestParse_SkipEmptyLines(t *testing.T) {
	table := Parse("a,b\n\n1,2\n   \n3,4\n", DefaultParseOptions())

	require.Equal(t, 2, table.Len())
}

func TestParse_KeepEmptyLines(t *testing.T) {
	opts := DefaultParseOptions()
	opts.SkipEmptyLines = false
	table := Parse("a,b\n\n1,2", opts)

	require.Equal(t, 2, table.Len())
	assert.Equal(t, Row{"a": "", "b": ""}, table.Rows[0])
	assert.Equal(t, Row{"a": "1", "b": "2"}, table.Rows[1])
}

func TestParse_CustomDelimiter(t *testing.T) {
	opts := DefaultParseOptions()
	opts.Delimiter = ';'
	table := Parse("a;b\n1;2,5", opts)

	require.Equal(t, 1, table.Len())
	assert.Equal(t, "2,5", table.Get(0, "b"))
}

func TestParse_TrimsUnquotedFields(t *testing.T) {
	table := Parse("a,b\n  spaced  , plain", DefaultParseOptions())

	assert.Equal(t, "spaced", table.Get(0, "a"))
	assert.Equal(t, "plain", table.Get(0, "b"))
}

func TestParse_QuotedFieldsKeepWhitespace(t *testing.T) {
	table := Parse("a\n\"  padded  \"", DefaultParseOptions())

	assert.Equal(t, "  padded  ", table.Get(0, "a"))
}

func TestParse_TrimsWhitespaceAroundQuotedSection(t *testing.T) {
	table := Parse("a,b,c\n1, \"x\" ,3", DefaultParseOptions())

	assert.Equal(t, Row{"a": "1", "b": "x", "c": "3"}, table.Rows[0])
}

func TestParse_EmptyInput(t *testing.T) {
	table := Parse("", DefaultParseOptions())
	assert.Equal(t, 0, table.Len())
	assert.Empty(t, table.Columns)

	table = Parse("\n\n\n", DefaultParseOptions())
	assert.Equal(t, 0, table.Len())
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"plain", "a,b,c", []string{"a", "b", "c"}},
		{"empty fields", ",,", []string{"", "", ""}},
		{"quoted comma", `"a,b",c`, []string{"a,b", "c"}},
		{"doubled quote", `"say ""hi""",x`, []string{`say "hi"`, "x"}},
		{"single field", "only", []string{"only"}},
		{"empty line", "", []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLine(tt.line, ','))
		})
	}
}
