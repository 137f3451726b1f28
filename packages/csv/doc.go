// Package csv converts between delimited text and ordered row records.
//
// The codec is deliberately forgiving: unterminated quotes, ragged rows,
// and blank lines never produce errors. Parsing accounts for every input
// character, and serializing then re-parsing a table reproduces the
// original cell values exactly.
package csv
