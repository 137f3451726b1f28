package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/testkit-dev/testkit/packages/csv"
)

// ReadCSVFile reads and parses a CSV file. Relative paths resolve against
// the current working directory. The encoding named in opts.Encoding is
// applied before parsing; see lookupEncoding for supported names.
func ReadCSVFile(path string, opts csv.ParseOptions) (*csv.Table, error) {
	data, err := os.ReadFile(resolvePath(path))
	if err != nil {
		return nil, fmt.Errorf("read csv %s: %w", path, err)
	}

	content, err := decode(data, opts.Encoding)
	if err != nil {
		return nil, fmt.Errorf("read csv %s: %w", path, err)
	}

	return csv.Parse(content, opts), nil
}

// WriteCSVFile serializes a table and writes it, encoding the output when
// opts.Encoding names a non-UTF-8 charset. Parent directories are created
// as needed.
func WriteCSVFile(path string, table *csv.Table, opts csv.ParseOptions) error {
	content := csv.Stringify(table, opts)

	data, err := encode(content, opts.Encoding)
	if err != nil {
		return fmt.Errorf("write csv %s: %w", path, err)
	}

	resolved := resolvePath(path)
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("write csv %s: %w", path, err)
	}
	if err := os.WriteFile(resolved, data, 0o644); err != nil {
		return fmt.Errorf("write csv %s: %w", path, err)
	}
	return nil
}

// ValidateCSVFile reads a file and validates the table against
// expectations. Read failures become a single-entry failed result rather
// than an error, so validation callers always get a structured result.
func ValidateCSVFile(path string, opts csv.ParseOptions, want csv.Expectations) *csv.ValidationResult {
	table, err := ReadCSVFile(path, opts)
	if err != nil {
		return csv.FailedResult(err)
	}
	return csv.Validate(table, want)
}

func resolvePath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	wd, err := os.Getwd()
	if err != nil {
		return path
	}
	return filepath.Join(wd, path)
}

// lookupEncoding maps an encoding name to a decoder/encoder pair. UTF-8
// (and the empty name) returns nil, meaning no transformation.
func lookupEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return nil, nil
	case "utf-16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), nil
	case "utf-16be":
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM), nil
	case "iso-8859-1", "latin1":
		return charmap.ISO8859_1, nil
	case "windows-1252":
		return charmap.Windows1252, nil
	default:
		return nil, fmt.Errorf("unsupported encoding %q", name)
	}
}

func decode(data []byte, encodingName string) (string, error) {
	enc, err := lookupEncoding(encodingName)
	if err != nil {
		return "", err
	}
	if enc == nil {
		return string(data), nil
	}
	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", encodingName, err)
	}
	return string(decoded), nil
}

func encode(content, encodingName string) ([]byte, error) {
	enc, err := lookupEncoding(encodingName)
	if err != nil {
		return nil, err
	}
	if enc == nil {
		return []byte(content), nil
	}
	encoded, err := enc.NewEncoder().Bytes([]byte(content))
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", encodingName, err)
	}
	return encoded, nil
}
