package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Stdin is the input path that reads the table from standard input.
const Stdin = "-"

var (
	// ErrEmptyTable is returned when the input has no header row.
	ErrEmptyTable = errors.New("table has no header row")
	// ErrIndexOutOfRange is returned for a row index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("row index out of range")
	// ErrMissingColumn is returned when a column is not in the header.
	ErrMissingColumn = errors.New("column not found")
	// ErrCellFormat is returned when a cell cannot be parsed as the requested type.
	ErrCellFormat = errors.New("invalid cell value")
)

// Table is an immutable, header-indexed view of a CSV file.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]string
}

// Load reads the table at path. Files ending in .gz or .zst are
// decompressed transparently. The file is closed before Load returns.
func Load(path string) (*Table, error) {
	if path == Stdin {
		return Parse(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading table: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("opening gzip table %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	case ".zst":
		zr, err := zstd.NewReader(f, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, fmt.Errorf("opening zstd table %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}

	t, err := Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Parse reads CSV records from r. The first record is the header.
func Parse(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing csv: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyTable
	}

	header := records[0]
	t := &Table{
		columns: make([]string, len(header)),
		index:   make(map[string]int, len(header)),
		rows:    records[1:],
	}
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		t.columns[i] = name
		if _, dup := t.index[name]; !dup {
			t.index[name] = i
		}
	}
	return t, nil
}

// Len returns the number of data rows, excluding the header.
func (t *Table) Len() int { return len(t.rows) }

// Columns returns the header names in file order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

// Has reports whether the header contains col.
func (t *Table) Has(col string) bool {
	_, ok := t.index[col]
	return ok
}

// Cell returns the trimmed raw text at (row, col).
func (t *Table) Cell(row int, col string) (string, error) {
	if row < 0 || row >= len(t.rows) {
		return "", fmt.Errorf("%w: index %d, table has %d rows", ErrIndexOutOfRange, row, len(t.rows))
	}
	i, ok := t.index[col]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrMissingColumn, col)
	}
	return strings.TrimSpace(t.rows[row][i]), nil
}
