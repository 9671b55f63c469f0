package fixtures

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/Mohsinsiddi/fixgen/internal/table"
	"github.com/stretchr/testify/require"
)

// fixturesDir returns the absolute path to the fixtures directory.
func fixturesDir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Dir(file)
}

// CSVPath returns the absolute path of a fixture table.
func CSVPath(filename string) string {
	return filepath.Join(fixturesDir(), "csv", filename)
}

// LoadCSV loads a fixture table and returns its raw bytes.
func LoadCSV(t *testing.T, filename string) []byte {
	t.Helper()
	data, err := os.ReadFile(CSVPath(filename))
	require.NoError(t, err, "failed to load fixture table: %s", filename)
	return data
}

// LoadTable parses a fixture table.
func LoadTable(t *testing.T, filename string) *table.Table {
	t.Helper()
	tbl, err := table.Load(CSVPath(filename))
	require.NoError(t, err, "failed to parse fixture table: %s", filename)
	return tbl
}
