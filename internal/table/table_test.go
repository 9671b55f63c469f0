package table_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Mohsinsiddi/fixgen/internal/table"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const csvData = `epoch, blockNumber, strikeIndex, amount, txType
1,100,0,2.5,True
2,200,1,0.75,False
`

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

// ---------------------------------------------------------------------------
// Load / Parse
// ---------------------------------------------------------------------------

func TestLoadPlainCSV(t *testing.T) {
	tbl, err := table.Load(writeFile(t, "input.csv", []byte(csvData)))
	require.NoError(t, err)

	assert.Equal(t, 2, tbl.Len())
	assert.Equal(t, []string{"epoch", "blockNumber", "strikeIndex", "amount", "txType"}, tbl.Columns())
	assert.True(t, tbl.Has("amount"))
	assert.False(t, tbl.Has("price"))
}

func TestLoadGzipCSV(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(csvData))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	tbl, err := table.Load(writeFile(t, "input.csv.gz", buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.Len())

	v, err := tbl.Cell(1, "amount")
	require.NoError(t, err)
	assert.Equal(t, "0.75", v)
}

func TestLoadZstdCSV(t *testing.T) {
	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	compressed := enc.EncodeAll([]byte(csvData), nil)
	require.NoError(t, enc.Close())

	tbl, err := table.Load(writeFile(t, "input.csv.zst", compressed))
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.Len())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := table.Load(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "reading table")
}

func TestLoadCorruptGzip(t *testing.T) {
	_, err := table.Load(writeFile(t, "input.csv.gz", []byte(csvData)))
	assert.Error(t, err)
}

func TestParseEmptyInput(t *testing.T) {
	_, err := table.Parse(strings.NewReader(""))
	assert.ErrorIs(t, err, table.ErrEmptyTable)
}

func TestParseHeaderOnly(t *testing.T) {
	tbl, err := table.Parse(strings.NewReader("epoch,amount\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, tbl.Len())
}

func TestParseRaggedRowsFail(t *testing.T) {
	_, err := table.Parse(strings.NewReader("epoch,amount\n1,2\n3\n"))
	assert.Error(t, err)
}

func TestParseStripsByteOrderMark(t *testing.T) {
	tbl, err := table.Parse(strings.NewReader("\ufeffepoch,amount\n1,2\n"))
	require.NoError(t, err)
	assert.True(t, tbl.Has("epoch"))
}

func TestColumnsReturnsCopy(t *testing.T) {
	tbl, err := table.Parse(strings.NewReader(csvData))
	require.NoError(t, err)
	cols := tbl.Columns()
	cols[0] = "mutated"
	assert.Equal(t, "epoch", tbl.Columns()[0])
}

// ---------------------------------------------------------------------------
// Cell access
// ---------------------------------------------------------------------------

func TestCellOutOfRange(t *testing.T) {
	tbl, err := table.Parse(strings.NewReader(csvData))
	require.NoError(t, err)

	_, err = tbl.Cell(tbl.Len(), "epoch")
	assert.ErrorIs(t, err, table.ErrIndexOutOfRange)

	_, err = tbl.Cell(-1, "epoch")
	assert.ErrorIs(t, err, table.ErrIndexOutOfRange)

	_, err = tbl.Cell(tbl.Len()-1, "epoch")
	assert.NoError(t, err)
}

func TestCellMissingColumn(t *testing.T) {
	tbl, err := table.Parse(strings.NewReader(csvData))
	require.NoError(t, err)

	_, err = tbl.Cell(0, "price")
	assert.ErrorIs(t, err, table.ErrMissingColumn)
}
