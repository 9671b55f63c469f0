package table_test

import (
	"strings"
	"testing"

	"github.com/Mohsinsiddi/fixgen/internal/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUint(t *testing.T) {
	tbl, err := table.Parse(strings.NewReader("n\n42\n-1\n1.5\nabc\n115792089237316195423570985008687907853269984665640564039457584007913129639935\n"))
	require.NoError(t, err)

	n, err := tbl.Uint(0, "n")
	require.NoError(t, err)
	assert.Equal(t, int64(42), n.Int64())

	for _, row := range []int{1, 2, 3} {
		_, err := tbl.Uint(row, "n")
		assert.ErrorIs(t, err, table.ErrCellFormat, "row %d", row)
	}

	n, err = tbl.Uint(4, "n")
	require.NoError(t, err)
	assert.Equal(t, 256, n.BitLen())
}

func TestDecimal(t *testing.T) {
	tbl, err := table.Parse(strings.NewReader("x\n2.5\n1e-05\n7\n1/3\nNaN\n"))
	require.NoError(t, err)

	r, err := tbl.Decimal(0, "x")
	require.NoError(t, err)
	assert.Equal(t, "5/2", r.String())

	r, err = tbl.Decimal(1, "x")
	require.NoError(t, err)
	assert.Equal(t, "1/100000", r.String())

	r, err = tbl.Decimal(2, "x")
	require.NoError(t, err)
	assert.True(t, r.IsInt())

	_, err = tbl.Decimal(3, "x")
	assert.ErrorIs(t, err, table.ErrCellFormat)

	_, err = tbl.Decimal(4, "x")
	assert.ErrorIs(t, err, table.ErrCellFormat)
}

func TestDecimalRejectsBasePrefixes(t *testing.T) {
	tbl, err := table.Parse(strings.NewReader("x\n0x10\n0b11\n0o7\n0X1p4\n1_000\n"))
	require.NoError(t, err)

	for row := 0; row < tbl.Len(); row++ {
		_, err := tbl.Decimal(row, "x")
		assert.ErrorIs(t, err, table.ErrCellFormat, "row %d", row)
	}
}

func TestDecimalAcceptsDecimalSpellings(t *testing.T) {
	tbl, err := table.Parse(strings.NewReader("x\n+3\n.5\n5.\n2.5E+2\n007\n"))
	require.NoError(t, err)

	want := []string{"3", "1/2", "5", "250", "7"}
	for row, w := range want {
		r, err := tbl.Decimal(row, "x")
		require.NoError(t, err, "row %d", row)
		assert.Equal(t, w, r.RatString(), "row %d", row)
	}
}

func TestBool(t *testing.T) {
	tbl, err := table.Parse(strings.NewReader("b\nTrue\nfalse\n1\n0\nyes\n"))
	require.NoError(t, err)

	want := []bool{true, false, true, false}
	for i, w := range want {
		got, err := tbl.Bool(i, "b")
		require.NoError(t, err)
		assert.Equal(t, w, got, "row %d", i)
	}

	_, err = tbl.Bool(4, "b")
	assert.ErrorIs(t, err, table.ErrCellFormat)
	assert.Contains(t, err.Error(), `"yes"`)
}
