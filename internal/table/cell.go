package table

import (
	"fmt"
	"math/big"
	"regexp"
	"strconv"
)

// decimalLiteral matches plain and scientific decimals. big.Rat also parses
// fractions and 0x/0b/0o prefixes, which never belong in an amount column.
var decimalLiteral = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// Uint parses the cell at (row, col) as a non-negative base-10 integer.
func (t *Table) Uint(row int, col string) (*big.Int, error) {
	s, err := t.Cell(row, col)
	if err != nil {
		return nil, err
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok || n.Sign() < 0 {
		return nil, cellError(row, col, s, "unsigned integer")
	}
	return n, nil
}

// Decimal parses the cell at (row, col) as an exact decimal number.
// Plain ("2.5") and scientific ("1e-05") notation are accepted.
func (t *Table) Decimal(row int, col string) (*big.Rat, error) {
	s, err := t.Cell(row, col)
	if err != nil {
		return nil, err
	}
	if !decimalLiteral.MatchString(s) {
		return nil, cellError(row, col, s, "decimal")
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, cellError(row, col, s, "decimal")
	}
	return r, nil
}

// Bool parses the cell at (row, col) with strconv.ParseBool, which covers
// the True/False spelling pandas writes.
func (t *Table) Bool(row int, col string) (bool, error) {
	s, err := t.Cell(row, col)
	if err != nil {
		return false, err
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, cellError(row, col, s, "boolean")
	}
	return b, nil
}

func cellError(row int, col, val, want string) error {
	return fmt.Errorf("%w: row %d column %q: %q is not a valid %s", ErrCellFormat, row, col, val, want)
}
