package fixture

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/Mohsinsiddi/fixgen/internal/table"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

var (
	// ErrIndexOutOfRange is returned when the row index is outside the table.
	// It is the table package's sentinel, so either name matches with errors.Is.
	ErrIndexOutOfRange = table.ErrIndexOutOfRange
	// ErrValueRange is returned when a transformed value does not fit uint256.
	ErrValueRange = errors.New("value out of uint256 range")
)

// Source is the read side of a loaded table.
type Source interface {
	Len() int
	Uint(row int, col string) (*big.Int, error)
	Decimal(row int, col string) (*big.Rat, error)
	Bool(row int, col string) (bool, error)
}

// Encode runs the operation selected by m: EncodeLength for the length
// mode, EncodeRow otherwise. index is ignored for the length mode.
func Encode(src Source, index int, m Mode) (string, error) {
	if m.IsLength() {
		return EncodeLength(src)
	}
	return EncodeRow(src, index, m)
}

// EncodeRow encodes the row at index as one 32-byte word per mode column
// and returns the 0x-prefixed lowercase hex string.
func EncodeRow(src Source, index int, m Mode) (string, error) {
	if m.IsLength() || len(m.Columns) == 0 {
		return "", fmt.Errorf("%w: %s does not encode rows", ErrUnsupportedMode, m.Name)
	}
	if index < 0 || index >= src.Len() {
		return "", fmt.Errorf("%w: index %d, table has %d rows", ErrIndexOutOfRange, index, src.Len())
	}

	scale := m.Scale()
	values := make([]any, len(m.Columns))
	for i, c := range m.Columns {
		v, err := cellValue(src, index, c, scale)
		if err != nil {
			return "", err
		}
		values[i] = v
	}
	return pack(m, values)
}

// EncodeLength encodes the table's row count as a single uint256 word.
func EncodeLength(src interface{ Len() int }) (string, error) {
	m, err := LookupMode("length")
	if err != nil {
		return "", err
	}
	return pack(m, []any{big.NewInt(int64(src.Len()))})
}

func cellValue(src Source, row int, c Column, scale *big.Int) (any, error) {
	switch c.Kind {
	case KindInteger:
		n, err := src.Uint(row, c.Name)
		if err != nil {
			return nil, err
		}
		return n, checkUint256(c.Name, n)

	case KindAmount:
		r, err := src.Decimal(row, c.Name)
		if err != nil {
			return nil, err
		}
		if r.Sign() < 0 {
			return nil, fmt.Errorf("%w: column %s value %s", ErrValueRange, c.Name, r.RatString())
		}
		n := ToUnits(r, scale)
		return n, checkUint256(c.Name, n)

	case KindFlag:
		if c.Type == "bool" {
			return src.Bool(row, c.Name)
		}
		n, err := src.Uint(row, c.Name)
		if err == nil {
			return n, checkUint256(c.Name, n)
		}
		// True/False cells encode as 1/0 in integer layouts.
		b, berr := src.Bool(row, c.Name)
		if berr != nil {
			return nil, err
		}
		if b {
			return big.NewInt(1), nil
		}
		return big.NewInt(0), nil

	default:
		return nil, fmt.Errorf("column %s: kind %d has no cell value", c.Name, c.Kind)
	}
}

// ToUnits multiplies amount by scale and truncates toward zero.
func ToUnits(amount *big.Rat, scale *big.Int) *big.Int {
	r := new(big.Rat).Mul(amount, new(big.Rat).SetInt(scale))
	return new(big.Int).Quo(r.Num(), r.Denom())
}

func checkUint256(col string, n *big.Int) error {
	if n.Sign() < 0 || n.BitLen() > 256 {
		return fmt.Errorf("%w: column %s value %s", ErrValueRange, col, n)
	}
	return nil
}

func pack(m Mode, values []any) (string, error) {
	args, err := m.arguments()
	if err != nil {
		return "", err
	}
	data, err := args.Pack(values...)
	if err != nil {
		return "", fmt.Errorf("packing %s: %w", m.Name, err)
	}
	return hexutil.Encode(data), nil
}
