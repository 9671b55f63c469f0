package fixture

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// ErrUnsupportedMode is returned for a mode name outside the fixed table.
var ErrUnsupportedMode = errors.New("unsupported mode")

// Column names in the input table.
const (
	ColEpoch       = "epoch"
	ColBlockNumber = "blockNumber"
	ColStrikeIndex = "strikeIndex"
	ColAmount      = "amount"
	ColTxType      = "txType"
)

// Kind selects the transform applied to a cell before encoding.
type Kind int

const (
	// KindInteger cells are encoded as-is.
	KindInteger Kind = iota
	// KindAmount cells are decimals multiplied by 10^Decimals and truncated.
	KindAmount
	// KindFlag cells are booleans or small integers, depending on the ABI type.
	KindFlag
	// KindLength is the table row count rather than a cell.
	KindLength
)

// Column is one encoded word of a mode.
type Column struct {
	Name string
	Kind Kind
	Type string // ABI type: "uint256" or "bool"
}

// Mode is a fixed word layout.
type Mode struct {
	Name        string
	Description string
	Columns     []Column
	Decimals    uint // amount scale exponent
}

var (
	epochCol  = Column{Name: ColEpoch, Kind: KindInteger, Type: "uint256"}
	blockCol  = Column{Name: ColBlockNumber, Kind: KindInteger, Type: "uint256"}
	strikeCol = Column{Name: ColStrikeIndex, Kind: KindInteger, Type: "uint256"}
	amountCol = Column{Name: ColAmount, Kind: KindAmount, Type: "uint256"}
)

// modes is the complete set of supported layouts, in display order.
var modes = []Mode{
	{
		Name:        "epoch",
		Description: "epoch, blockNumber, strikeIndex, amount in wei",
		Columns:     []Column{epochCol, blockCol, strikeCol, amountCol},
		Decimals:    18,
	},
	{
		Name:        "row",
		Description: "full row, amount in wei, txType as bool",
		Columns: []Column{epochCol, blockCol, strikeCol, amountCol,
			{Name: ColTxType, Kind: KindFlag, Type: "bool"}},
		Decimals: 18,
	},
	{
		Name:        "raw",
		Description: "full row, amount unscaled, txType as uint256",
		Columns: []Column{epochCol, blockCol, strikeCol, amountCol,
			{Name: ColTxType, Kind: KindFlag, Type: "uint256"}},
		Decimals: 0,
	},
	{
		Name:        "row8",
		Description: "full row, amount with 8 decimals, txType as uint256",
		Columns: []Column{epochCol, blockCol, strikeCol, amountCol,
			{Name: ColTxType, Kind: KindFlag, Type: "uint256"}},
		Decimals: 8,
	},
	{
		Name:        "length",
		Description: "number of rows in the table",
		Columns:     []Column{{Name: "length", Kind: KindLength, Type: "uint256"}},
	},
}

// Modes returns every supported mode in a stable order.
func Modes() []Mode {
	out := make([]Mode, len(modes))
	copy(out, modes)
	return out
}

// LookupMode finds a mode by name, ignoring case.
func LookupMode(name string) (Mode, error) {
	for _, m := range modes {
		if strings.EqualFold(m.Name, strings.TrimSpace(name)) {
			return m, nil
		}
	}
	return Mode{}, fmt.Errorf("%w %q (known: %s)", ErrUnsupportedMode, name, strings.Join(ModeNames(), ", "))
}

// ModeNames lists the supported mode names.
func ModeNames() []string {
	names := make([]string, len(modes))
	for i, m := range modes {
		names[i] = m.Name
	}
	return names
}

// IsLength reports whether the mode encodes the row count instead of a row.
func (m Mode) IsLength() bool {
	return len(m.Columns) == 1 && m.Columns[0].Kind == KindLength
}

// Scale returns 10^Decimals.
func (m Mode) Scale() *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(m.Decimals)), nil)
}

// Size returns the encoded length in bytes.
func (m Mode) Size() int { return len(m.Columns) * 32 }

// arguments builds the ABI argument list for the mode's columns.
func (m Mode) arguments() (abi.Arguments, error) {
	args := make(abi.Arguments, 0, len(m.Columns))
	for _, c := range m.Columns {
		typ, err := abi.NewType(c.Type, "", nil)
		if err != nil {
			return nil, fmt.Errorf("mode %s column %s: %w", m.Name, c.Name, err)
		}
		args = append(args, abi.Argument{Name: c.Name, Type: typ})
	}
	return args, nil
}
