package fixture

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// ErrBadEncoding is returned when a hex string does not match a mode's layout.
var ErrBadEncoding = errors.New("malformed encoding")

// Value is one decoded word.
type Value struct {
	Column   Column
	Int      *big.Int // set for uint256 words
	Bool     bool     // set for bool words
	Decimals uint
}

// String renders the raw word value.
func (v Value) String() string {
	if v.Column.Type == "bool" {
		return strconv.FormatBool(v.Bool)
	}
	return v.Int.String()
}

// Units renders amount words divided back by the mode scale. Other words
// render as String does.
func (v Value) Units() string {
	if v.Column.Kind != KindAmount || v.Decimals == 0 || v.Int == nil {
		return v.String()
	}
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(v.Decimals)), nil)
	s := new(big.Rat).SetFrac(v.Int, scale).FloatString(int(v.Decimals))
	return strings.TrimSuffix(strings.TrimRight(s, "0"), ".")
}

// Decode splits an encoded fixture back into its words using the layout of m.
func Decode(m Mode, encoded string) ([]Value, error) {
	encoded = strings.TrimSpace(encoded)
	if !strings.HasPrefix(encoded, "0x") && !strings.HasPrefix(encoded, "0X") {
		encoded = "0x" + encoded
	}
	data, err := hexutil.Decode("0x" + encoded[2:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadEncoding, err)
	}
	if len(data) != m.Size() {
		return nil, fmt.Errorf("%w: mode %s expects %d bytes, got %d", ErrBadEncoding, m.Name, m.Size(), len(data))
	}

	args, err := m.arguments()
	if err != nil {
		return nil, err
	}
	raw, err := args.Unpack(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadEncoding, err)
	}

	out := make([]Value, len(m.Columns))
	for i, c := range m.Columns {
		v := Value{Column: c, Decimals: m.Decimals}
		switch x := raw[i].(type) {
		case *big.Int:
			v.Int = x
		case bool:
			v.Bool = x
		default:
			return nil, fmt.Errorf("%w: column %s decoded as %T", ErrBadEncoding, c.Name, raw[i])
		}
		out[i] = v
	}
	return out, nil
}
