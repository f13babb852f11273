package contract

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("invalid amount")

// maxUint256Bits is the width of a uint256 contract argument.
const maxUint256Bits = 256

// ParseAmount converts a BPT decimal string to wei, like ethers' parseEther.
// Zero and negative amounts are refused since no contract action accepts them.
// Exponent notation is refused and the result must fit in a uint256.
func ParseAmount(s string) (*big.Int, error) {
	if strings.ContainsAny(s, "eE") {
		return nil, fmt.Errorf("%w: %q uses exponent notation", ErrInvalidAmount, s)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if !d.IsPositive() {
		return nil, fmt.Errorf("%w: %q must be greater than zero", ErrInvalidAmount, s)
	}
	wei := d.Shift(TokenDecimals)
	if !wei.IsInteger() {
		return nil, fmt.Errorf("%w: %q has more than %d decimals", ErrInvalidAmount, s, TokenDecimals)
	}
	out := wei.BigInt()
	if out.BitLen() > maxUint256Bits {
		return nil, fmt.Errorf("%w: %q exceeds uint256", ErrInvalidAmount, s)
	}
	return out, nil
}

// FormatAmount renders a wei amount as BPT.
func FormatAmount(wei *big.Int) string {
	if wei == nil {
		return "0"
	}
	return decimal.NewFromBigInt(wei, -TokenDecimals).String()
}

// FormatFixed renders a BPT decimal string with a fixed number of places.
// Unparseable input renders as zero.
func FormatFixed(amount string, places int32) string {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		d = decimal.Zero
	}
	return d.StringFixed(places)
}
