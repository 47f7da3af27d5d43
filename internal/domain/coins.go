package domain

import (
	"bytes"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Coins is a currency amount in milli-coins (1/1000 of a coin).
//
// Whole-coin values (click power, auto power, costs, rewards) are exact, and so is
// passive accrual for any tick length that is a whole number of milliseconds.
type Coins int64

// CoinScale is the number of Coins in one whole coin.
const CoinScale = 1000

// MaxCoins is the largest representable amount. Costs saturate here.
const MaxCoins = Coins(math.MaxInt64)

// MaxWholeCoins is MaxCoins expressed in whole coins.
const MaxWholeCoins = int64(MaxCoins) / CoinScale

// WholeCoins converts a whole-coin count, saturating at MaxCoins.
func WholeCoins(n int64) Coins {
	if n <= 0 {
		return 0
	}
	if n > MaxWholeCoins {
		return MaxCoins
	}
	return Coins(n * CoinScale)
}

// Integer digit counts outside which CoinsFromDecimal skips the arithmetic:
// anything longer saturates, anything below a tenth of a milli-coin is 0.
const (
	maxCoinDigits = 19
	minCoinDigits = -3
)

// CoinsFromDecimal converts a decimal coin amount, rounding to the nearest milli-coin.
// Negative input returns 0. Extreme exponents never rescale the value.
func CoinsFromDecimal(d decimal.Decimal) Coins {
	if !d.IsPositive() {
		return 0
	}
	switch digits := d.NumDigits() + int(d.Exponent()); {
	case digits > maxCoinDigits:
		return MaxCoins
	case digits < minCoinDigits:
		return 0
	}
	milli := d.Shift(3).Round(0)
	if milli.GreaterThan(decimal.NewFromInt(int64(MaxCoins))) {
		return MaxCoins
	}
	return Coins(milli.IntPart())
}

// Decimal returns the amount in coins.
func (c Coins) Decimal() decimal.Decimal {
	return decimal.New(int64(c), -3)
}

// Whole returns the amount in whole coins, truncated.
func (c Coins) Whole() int64 {
	return int64(c) / CoinScale
}

// Add returns c+o, saturating at MaxCoins.
func (c Coins) Add(o Coins) Coins {
	if o > 0 && c > MaxCoins-o {
		return MaxCoins
	}
	return c + o
}

// String formats the amount in coins.
func (c Coins) String() string {
	return c.Decimal().String()
}

// MarshalJSON encodes the amount as a JSON number of coins.
func (c Coins) MarshalJSON() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalJSON decodes a JSON number of coins, the inverse of MarshalJSON.
// null leaves the amount unchanged.
func (c *Coins) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	d, err := decimal.NewFromString(string(data))
	if err != nil {
		return fmt.Errorf("invalid coin amount %s: %w", data, err)
	}
	*c = CoinsFromDecimal(d)
	return nil
}
