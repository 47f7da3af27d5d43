package domain

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWholeCoins(t *testing.T) {
	tests := []struct {
		in   int64
		want Coins
	}{
		{0, 0},
		{-5, 0},
		{1, 1000},
		{250, 250_000},
		{MaxWholeCoins, Coins(MaxWholeCoins * CoinScale)},
		{MaxWholeCoins + 1, MaxCoins},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.in), func(t *testing.T) {
			assert.Equal(t, tt.want, WholeCoins(tt.in))
		})
	}
}

func TestCoinsFromDecimal(t *testing.T) {
	tests := []struct {
		in   string
		want Coins
	}{
		{"0", 0},
		{"-3.5", 0},
		{"1", 1000},
		{"512.75", 512_750},
		{"0.0004", 0},
		{"0.0005", 1},
		{"1e30", MaxCoins},
		{"1e999999999", MaxCoins},
		{"1e-999999999", 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, CoinsFromDecimal(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestCoins_Add(t *testing.T) {
	assert.Equal(t, Coins(3500), Coins(1500).Add(2000))
	assert.Equal(t, MaxCoins, (MaxCoins - 10).Add(20), "saturates")
	assert.Equal(t, Coins(1000), Coins(1500).Add(-500))
}

func TestCoins_Conversions(t *testing.T) {
	c := Coins(1_234_567)
	assert.Equal(t, int64(1234), c.Whole())
	assert.Equal(t, "1234.567", c.String())
	assert.True(t, decimal.RequireFromString("1234.567").Equal(c.Decimal()))
	assert.Equal(t, "2", Coins(2000).String())
}

func TestCoins_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(map[string]Coins{"whole": 2000, "fraction": 1500, "zero": 0})
	require.NoError(t, err)
	assert.JSONEq(t, `{"whole":2,"fraction":1.5,"zero":0}`, string(data))
}

func TestCoins_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Coins
		wantErr bool
	}{
		{name: "whole", in: `75`, want: WholeCoins(75)},
		{name: "fraction", in: `1.5`, want: 1500},
		{name: "exponent", in: `2e3`, want: WholeCoins(2000)},
		{name: "huge exponent saturates", in: `1e50000000`, want: MaxCoins},
		{name: "negative", in: `-4`, want: 0},
		{name: "quoted", in: `"75"`, wantErr: true},
		{name: "not a number", in: `true`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got struct {
				Amount Coins `json:"amount"`
			}
			err := json.Unmarshal([]byte(`{"amount":`+tt.in+`}`), &got)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Amount)
		})
	}
}

func TestCoins_JSONRoundTrip(t *testing.T) {
	for _, c := range []Coins{0, 1, 1500, WholeCoins(75), 512_750, MaxCoins} {
		t.Run(c.String(), func(t *testing.T) {
			data, err := json.Marshal(c)
			require.NoError(t, err)

			var back Coins
			require.NoError(t, json.Unmarshal(data, &back))
			assert.Equal(t, c, back)
		})
	}
}

func TestCoins_UnmarshalNullKeepsValue(t *testing.T) {
	c := Coins(42)
	require.NoError(t, json.Unmarshal([]byte(`null`), &c))
	assert.Equal(t, Coins(42), c)
}
