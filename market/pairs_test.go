package market

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogSpecsUsable(t *testing.T) {
	t.Parallel()

	syms := Symbols()
	assert.Len(t, syms, 8)

	for _, s := range syms {
		p, ok := Lookup(s)
		require.True(t, ok, s)
		assert.Equal(t, s, p.Symbol)
		assert.Greater(t, p.PipSize, 0.0, s)
		assert.Greater(t, p.PipValuePerLot, 0.0, s)
		assert.True(t, p.Usable(), s)
	}
}

func TestLookupSeedValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		symbol   string
		pipSize  float64
		pipValue float64
	}{
		{"EURUSD", 0.0001, 10},
		{"GBPUSD", 0.0001, 10},
		{"AUDUSD", 0.0001, 10},
		{"USDCHF", 0.0001, 10},
		{"USDCAD", 0.0001, 10},
		{"USDJPY", 0.01, 10},
		{"EURJPY", 0.01, 10},
		{"XAUUSD", 0.10, 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.symbol, func(t *testing.T) {
			t.Parallel()
			p, ok := Lookup(tt.symbol)
			require.True(t, ok)
			assert.Equal(t, tt.pipSize, p.PipSize)
			assert.Equal(t, tt.pipValue, p.PipValuePerLot)
		})
	}
}

func TestLookupCaseInsensitive(t *testing.T) {
	t.Parallel()

	upper, ok := Lookup("EURUSD")
	require.True(t, ok)

	for _, s := range []string{"eurusd", "EurUsd", "  eurusd \n"} {
		got, ok := Lookup(s)
		assert.True(t, ok, s)
		assert.Equal(t, upper, got, s)
	}
}

func TestLookupNotFound(t *testing.T) {
	t.Parallel()

	p, ok := Lookup("BTCUSD")
	assert.False(t, ok)
	assert.Equal(t, PairSpec{}, p)

	_, ok = Lookup("")
	assert.False(t, ok)
}

func TestSymbolsReturnsCopy(t *testing.T) {
	t.Parallel()

	s := Symbols()
	s[0] = "HACKED"

	assert.Equal(t, "EURUSD", Symbols()[0])
	_, ok := Lookup("HACKED")
	assert.False(t, ok)
}

func TestManualDoesNotValidate(t *testing.T) {
	t.Parallel()

	p := Manual("btcusd", -1, 0)
	assert.Equal(t, "btcusd", p.Symbol)
	assert.Equal(t, -1.0, p.PipSize)
	assert.Equal(t, 0.0, p.PipValuePerLot)
	assert.False(t, p.Usable())
}

func TestResolve(t *testing.T) {
	t.Parallel()

	t.Run("catalog hit skips fallback", func(t *testing.T) {
		t.Parallel()
		called := false
		p, found, err := Resolve("xauusd", func(string) (float64, float64, error) {
			called = true
			return 0, 0, nil
		})
		require.NoError(t, err)
		assert.True(t, found)
		assert.False(t, called)
		assert.Equal(t, "XAUUSD", p.Symbol)
	})

	t.Run("unknown pair uses fallback", func(t *testing.T) {
		t.Parallel()
		var asked string
		p, found, err := Resolve("BTCUSD", func(sym string) (float64, float64, error) {
			asked = sym
			return 1, 1, nil
		})
		require.NoError(t, err)
		assert.False(t, found)
		assert.Equal(t, "BTCUSD", asked)
		assert.Equal(t, PairSpec{Symbol: "BTCUSD", PipSize: 1, PipValuePerLot: 1}, p)
	})

	t.Run("fallback error propagates", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		_, _, err := Resolve("BTCUSD", func(string) (float64, float64, error) {
			return 0, 0, boom
		})
		assert.ErrorIs(t, err, boom)
	})
}
