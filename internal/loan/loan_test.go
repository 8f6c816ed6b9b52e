package loan

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTotal(t *testing.T) {
	total, ok := ComputeTotal("50000", "30")
	require.True(t, ok)
	assert.Equal(t, Total{Interest: 15000, Total: 65000}, total)
}

func TestComputeTotalFormula(t *testing.T) {
	cases := []struct{ amount, term string }{
		{"1000", "1"},
		{"1234.56", "17"},
		{"0.5", "365"},
		{"-100", "10"},
		{"99999999", "0"},
	}
	for _, c := range cases {
		a, _ := parseLeadingFloat(c.amount)
		d, _ := parseLeadingFloat(c.term)
		total, ok := ComputeTotal(c.amount, c.term)
		require.True(t, ok, c)
		assert.InDelta(t, a*d*0.01, total.Interest, 1e-9, c)
		assert.InDelta(t, a+a*d*0.01, total.Total, 1e-9, c)
	}
}

func TestComputeTotalBlank(t *testing.T) {
	for _, c := range [][2]string{{"", "30"}, {"50000", ""}, {"  ", "30"}, {"", ""}} {
		_, ok := ComputeTotal(c[0], c[1])
		assert.False(t, ok, c)
	}
}

func TestComputeTotalNonNumeric(t *testing.T) {
	_, ok := ComputeTotal("abc", "30")
	assert.False(t, ok)
	_, ok = ComputeTotal("50000", ".")
	assert.False(t, ok)
}

func TestParseLeadingFloat(t *testing.T) {
	cases := map[string]float64{
		"30":        30,
		" 30 days":  30,
		"1.5e2x":    150,
		"2e":        2,
		".5":        0.5,
		"-7.25":     -7.25,
		"12,5":      12,
		"1e400":     math.Inf(1),
		"-Infinity": math.Inf(-1),
	}
	for in, want := range cases {
		got, ok := parseLeadingFloat(in)
		require.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
}

func TestFinite(t *testing.T) {
	total, ok := ComputeTotal("Infinity", "0")
	require.True(t, ok)
	assert.False(t, total.Finite())

	total, _ = ComputeTotal("100", "1")
	assert.True(t, total.Finite())
}

func TestFormat(t *testing.T) {
	digitsOnly := func(s string) string {
		return strings.Map(func(r rune) rune {
			if r >= '0' && r <= '9' || r == ',' {
				return r
			}
			return -1
		}, s)
	}
	assert.Equal(t, "65000", digitsOnly(Format(65000)))
	assert.Equal(t, "1234,5", digitsOnly(Format(1234.5)))
	assert.Equal(t, "0,33", digitsOnly(Format(1.0/3)))
	assert.NotContains(t, Format(65000), ".")
}
