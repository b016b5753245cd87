package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatFloat(t *testing.T) {
	tcs := []struct {
		in   float64
		want string
	}{
		{0, "0.0"},
		{math.Copysign(0, -1), "-0.0"},
		{1, "1.0"},
		{-12, "-12.0"},
		{10, "10.0"},
		{0.5, "0.5"},
		{0.1, "0.1"},
		{1.0 / 3.0, "0.3333333333333333"},
		{0.001, "0.001"},
		{1234567, "1234567.0"},
		{9999999.5, "9999999.5"},
		{1e7, "1.0E7"},
		{1.5e10, "1.5E10"},
		{-2.5e-4, "-2.5E-4"},
		{1e-5, "1.0E-5"},
		{math.MaxFloat64, "1.7976931348623157E308"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
	}

	for _, tc := range tcs {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, formatFloat(tc.in))
		})
	}
}
