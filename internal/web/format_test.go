package web

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(f float64) *float64 { return &f }

func TestClassifyValue(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{5.2, ClassSuccess},
		{-3.1, ClassDanger},
		{0, ClassWarning},
		{0.0, ClassWarning},
		{"abc", ClassWarning},
		{"12.5", ClassSuccess},
		{"-0.01", ClassDanger},
		{"", ClassWarning},
		{nil, ClassWarning},
		{math.NaN(), ClassWarning},
		{ptr(1), ClassSuccess},
		{(*float64)(nil), ClassWarning},
		{struct{}{}, ClassWarning},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyValue(tt.in), "ClassifyValue(%#v)", tt.in)
	}
}

func TestClassify(t *testing.T) {
	assert.Equal(t, ClassSuccess, Classify(ptr(5.2)))
	assert.Equal(t, ClassDanger, Classify(ptr(-3.1)))
	assert.Equal(t, ClassWarning, Classify(ptr(0)))
	assert.Equal(t, ClassWarning, Classify(ptr(math.NaN())))
	assert.Equal(t, ClassWarning, Classify(nil))
}

func TestFormatFixed(t *testing.T) {
	assert.Equal(t, "5.2000", FormatFixed(ptr(5.2)))
	assert.Equal(t, "-3.1000", FormatFixed(ptr(-3.1)))
	assert.Equal(t, "0.1235", FormatFixed(ptr(0.123456)))
	assert.Equal(t, "-120.2500", FormatFixed(ptr(-120.25)))
	assert.Equal(t, "0.0000", FormatFixed(ptr(0)))
	assert.Equal(t, notAvailable, FormatFixed(nil))
	assert.Equal(t, notAvailable, FormatFixed(ptr(math.Inf(1))))
}

func TestNumberFormatter(t *testing.T) {
	f := newNumberFormatter()

	assert.Equal(t, "64,000.5", f.Price(ptr(64000.5)))
	assert.Equal(t, "0.00001234", f.Price(ptr(0.00001234)))
	assert.Equal(t, "19,700,000", f.Supply(ptr(19700000)))
	assert.Equal(t, notAvailable, f.Price(nil))
	assert.Equal(t, notAvailable, f.Supply(nil))
}
