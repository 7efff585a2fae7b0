package web

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Change classes used to color 24h change cells.
const (
	ClassSuccess = "success"
	ClassDanger  = "danger"
	ClassWarning = "warning"
)

// Classify maps a numeric change to its display class. Missing and NaN
// values are "warning", as is exactly zero.
func Classify(v *float64) string {
	if v == nil {
		return ClassWarning
	}
	return classifyFloat(*v)
}

// ClassifyValue classifies an arbitrary value after numeric coercion:
// numbers pass through, numeric strings are parsed, nil and blank strings
// count as zero, anything else is not a number.
func ClassifyValue(v any) string {
	f, ok := toNumber(v)
	if !ok {
		return ClassWarning
	}
	return classifyFloat(f)
}

func classifyFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return ClassWarning
	case f > 0:
		return ClassSuccess
	case f < 0:
		return ClassDanger
	default:
		return ClassWarning
	}
}

func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case nil:
		return 0, true
	case float64:
		return n, true
	case *float64:
		if n == nil {
			return 0, true
		}
		return *n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, true
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// notAvailable is rendered for missing numeric fields.
const notAvailable = "n/a"

// FormatFixed renders v with exactly four decimal places.
func FormatFixed(v *float64) string {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return notAvailable
	}
	return decimal.NewFromFloat(*v).StringFixed(4)
}

// numberFormatter renders grouped numbers. message.Printer is not safe for
// concurrent use, so create one per render.
type numberFormatter struct {
	p *message.Printer
}

func newNumberFormatter() numberFormatter {
	return numberFormatter{p: message.NewPrinter(language.English)}
}

// Price renders a price with grouping and up to eight decimals.
func (f numberFormatter) Price(v *float64) string {
	if v == nil {
		return notAvailable
	}
	return f.p.Sprint(number.Decimal(*v, number.MaxFractionDigits(8)))
}

// Supply renders a whole-unit quantity with grouping.
func (f numberFormatter) Supply(v *float64) string {
	if v == nil {
		return notAvailable
	}
	return f.p.Sprint(number.Decimal(*v, number.MaxFractionDigits(0)))
}
