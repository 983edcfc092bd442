// Package core provides the domain types and pure computations of the
// expense tracker: amount canonicalization, period filtering, and the
// derived aggregates the view layer renders.
package core

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// RawAmount is a two-variant union over the shapes an amount arrives in:
// values that are already numeric and values typed as text in a form field.
type RawAmount interface {
	rawAmount()
}

// NumberAmount is an amount that is already a plain number.
type NumberAmount float64

// TextAmount is an amount typed as text, using a thousands-dot,
// decimal-comma convention ("1.234,56").
type TextAmount string

func (NumberAmount) rawAmount() {}
func (TextAmount) rawAmount()   {}

// ParseAmount normalizes a raw amount into a canonical decimal value.
//
// It is total: unparseable input degrades to zero rather than failing, so a
// half-typed form field always yields a usable number. Non-finite numeric
// input also yields zero. A nil raw amount yields zero.
//
// Examples:
//
//	ParseAmount(TextAmount("1.234,56")) -> 1234.56
//	ParseAmount(TextAmount("abc"))      -> 0
//	ParseAmount(NumberAmount(42))       -> 42
func ParseAmount(raw RawAmount) decimal.Decimal {
	switch v := raw.(type) {
	case NumberAmount:
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return decimal.Zero
		}
		return decimal.NewFromFloat(f)
	case TextAmount:
		return parseTextAmount(string(v))
	default:
		return decimal.Zero
	}
}

// parseTextAmount strips thousands separators, converts the decimal comma,
// and parses the longest leading run that still reads as a decimal number.
// "50,00x" parses to 50; "x50" parses to 0.
func parseTextAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	s = numericPrefix(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// numericPrefix returns the leading substring of s that forms a decimal
// number: optional sign, digits, at most one decimal point, and an
// optional exponent. The result is cleaned so it always parses: a
// trailing point is dropped and a bare leading point gains a zero. Empty
// when s has no leading digits.
func numericPrefix(s string) string {
	i := 0
	sign := ""
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		sign = string(s[i])
		i++
	}
	start := i
	sawDot := false
	sawDigit := false
mantissa:
	for i < len(s) {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			sawDigit = true
		case c == '.' && !sawDot:
			sawDot = true
		default:
			break mantissa
		}
		i++
	}
	if !sawDigit {
		return ""
	}
	num := strings.TrimSuffix(s[start:i], ".")
	if strings.HasPrefix(num, ".") {
		num = "0" + num
	}
	return sign + num + exponentAt(s, i)
}

// exponentAt returns the exponent ("e" or "E", optional sign, digits)
// starting at position i, or "" when the text there is not a complete
// exponent. An incomplete one like "1e" parses as just the mantissa.
func exponentAt(s string, i int) string {
	if i >= len(s) || (s[i] != 'e' && s[i] != 'E') {
		return ""
	}
	j := i + 1
	if j < len(s) && (s[j] == '+' || s[j] == '-') {
		j++
	}
	k := j
	for k < len(s) && s[k] >= '0' && s[k] <= '9' {
		k++
	}
	if k == j {
		return ""
	}
	return s[i:k]
}
