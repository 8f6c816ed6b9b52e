// Package loan computes the repayment preview shown next to the loan form.
package loan

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DailyRate is flat simple interest per day of term.
const DailyRate = 0.01

type Total struct {
	Interest float64 `json:"interest"`
	Total    float64 `json:"total"`
}

// Finite reports whether both values can be displayed as numbers.
func (t Total) Finite() bool {
	return !math.IsInf(t.Total, 0) && !math.IsNaN(t.Total) &&
		!math.IsInf(t.Interest, 0) && !math.IsNaN(t.Interest)
}

// ComputeTotal returns interest and amount due for amount over term days.
// ok is false when either input is blank or has no numeric prefix. Values
// are not rounded and sign is not checked.
func ComputeTotal(amount, term string) (Total, bool) {
	if strings.TrimSpace(amount) == "" || strings.TrimSpace(term) == "" {
		return Total{}, false
	}
	a, ok := parseLeadingFloat(amount)
	if !ok {
		return Total{}, false
	}
	t, ok := parseLeadingFloat(term)
	if !ok {
		return Total{}, false
	}
	interest := a * t * DailyRate
	return Total{Interest: interest, Total: a + interest}, true
}

// parseLeadingFloat reads the longest decimal prefix of s after leading
// whitespace, so "30 days" is 30 and "abc" fails.
func parseLeadingFloat(s string) (float64, bool) {
	s = strings.TrimLeft(s, " \t\n\r\v\f\u00a0\ufeff")
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if strings.HasPrefix(s[i:], "Infinity") {
		v, err := strconv.ParseFloat(s[:i]+"Inf", 64)
		return v, err == nil
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0, false
	}
	end := i
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			end = k
		}
	}

	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		// out of range still yields ±Inf, as in the browser
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return v, true
		}
		return 0, false
	}
	return v, true
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// Format renders v with Russian digit grouping and at most two fraction digits.
func Format(v float64) string {
	p := message.NewPrinter(language.Russian)
	return p.Sprint(number.Decimal(v, number.MaxFractionDigits(2)))
}
