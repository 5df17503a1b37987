// Package extract pulls structured signals (monetary amounts, durations)
// out of raw clause text via pattern matching. Extraction is total: no
// match means zero, never an error.
package extract

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Monetary amount patterns compiled once at init. Text is lowercased before
// matching, so the patterns are written lowercase. In order: "$100,000.00",
// "$1.5 million", "USD 100,000", "100,000 dollars", "$100k".
var (
	dollarAmountRe = regexp.MustCompile(`\$\s*(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)`)
	dollarScaledRe = regexp.MustCompile(`\$\s*(\d+\.?\d*)\s*(million|billion|thousand)`)
	usdAmountRe    = regexp.MustCompile(`usd\s*(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)`)
	dollarsWordRe  = regexp.MustCompile(`(\d{1,3}(?:,\d{3})*)\s*dollars`)
	kSuffixRe      = regexp.MustCompile(`\$\s*(\d+)k`)
)

// writtenScale covers written magnitudes like "250 thousand dollars".
// The digit-before-word heuristic only applies when "dollar" also appears.
var writtenScales = []struct {
	word string
	mult float64
	re   *regexp.Regexp
}{
	{"hundred", 100, regexp.MustCompile(`(\d+)\s+hundred`)},
	{"thousand", 1_000, regexp.MustCompile(`(\d+)\s+thousand`)},
	{"million", 1_000_000, regexp.MustCompile(`(\d+)\s+million`)},
	{"billion", 1_000_000_000, regexp.MustCompile(`(\d+)\s+billion`)},
}

// MonetaryValue extracts the highest monetary amount found in clause text,
// or 0.0 if none. Multiple patterns may match overlapping text; only the
// maximum matters.
func MonetaryValue(text string) float64 {
	lower := strings.ToLower(text)
	var amounts []float64

	for _, m := range dollarAmountRe.FindAllStringSubmatch(lower, -1) {
		if v, ok := parseAmount(m[1]); ok {
			amounts = append(amounts, v)
		}
	}
	for _, m := range dollarScaledRe.FindAllStringSubmatch(lower, -1) {
		if v, ok := parseAmount(m[1]); ok {
			amounts = append(amounts, v*scaleFor(m[2]))
		}
	}
	for _, m := range usdAmountRe.FindAllStringSubmatch(lower, -1) {
		if v, ok := parseAmount(m[1]); ok {
			amounts = append(amounts, v)
		}
	}
	for _, m := range dollarsWordRe.FindAllStringSubmatch(lower, -1) {
		if v, ok := parseAmount(m[1]); ok {
			amounts = append(amounts, v)
		}
	}
	for _, m := range kSuffixRe.FindAllStringSubmatch(lower, -1) {
		if v, ok := parseAmount(m[1]); ok {
			amounts = append(amounts, v*1_000)
		}
	}

	if strings.Contains(lower, "dollar") {
		for _, ws := range writtenScales {
			if !strings.Contains(lower, ws.word) {
				continue
			}
			if m := ws.re.FindStringSubmatch(lower); m != nil {
				if v, ok := parseAmount(m[1]); ok {
					amounts = append(amounts, v*ws.mult)
				}
			}
		}
	}

	best := 0.0
	for _, v := range amounts {
		if v > best {
			best = v
		}
	}
	return best
}

// parseAmount converts a matched amount string ("1,500,000.00") to a float.
func parseAmount(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// scaleFor maps a magnitude word to its multiplier.
func scaleFor(word string) float64 {
	switch word {
	case "thousand":
		return 1_000
	case "million":
		return 1_000_000
	case "billion":
		return 1_000_000_000
	default:
		return 1
	}
}

// FormatAmount renders a monetary value with comma grouping and no decimals,
// e.g. 750000 -> "750,000". Used inside trigger and recommendation strings.
func FormatAmount(v float64) string {
	n := int64(math.Round(v))
	neg := n < 0
	if neg {
		n = -n
	}

	s := strconv.FormatInt(n, 10)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		s = "-" + s
	}
	return s
}
