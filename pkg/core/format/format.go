// Package format holds the currency/percent display helpers shared by the
// rating engine, the report renderer, and the slider text-edit path.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Currency renders a value as whole dollars with thousands separators,
// e.g. 382500 -> "$382,500", -1200 -> "-$1,200".
func Currency(v float64) string {
	neg := v < 0
	n := int64(math.Round(math.Abs(v)))

	s := strconv.FormatInt(n, 10)
	var b strings.Builder
	for i, digit := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	if neg {
		return "-$" + b.String()
	}
	return "$" + b.String()
}

// Percent renders a fraction as a percentage, e.g. Percent(0.056, 1) -> "5.6%".
// +Inf renders as the infinity glyph so the BRRRR zero-cash case displays
// distinctly instead of leaking "+Inf%".
func Percent(v float64, decimals int) string {
	if math.IsInf(v, 1) {
		return "∞"
	}
	if math.IsInf(v, -1) {
		return "-∞"
	}
	return fmt.Sprintf("%.*f%%", decimals, v*100)
}

// ParseCurrency recovers the numeric value from a formatted currency string
// (the mobile slider's text-edit path). Bad input logs and falls back to 0
// rather than erroring the UI.
func ParseCurrency(s string) float64 {
	cleaned := strings.NewReplacer("$", "", ",", "", " ", "").Replace(strings.TrimSpace(s))
	if cleaned == "" {
		return 0
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		zap.L().Error("failed to parse currency input", zap.String("input", s), zap.Error(err))
		return 0
	}
	return v
}
