package presentation

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Placeholder is rendered for missing values.
const Placeholder = "-"

// FormatYen renders an amount the way ja-JP currency formatting does,
// rounded to whole yen: ￥1,088,000.
func FormatYen(v *decimal.Decimal) string {
	if v == nil {
		return Placeholder
	}
	r := v.Round(0)
	sign := ""
	if r.IsNegative() {
		sign = "-"
		r = r.Abs()
	}
	return sign + "￥" + groupThousands(r.StringFixed(0))
}

// FormatHours renders hours with one decimal.
func FormatHours(v *float64) string {
	if v == nil {
		return Placeholder
	}
	return strconv.FormatFloat(*v, 'f', 1, 64)
}

// FormatWorkPeriod turns "2025-09" into "2025年09月".
func FormatWorkPeriod(period string) string {
	if period == "" {
		return Placeholder
	}
	return strings.Replace(period, "-", "年", 1) + "月"
}

// FormatSignedPercent renders a rate with one decimal and an explicit plus
// sign for non-negative values.
func FormatSignedPercent(rate decimal.Decimal) string {
	s := rate.StringFixed(1)
	if !rate.IsNegative() {
		s = "+" + s
	}
	return s + "%"
}

// FormatCount renders a tally with the 件 counter.
func FormatCount(n int) string {
	return strconv.Itoa(n) + "件"
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
