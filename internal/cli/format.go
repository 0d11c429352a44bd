// Package cli provides formatting and rendering utilities for terminal
// output: amounts, tables, and the chart toolkit used by the charts command
// and the TUI.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatAmount formats a monetary amount rounded to whole currency units
// with comma separators. e.g., 1234567.89 -> "1,234,568"
func FormatAmount(v float64) string {
	return FormatNumber(int64(math.Round(v)))
}

// FormatAmount2 formats a monetary amount with two decimals and comma
// separators, for the detailed series tables.
func FormatAmount2(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	whole := math.Floor(v)
	frac := int(math.Round((v - whole) * 100))
	if frac == 100 {
		whole++
		frac = 0
	}
	s := fmt.Sprintf("%s.%02d", FormatNumber(int64(whole)), frac)
	if neg {
		return "-" + s
	}
	return s
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-1 fraction as a percentage string.
// e.g., 0.0503 -> "5.03%"
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.2f%%", f*100)
}

// FormatSigned formats an amount with an explicit sign.
func FormatSigned(v float64) string {
	if v >= 0 {
		return "+" + FormatAmount(v)
	}
	return "-" + FormatAmount(-v)
}

// FormatCompact abbreviates an amount for chart axis labels.
// e.g., 6200000 -> "6.2M", 17654 -> "17.7k"
func FormatCompact(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	var s string
	switch {
	case v >= 1e9:
		if v == math.Trunc(v/1e9)*1e9 {
			s = fmt.Sprintf("%.0fB", v/1e9)
		} else {
			s = fmt.Sprintf("%.1fB", v/1e9)
		}
	case v >= 1e6:
		if v == math.Trunc(v/1e6)*1e6 {
			s = fmt.Sprintf("%.0fM", v/1e6)
		} else {
			s = fmt.Sprintf("%.1fM", v/1e6)
		}
	case v >= 1e3:
		if v == math.Trunc(v/1e3)*1e3 {
			s = fmt.Sprintf("%.0fk", v/1e3)
		} else {
			s = fmt.Sprintf("%.1fk", v/1e3)
		}
	case v >= 1:
		s = fmt.Sprintf("%.0f", v)
	case v == 0:
		s = "0"
	default:
		s = fmt.Sprintf("%.2f", v)
	}
	if neg {
		return "-" + s
	}
	return s
}
