package analytics

import (
	"fmt"
)

// Percent is a ratio expressed in percent: 12.5 means 12.5%.
type Percent float64

// Pct converts a fraction (0.125) into a Percent (12.5%).
func Pct(fraction float64) Percent { return Percent(100 * fraction) }

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

// Defined reports whether the percent holds a usable value.
func (p Percent) Defined() bool { return Defined(float64(p)) }

func (p Percent) String() string {
	if !p.Defined() {
		return "N/A"
	}
	return fmt.Sprintf("%.2f%%", float64(p))
}

func (p Percent) SignedString() string {
	if !p.Defined() {
		return "N/A"
	}
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" || res == "-0.00%" {
		return "-"
	}
	return res
}

// Ratio formats a plain metric such as a Sharpe ratio.
type Ratio float64

func (r Ratio) String() string {
	if !Defined(float64(r)) {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", float64(r))
}
