// Package util holds small presentation helpers for rendering crossbar
// values as text; nothing in pkg/crossbar or its dependencies imports it.
package util

import (
	"fmt"
	"math"
)

// FormatValueFactor renders value in SI-prefixed form
// ("1.200 mA" rather than "0.001200 A"), used for crossbar
// currents and voltages.
func FormatValueFactor(value float64, unit string) string {
	absValue := math.Abs(value)
	switch {
	case absValue >= 1:
		return fmt.Sprintf("%.3f %s", value, unit)
	case absValue >= 1e-3:
		return fmt.Sprintf("%.3f m%s", value*1e3, unit)
	case absValue >= 1e-6:
		return fmt.Sprintf("%.3f u%s", value*1e6, unit)
	case absValue >= 1e-9:
		return fmt.Sprintf("%.3f n%s", value*1e9, unit)
	case absValue >= 1e-12:
		return fmt.Sprintf("%.3f p%s", value*1e12, unit)
	default:
		return fmt.Sprintf("%.3e %s", value, unit)
	}
}

// FormatMagnitude renders a bare magnitude (no unit suffix), e.g. a
// resistance value.
func FormatMagnitude(value float64) string {
	if value >= 1000 || (value < 0.001 && value != 0) {
		return fmt.Sprintf("%8.2e", value)
	}
	return fmt.Sprintf("%8.3g", value)
}
