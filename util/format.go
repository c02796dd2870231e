package util

import (
	"fmt"
	"strconv"
)

// byteUnits are binary (1024-based) unit suffixes, smallest first.
const byteUnits = "KMGTPEZY"

// HumanBytes formats a byte count with binary units. Values under 1024
// come back as a plain integer with a "B" suffix. Scaled values at or
// below 10.0 keep one decimal place, larger ones none: 10000 -> "9.8K",
// 100001221 -> "95M".
func HumanBytes(n uint64) string {
	if n < 1024 {
		return strconv.FormatUint(n, 10) + "B"
	}
	v := float64(n)
	for i := 0; i < len(byteUnits); i++ {
		v /= 1024
		if v >= 1024 && i < len(byteUnits)-1 {
			continue
		}
		if v <= 10.0 {
			return fmt.Sprintf("%.1f%c", v, byteUnits[i])
		}
		return fmt.Sprintf("%.0f%c", v, byteUnits[i])
	}
	return strconv.FormatUint(n, 10) + "B"
}

// FormatElapsed renders a duration in whole seconds as the most
// significant non-zero units: "7d 1h 16m", "1h 1m", "42m", "0m".
// Seconds are discarded.
func FormatElapsed(sec uint64) string {
	days := sec / 86400
	hours := sec % 86400 / 3600
	mins := sec % 3600 / 60
	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hours, mins)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, mins)
	case mins > 0:
		return fmt.Sprintf("%dm", mins)
	}
	return "0m"
}
