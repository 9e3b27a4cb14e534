package utils

import "fmt"

var sizeUnits = []string{"B", "KiB", "MiB", "GiB", "TiB"}

// PrettySize formats a byte count using binary units, e.g. 1536 -> "1.5KiB".
func PrettySize(size float64) string {
	unit := 0
	for size >= 1024 && unit < len(sizeUnits)-1 {
		size /= 1024
		unit++
	}
	if unit == 0 {
		return fmt.Sprintf("%.0f%s", size, sizeUnits[unit])
	}
	return fmt.Sprintf("%.1f%s", size, sizeUnits[unit])
}
