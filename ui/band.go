package ui

// Band picks one of three severity colours for a reading against two
// thresholds. Comparisons are strict, so a value sitting exactly on a
// threshold belongs to the band below it.
func Band(value, low, high float64, normal, mid, hi string) string {
	switch {
	case value > high:
		return hi
	case value > low:
		return mid
	}
	return normal
}
