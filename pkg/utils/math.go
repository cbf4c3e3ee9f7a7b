package utils

// Min returns the minimum of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Min3 returns the minimum of three integers.
func Min3(a, b, c int) int {
	result := a
	if b < result {
		result = b
	}
	if c < result {
		result = c
	}
	return result
}

// MaxFloat returns the maximum of two floats.
func MaxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
