package util

// CalculateAverage returns the arithmetic mean of values, or 0 when there are none.
func CalculateAverage(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum int
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}
