package motion

import "github.com/chewxy/math32"

// Sum ...
func Sum(nums []float32) (result float32) {
	for _, v := range nums {
		result += v
	}
	return result
}

// Mean ...
func Mean(nums []float32) float32 {
	count := float32(len(nums))
	if count == 0 {
		return 0
	}
	return Sum(nums) / count
}

// Variance ...
func Variance(nums []float32) (variance float32) {
	count := float32(len(nums))
	if count == 0 {
		return 0.0
	}
	mean := Sum(nums) / count

	for _, number := range nums {
		variance += (number - mean) * (number - mean)
	}
	return variance / count
}

// StandardDeviation ...
func StandardDeviation(nums []float32) float32 {
	return math32.Sqrt(Variance(nums))
}
