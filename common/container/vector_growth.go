package container

import "math"

// nextCapacity 容量耗尽时的新容量 按 2 倍扩容
func nextCapacity(capacity int) int {
	if capacity > math.MaxInt/2 {
		return math.MaxInt
	}
	return max(1, capacity*2)
}
