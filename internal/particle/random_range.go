package particle

import (
	"math"

	"github.com/gonewx/confetti/pkg/utils"
)

// RandomInRange returns a random float64 in the range [min, max).
// 总是消耗一次随机数，即使区间为空，保证抽取顺序稳定
func RandomInRange(min, max float64, rng utils.RandomSource) float64 {
	r := rng.Float64()
	if min >= max {
		return min
	}
	return min + r*(max-min)
}

// RandomIntInclusive 返回 [min, max] 区间内均匀分布的整数
func RandomIntInclusive(min, max int, rng utils.RandomSource) int {
	if min >= max {
		return min
	}
	n := min + int(math.Floor(rng.Float64()*float64(max-min+1)))
	// Float64 理论上小于 1，这里只防止自定义随机源越界
	if n > max {
		return max
	}
	return n
}

// RandomIndex 返回 [0, n) 区间内均匀分布的索引
func RandomIndex(n int, rng utils.RandomSource) int {
	return RandomIntInclusive(0, n-1, rng)
}
