package utils

import "math/rand"

// RandomSource 有界随机数来源
// *rand.Rand 直接满足该接口；测试中可替换为固定序列
type RandomSource interface {
	// Float64 返回 [0, 1) 区间内的随机数
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// DefaultRandom 返回基于全局随机数生成器的 RandomSource
func DefaultRandom() RandomSource {
	return globalSource{}
}

// NewSeededRandom 返回可复现的 RandomSource
func NewSeededRandom(seed int64) RandomSource {
	return rand.New(rand.NewSource(seed))
}

// SequenceSource 按顺序循环返回预设值的 RandomSource，用于测试
type SequenceSource struct {
	Values []float64
	pos    int
}

// NewSequenceSource 创建固定序列随机源
func NewSequenceSource(values ...float64) *SequenceSource {
	return &SequenceSource{Values: values}
}

// Float64 返回下一个预设值；序列为空时返回 0
func (s *SequenceSource) Float64() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.pos%len(s.Values)]
	s.pos++
	return v
}

// Draws 返回已经消费的次数
func (s *SequenceSource) Draws() int {
	return s.pos
}
