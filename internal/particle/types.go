// Package particle provides the data model and the trajectory generator for
// confetti explosion particles.
//
// A generation pass turns each Particle plus the shared EffectConfig into one
// TrajectoryParams record. Records are never patched: when the particle list or
// the config changes, the whole set is regenerated.
package particle

import "strconv"

// Particle is a single confetti piece.
// Its identity is its index in the input slice.
type Particle struct {
	Color  string  // CSS color of the piece, written verbatim into a declaration
	Degree float64 // launch direction in [0, 360), 0 being straight up
}

// Height 垂直下落距离
// 数值按像素处理；字符串原样输出（如 "120vh"、"-1000px"）
// 字符串高度与 Particle.Color 一样不做转义，含 ";{}" 的值会被样式生成拒绝
type Height struct {
	px    float64
	css   string
	isCSS bool
}

// PixelHeight 创建像素高度
func PixelHeight(px float64) Height {
	return Height{px: px}
}

// CSSHeight 创建 CSS 长度字符串高度
func CSSHeight(value string) Height {
	return Height{css: value, isCSS: true}
}

// CSS 返回可以直接写入 translateY() 的长度
func (h Height) CSS() string {
	if h.isCSS {
		return h.css
	}
	return strconv.FormatFloat(h.px, 'f', -1, 64) + "px"
}

// IsPixels 是否为数值高度
func (h Height) IsPixels() bool {
	return !h.isCSS
}

// Pixels 返回数值高度；字符串高度返回 0
func (h Height) Pixels() float64 {
	return h.px
}

func (h Height) String() string {
	return h.CSS()
}

// EffectConfig holds the physical parameters shared by every particle of one
// generation pass.
//
// Inputs are expected to be validated by the caller (see pkg/config.Validate).
// Negative width, force or particle size and non-finite durations produce
// undefined output; nothing here clamps them.
type EffectConfig struct {
	Duration     float64 // total fall time in milliseconds
	ParticleSize float64 // base particle edge length in pixels
	Force        float64 // launch strength, normally within [0, 1]
	Height       Height  // vertical travel distance
	Width        float64 // horizontal spread in pixels
}

// TrajectoryParams 单个粒子的运动参数
// 由一次生成过程完全确定，创建后不再修改
type TrajectoryParams struct {
	RotationSpeedMs   int        // 翻滚一整圈的时长 [200, 800]
	RotationAxisIndex int        // utils.RotationTransforms 的索引
	FallDurationMs    float64    // 下落时长 [duration-1000, duration]
	IsCircle          bool       // 是否画成圆形
	IsCrazy           bool       // 水平方向是否使用抖动曲线
	XCurve            [4]float64 // 水平缓动 cubic-bezier 控制点
	YCurve            [4]float64 // 垂直缓动 cubic-bezier 控制点
	LandingOffsetPx   float64    // 水平落点 [-width/2, width/2]
	WidthPx           float64    // 粒子宽度（含形状抖动）
	HeightPx          float64    // 粒子高度（含形状抖动）
}
