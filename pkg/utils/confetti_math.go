package utils

import "math"

// 数学工具函数（五彩纸屑特效）
//
// 所有函数均为纯函数；随机性只通过 RandomSource 注入。

// RotationTransforms 粒子翻滚使用的 3D 旋转轴表
// 索引即 TrajectoryParams.RotationAxisIndex，顺序不可调整
var RotationTransforms = [][3]float64{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
	{1, 1, 0},
	{1, 0, 1},
	{0, 1, 1},
	{1, 1, 1},
}

// flatSpinAxis 绕 z 轴旋转的纸屑始终正对屏幕，不适合画成圆形
var flatSpinAxis = [3]float64{0, 0, 1}

// MustValidateRotationTransforms 校验旋转轴表非空
// 空表属于编程错误，直接 panic
func MustValidateRotationTransforms() {
	if len(RotationTransforms) == 0 {
		panic("utils: RotationTransforms must not be empty")
	}
}

// Lerp 线性插值
// 在 a 和 b 之间根据 t 插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// MapRange 将 value 从 [inMin, inMax] 线性映射到 [outMin, outMax]
// 不做截断，需要时由调用者自行 clamp
func MapRange(value, inMin, inMax, outMin, outMax float64) float64 {
	return Lerp(outMin, outMax, (value-inMin)/(inMax-inMin))
}

// Rotate 角度相加，结果超过 360 时回绕一圈
func Rotate(degree, amount float64) float64 {
	result := degree + amount
	if result > 360 {
		return result - 360
	}
	return result
}

// CoinFlip 50/50 随机布尔值
func CoinFlip(rng RandomSource) bool {
	return rng.Float64() > 0.5
}

// ShouldBeCircle 判断使用某个旋转轴的粒子是否画成圆形
//
// 规则：
//   - z 轴（平面自旋）永远是矩形
//   - 其他轴掷硬币决定
func ShouldBeCircle(rotationIndex int, rng RandomSource) bool {
	if RotationTransforms[rotationIndex] == flatSpinAxis {
		return false
	}
	return CoinFlip(rng)
}

// Round 四舍五入到 places 位小数（远离零方向）
func Round(value float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(value*factor) / factor
}
