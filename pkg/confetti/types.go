package confetti

import "github.com/gonewx/confetti/internal/particle"

// 对外暴露的数据类型（定义在 internal/particle）
type (
	Particle         = particle.Particle
	EffectConfig     = particle.EffectConfig
	Height           = particle.Height
	TrajectoryParams = particle.TrajectoryParams
)

// PixelHeight 创建像素高度
func PixelHeight(px float64) Height {
	return particle.PixelHeight(px)
}

// CSSHeight 创建 CSS 长度字符串高度（如 "120vh"）
func CSSHeight(value string) Height {
	return particle.CSSHeight(value)
}

// CreateParticles 按数量均匀分布角度，循环使用颜色
func CreateParticles(count int, colors []string) []Particle {
	return particle.CreateParticles(count, colors)
}
