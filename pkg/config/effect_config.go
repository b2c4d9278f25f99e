package config

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/gonewx/confetti/internal/particle"
	"github.com/gonewx/confetti/pkg/styles"
)

// ErrInvalidConfig 配置校验失败
var ErrInvalidConfig = errors.New("invalid confetti config")

// 默认值（与网页组件的默认参数一致）
const (
	DefaultParticleCount = 100
	DefaultDuration      = 2200.0
	DefaultParticleSize  = 12.0
	DefaultForce         = 0.5
	DefaultHeight        = "120vh"
	DefaultWidth         = 1000.0

	// MaxRecommendedParticles 超过该数量时浏览器渲染开销明显
	MaxRecommendedParticles = 300
)

// DefaultColors 默认调色板
var DefaultColors = []string{"#FFC700", "#FF0000", "#2E3191", "#41BBC7"}

// HeightValue YAML 中的高度：数字按像素处理，字符串原样输出
type HeightValue struct {
	particle.Height
	set bool
}

// PixelHeightValue 创建像素高度
func PixelHeightValue(px float64) HeightValue {
	return HeightValue{Height: particle.PixelHeight(px), set: true}
}

// CSSHeightValue 创建 CSS 长度高度
func CSSHeightValue(css string) HeightValue {
	return HeightValue{Height: particle.CSSHeight(css), set: true}
}

// IsSet 配置中是否写了高度
func (h HeightValue) IsSet() bool {
	return h.set
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (h *HeightValue) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("height must be a number or a string, got %s at line %d", node.Tag, node.Line)
	}
	switch node.ShortTag() {
	case "!!int", "!!float":
		var px float64
		if err := node.Decode(&px); err != nil {
			return fmt.Errorf("failed to decode height at line %d: %w", node.Line, err)
		}
		*h = PixelHeightValue(px)
	default:
		*h = CSSHeightValue(node.Value)
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (h HeightValue) MarshalYAML() (interface{}, error) {
	if !h.set {
		return nil, nil
	}
	if h.IsPixels() {
		return h.Pixels(), nil
	}
	return h.CSS(), nil
}

// Preset 一组特效参数
type Preset struct {
	ParticleCount int         `yaml:"particle_count"` // 粒子数量
	Duration      float64     `yaml:"duration"`       // 下落时长（毫秒）
	ParticleSize  float64     `yaml:"particle_size"`  // 粒子尺寸（像素）
	Force         float64     `yaml:"force"`          // 发射力度 [0, 1]
	Height        HeightValue `yaml:"height"`         // 下落高度
	Width         float64     `yaml:"width"`          // 水平扩散宽度（像素）
	Colors        []string    `yaml:"colors"`         // 颜色列表（默认只接受十六进制）
	PaletteSize   int         `yaml:"palette_size"`   // 未指定颜色时随机生成的调色板大小

	// AllowNamedColors 允许 CSS 颜色名和 rgb()/hsl() 等函数写法，原样输出
	AllowNamedColors bool `yaml:"allow_named_colors"`
}

// DefaultPreset 返回默认参数
func DefaultPreset() Preset {
	colors := make([]string, len(DefaultColors))
	copy(colors, DefaultColors)
	return Preset{
		ParticleCount: DefaultParticleCount,
		Duration:      DefaultDuration,
		ParticleSize:  DefaultParticleSize,
		Force:         DefaultForce,
		Height:        CSSHeightValue(DefaultHeight),
		Width:         DefaultWidth,
		Colors:        colors,
	}
}

// WithDefaults 用默认值填充未设置（零值）的字段
//
// 注意：force 为 0 也会被替换为默认值
func (p Preset) WithDefaults() Preset {
	d := DefaultPreset()
	if p.ParticleCount == 0 {
		p.ParticleCount = d.ParticleCount
	}
	if p.Duration == 0 {
		p.Duration = d.Duration
	}
	if p.ParticleSize == 0 {
		p.ParticleSize = d.ParticleSize
	}
	if p.Force == 0 {
		p.Force = d.Force
	}
	if !p.Height.IsSet() {
		p.Height = d.Height
	}
	if p.Width == 0 {
		p.Width = d.Width
	}
	if len(p.Colors) == 0 {
		if p.PaletteSize > 0 {
			p.Colors = HappyPalette(p.PaletteSize)
		} else {
			p.Colors = d.Colors
		}
	}
	return p
}

// Validate 校验参数
//
// 核心生成逻辑不做任何防御性截断，所有输入必须在这里校验
func (p Preset) Validate() error {
	switch {
	case p.ParticleCount < 0:
		return fmt.Errorf("%w: particle_count must be a non-negative integer, got %d", ErrInvalidConfig, p.ParticleCount)
	case !isFinite(p.Duration) || p.Duration <= particle.DurationChaosMs:
		return fmt.Errorf("%w: duration must be greater than %d ms, got %v", ErrInvalidConfig, particle.DurationChaosMs, p.Duration)
	case !isFinite(p.ParticleSize) || p.ParticleSize <= 0:
		return fmt.Errorf("%w: particle_size must be positive, got %v", ErrInvalidConfig, p.ParticleSize)
	case !isFinite(p.Force) || p.Force < 0 || p.Force > 1:
		return fmt.Errorf("%w: force must be within [0, 1], got %v", ErrInvalidConfig, p.Force)
	case !isFinite(p.Width) || p.Width <= 0:
		return fmt.Errorf("%w: width must be positive, got %v", ErrInvalidConfig, p.Width)
	}

	if p.Height.IsSet() {
		if p.Height.IsPixels() {
			if !isFinite(p.Height.Pixels()) || p.Height.Pixels() < 0 {
				return fmt.Errorf("%w: numeric height must be non-negative, got %v", ErrInvalidConfig, p.Height.Pixels())
			}
		} else if strings.TrimSpace(p.Height.CSS()) == "" {
			return fmt.Errorf("%w: height must not be empty", ErrInvalidConfig)
		} else if err := styles.CheckValue(p.Height.CSS()); err != nil {
			return fmt.Errorf("%w: height: %v", ErrInvalidConfig, err)
		}
	}

	for i, c := range p.Colors {
		if _, err := p.normalizeColor(c); err != nil {
			return fmt.Errorf("%w: colors[%d]: %v", ErrInvalidConfig, i, err)
		}
	}
	return nil
}

// EffectConfig 转换为生成器参数
func (p Preset) EffectConfig() particle.EffectConfig {
	return particle.EffectConfig{
		Duration:     p.Duration,
		ParticleSize: p.ParticleSize,
		Force:        p.Force,
		Height:       p.Height.Height,
		Width:        p.Width,
	}
}

// Warnings 返回不影响生成、但值得提醒的问题
func (p Preset) Warnings() []string {
	var warnings []string
	if p.ParticleCount > MaxRecommendedParticles {
		warnings = append(warnings, fmt.Sprintf("particle_count %d exceeds the recommended maximum of %d", p.ParticleCount, MaxRecommendedParticles))
	}
	return warnings
}

// Particles 按数量和颜色生成粒子列表
// 十六进制颜色统一为小写 #rrggbb，允许的颜色名与函数写法原样保留
func (p Preset) Particles() ([]particle.Particle, error) {
	colors := make([]string, len(p.Colors))
	for i, c := range p.Colors {
		normalized, err := p.normalizeColor(c)
		if err != nil {
			return nil, fmt.Errorf("%w: colors[%d]: %v", ErrInvalidConfig, i, err)
		}
		colors[i] = normalized
	}
	return particle.CreateParticles(p.ParticleCount, colors), nil
}

// NormalizeColor 解析十六进制颜色（#rgb 或 #rrggbb），返回 #rrggbb
func NormalizeColor(s string) (string, error) {
	c, err := colorful.Hex(strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("invalid color %q: %w", s, err)
	}
	return c.Hex(), nil
}

func (p Preset) normalizeColor(s string) (string, error) {
	if p.AllowNamedColors {
		return NormalizeCSSColor(s)
	}
	return NormalizeColor(s)
}

var (
	namedColorPattern    = regexp.MustCompile(`^[a-zA-Z]+$`)
	functionColorPattern = regexp.MustCompile(`^(?i:rgba?|hsla?|hwb|lab|lch|oklab|oklch|color)\([^()]*\)$`)
)

// NormalizeCSSColor 接受十六进制、颜色名和颜色函数
// 十六进制按 NormalizeColor 规范化，其余写法只做语法检查后原样返回
func NormalizeCSSColor(s string) (string, error) {
	trimmed := strings.TrimSpace(s)
	if strings.HasPrefix(trimmed, "#") {
		return NormalizeColor(trimmed)
	}
	if !namedColorPattern.MatchString(trimmed) && !functionColorPattern.MatchString(trimmed) {
		return "", fmt.Errorf("invalid color %q: not a hex color, color name or color function", s)
	}
	if err := styles.CheckValue(trimmed); err != nil {
		return "", fmt.Errorf("invalid color %q: %w", s, err)
	}
	return trimmed, nil
}

// HappyPalette 生成 n 个饱和度较高的随机颜色
func HappyPalette(n int) []string {
	palette := colorful.FastHappyPalette(n)
	colors := make([]string, len(palette))
	for i, c := range palette {
		colors[i] = c.Hex()
	}
	return colors
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
