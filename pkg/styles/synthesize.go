package styles

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gonewx/confetti/internal/particle"
	"github.com/gonewx/confetti/pkg/utils"
)

// Synthesize assembles the stylesheet of one instance.
//
// params[i] must be the trajectory of particles[i]. Only rotation axes that
// some particle actually uses get a keyframes rule.
func Synthesize(instanceID string, particles []particle.Particle, params []particle.TrajectoryParams, cfg particle.EffectConfig) (*Stylesheet, error) {
	if len(particles) != len(params) {
		return nil, fmt.Errorf("styles: %d particles but %d trajectory records", len(particles), len(params))
	}
	if !cfg.Height.IsPixels() {
		if err := CheckValue(cfg.Height.CSS()); err != nil {
			return nil, fmt.Errorf("styles: height: %w", err)
		}
	}
	for i, p := range particles {
		if err := CheckValue(p.Color); err != nil {
			return nil, fmt.Errorf("styles: particle %d color: %w", i, err)
		}
	}

	sheet := &Stylesheet{InstanceID: instanceID}

	for _, axis := range usedAxes(params) {
		sheet.Keyframes = append(sheet.Keyframes, rotationKeyframes(instanceID, axis))
	}

	sheet.Keyframes = append(sheet.Keyframes, Keyframes{
		Name: YAxisKeyframesName(instanceID),
		Frames: []Frame{{
			Selector:     "to",
			Declarations: []Declaration{{"transform", "translateY(" + cfg.Height.CSS() + ")"}},
		}},
	})

	for i, p := range params {
		sheet.Keyframes = append(sheet.Keyframes, Keyframes{
			Name: XAxisKeyframesName(instanceID, i),
			Frames: []Frame{{
				Selector:     "to",
				Declarations: []Declaration{{"transform", "translateX(" + px(p.LandingOffsetPx) + ")"}},
			}},
		})
	}

	sheet.Rules = append(sheet.Rules, baseRules(instanceID)...)

	for i := range particles {
		sheet.Rules = append(sheet.Rules, particleRules(instanceID, i, particles[i], params[i])...)
	}

	return sheet, nil
}

// usedAxes 返回被使用的旋转轴索引（升序、去重）
func usedAxes(params []particle.TrajectoryParams) []int {
	seen := make(map[int]bool)
	axes := make([]int, 0, len(utils.RotationTransforms))
	for _, p := range params {
		if !seen[p.RotationAxisIndex] {
			seen[p.RotationAxisIndex] = true
			axes = append(axes, p.RotationAxisIndex)
		}
	}
	sort.Ints(axes)
	return axes
}

// rotationKeyframes 半程转 180°（轴向量减半），终点转满 360°
func rotationKeyframes(instanceID string, axis int) Keyframes {
	xyz := utils.RotationTransforms[axis]
	half := make([]float64, len(xyz))
	for i, v := range xyz {
		half[i] = v / 2
	}
	return Keyframes{
		Name: RotationKeyframesName(instanceID, axis),
		Frames: []Frame{
			{
				Selector:     "50%",
				Declarations: []Declaration{{"transform", "rotate3d(" + joinAxis(half) + ", 180deg)"}},
			},
			{
				Selector:     "100%",
				Declarations: []Declaration{{"transform", "rotate3d(" + joinAxis(xyz[:]) + ", 360deg)"}},
			},
		},
	}
}

func joinAxis(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = FormatNumber(v)
	}
	return strings.Join(parts, ",")
}

// baseRules 固定结构规则，只随实例 ID 变化
func baseRules(instanceID string) []ClassRule {
	particleSel := "." + ParticleClass(instanceID) + " > div"
	return []ClassRule{
		{
			Selector: "." + ContainerClass(instanceID),
			Declarations: []Declaration{
				{"width", "0"},
				{"height", "0"},
				{"position", "relative"},
			},
		},
		{
			Selector: "." + ScreenClass(instanceID),
			Declarations: []Declaration{
				{"position", "fixed"},
				{"top", "0"},
				{"left", "0"},
				{"right", "0"},
				{"bottom", "0"},
				{"overflow", "hidden"},
				{"pointer-events", "none"},
			},
		},
		{
			Selector: particleSel,
			Declarations: []Declaration{
				{"position", "absolute"},
				{"left", "0"},
				{"top", "0"},
			},
		},
		{
			Selector: particleSel + ":after",
			Declarations: []Declaration{
				{"content", "''"},
				{"display", "block"},
				{"width", "100%"},
				{"height", "100%"},
			},
		},
	}
}

func particleRules(instanceID string, index int, p particle.Particle, params particle.TrajectoryParams) []ClassRule {
	sel := "." + ParticleIndexClass(instanceID, index)
	fall := ms(params.FallDurationMs)

	inner := []Declaration{
		{"background-color", p.Color},
		{"animation", fmt.Sprintf("%s %dms infinite linear", RotationKeyframesName(instanceID, params.RotationAxisIndex), params.RotationSpeedMs)},
	}
	if params.IsCircle {
		inner = append(inner, Declaration{"border-radius", "50%"})
	}

	return []ClassRule{
		{
			Selector: sel,
			Declarations: []Declaration{
				{"animation", XAxisKeyframesName(instanceID, index) + " " + fall + " forwards cubic-bezier(" + joinNumbers(params.XCurve[:]) + ")"},
			},
		},
		{
			Selector: sel + " > div",
			Declarations: []Declaration{
				{"width", px(params.WidthPx)},
				{"height", px(params.HeightPx)},
				{"animation", YAxisKeyframesName(instanceID) + " " + fall + " forwards cubic-bezier(" + joinNumbers(params.YCurve[:]) + ")"},
			},
		},
		{
			Selector:     sel + " > div:after",
			Declarations: inner,
		},
	}
}
