package particle

import (
	"math"

	"github.com/gonewx/confetti/pkg/utils"
)

const (
	// RotationSpeedMin 粒子翻滚一整圈的最短时长（毫秒）
	RotationSpeedMin = 200
	// RotationSpeedMax 粒子翻滚一整圈的最长时长（毫秒）
	RotationSpeedMax = 800
	// DurationChaosMs 下落时长的最大随机缩短量（毫秒）
	DurationChaosMs = 1000
	// CrazyParticlesFrequency 抖动粒子出现的概率
	CrazyParticlesFrequency = 0.1
	// CrazyParticleCraziness 抖动粒子水平曲线控制点的最大幅度
	CrazyParticleCraziness = 0.25
	// BezierMedian 贝塞尔曲线中点，保证垂直减速平滑
	BezierMedian = 0.5

	// 最大形状抖动（像素）
	widthJitterPx  = 4
	heightJitterPx = 2
)

// Generate derives one particle's trajectory parameters.
//
// Random draws happen in a fixed order (rotation speed, axis, duration chaos,
// craziness trial, circle decision, x curve, y curve, size jitter) so that a
// sequence source produces exact, assertable records.
func Generate(p Particle, cfg EffectConfig, rng utils.RandomSource) TrajectoryParams {
	var params TrajectoryParams

	params.RotationSpeedMs = RandomIntInclusive(RotationSpeedMin, RotationSpeedMax, rng)
	params.RotationAxisIndex = RandomIndex(len(utils.RotationTransforms), rng)
	params.FallDurationMs = cfg.Duration - math.Floor(rng.Float64()*DurationChaosMs)
	params.IsCrazy = rng.Float64() < CrazyParticlesFrequency
	params.IsCircle = utils.ShouldBeCircle(params.RotationAxisIndex, rng)

	// 水平方向：与正前方的偏离程度
	deviation := math.Abs(utils.Rotate(p.Degree, 90) - 180)

	var craziness float64
	if params.IsCrazy {
		craziness = utils.Round(RandomInRange(0, CrazyParticleCraziness, rng), 2)
	}
	params.XCurve = [4]float64{
		craziness,
		-craziness,
		craziness,
		utils.Round(math.Abs(utils.MapRange(deviation, 0, 180, -1, 1)), 4),
	}
	params.LandingOffsetPx = utils.MapRange(deviation, 0, 180, -cfg.Width/2, cfg.Width/2)

	// 垂直方向
	y1 := utils.Round(RandomInRange(0, BezierMedian, rng), 4)
	kick := RandomInRange(0, cfg.Force, rng)
	if !utils.CoinFlip(rng) {
		kick = -kick
	}
	lift := utils.MapRange(math.Abs(p.Degree-180), 0, 180, cfg.Force, -cfg.Force)
	params.YCurve = [4]float64{
		y1,
		utils.Round(kick, 4),
		BezierMedian,
		utils.Round(math.Max(lift, 0), 4),
	}

	if params.IsCircle {
		params.WidthPx = cfg.ParticleSize
		params.HeightPx = cfg.ParticleSize
	} else {
		params.WidthPx = math.Round(rng.Float64()*widthJitterPx) + cfg.ParticleSize/2
		params.HeightPx = math.Round(rng.Float64()*heightJitterPx) + cfg.ParticleSize
	}

	return params
}

// GenerateAll runs Generate for every particle, preserving input order.
func GenerateAll(particles []Particle, cfg EffectConfig, rng utils.RandomSource) []TrajectoryParams {
	result := make([]TrajectoryParams, len(particles))
	for i, p := range particles {
		result[i] = Generate(p, cfg, rng)
	}
	return result
}

// LandingOffset 只依赖角度和宽度的确定性水平落点
func LandingOffset(degree, width float64) float64 {
	return utils.MapRange(math.Abs(utils.Rotate(degree, 90)-180), 0, 180, -width/2, width/2)
}
