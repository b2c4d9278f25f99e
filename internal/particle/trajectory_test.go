package particle

import (
	"math"
	"math/rand"
	"testing"

	"github.com/gonewx/confetti/pkg/utils"
)

func testConfig() EffectConfig {
	return EffectConfig{
		Duration:     2200,
		ParticleSize: 10,
		Force:        0.5,
		Height:       CSSHeight("-1000px"),
		Width:        300,
	}
}

// TestGenerate_Deterministic 使用固定随机序列验证每个字段
func TestGenerate_Deterministic(t *testing.T) {
	src := utils.NewSequenceSource(
		0.5,  // rotation speed
		0.0,  // axis
		0.25, // duration chaos
		0.5,  // crazy trial
		0.2,  // circle coin
		0.5,  // y1
		0.4,  // kick magnitude
		0.9,  // kick direction
		0.5,  // width jitter
		0.5,  // height jitter
	)

	params := Generate(Particle{Color: "#f00", Degree: 90}, testConfig(), src)

	if params.RotationSpeedMs != 500 {
		t.Errorf("RotationSpeedMs = %d, 期望 500", params.RotationSpeedMs)
	}
	if params.RotationAxisIndex != 0 {
		t.Errorf("RotationAxisIndex = %d, 期望 0", params.RotationAxisIndex)
	}
	if params.FallDurationMs != 1950 {
		t.Errorf("FallDurationMs = %v, 期望 1950", params.FallDurationMs)
	}
	if params.IsCrazy || params.IsCircle {
		t.Errorf("IsCrazy=%v IsCircle=%v, 期望均为 false", params.IsCrazy, params.IsCircle)
	}
	if want := [4]float64{0, 0, 0, 1}; params.XCurve != want {
		t.Errorf("XCurve = %v, 期望 %v", params.XCurve, want)
	}
	if want := [4]float64{0.25, 0.2, 0.5, 0}; params.YCurve != want {
		t.Errorf("YCurve = %v, 期望 %v", params.YCurve, want)
	}
	if params.LandingOffsetPx != -150 {
		t.Errorf("LandingOffsetPx = %v, 期望 -150", params.LandingOffsetPx)
	}
	if params.WidthPx != 7 || params.HeightPx != 11 {
		t.Errorf("size = %vx%v, 期望 7x11", params.WidthPx, params.HeightPx)
	}
	if src.Draws() != 10 {
		t.Errorf("消费随机数 %d 次, 期望 10", src.Draws())
	}
}

// TestGenerate_CrazyCircle 抖动 + 圆形粒子
func TestGenerate_CrazyCircle(t *testing.T) {
	src := utils.NewSequenceSource(
		0.0,    // rotation speed
		0.9995, // axis
		0.9995, // duration chaos
		0.05,   // crazy trial
		0.8,    // circle coin
		0.6,    // craziness
		0.2,    // y1
		0.5,    // kick magnitude
		0.3,    // kick direction
	)

	params := Generate(Particle{Color: "#0f0", Degree: 180}, testConfig(), src)

	if params.RotationSpeedMs != RotationSpeedMin {
		t.Errorf("RotationSpeedMs = %d, 期望 %d", params.RotationSpeedMs, RotationSpeedMin)
	}
	if params.RotationAxisIndex != len(utils.RotationTransforms)-1 {
		t.Errorf("RotationAxisIndex = %d, 期望最后一个轴", params.RotationAxisIndex)
	}
	if params.FallDurationMs != 1201 {
		t.Errorf("FallDurationMs = %v, 期望 1201", params.FallDurationMs)
	}
	if !params.IsCrazy || !params.IsCircle {
		t.Fatalf("IsCrazy=%v IsCircle=%v, 期望均为 true", params.IsCrazy, params.IsCircle)
	}
	if want := [4]float64{0.15, -0.15, 0.15, 0}; params.XCurve != want {
		t.Errorf("XCurve = %v, 期望 %v", params.XCurve, want)
	}
	if want := [4]float64{0.1, -0.25, 0.5, 0.5}; params.YCurve != want {
		t.Errorf("YCurve = %v, 期望 %v", params.YCurve, want)
	}
	if params.LandingOffsetPx != 0 {
		t.Errorf("LandingOffsetPx = %v, 期望 0", params.LandingOffsetPx)
	}
	if params.WidthPx != 10 || params.HeightPx != 10 {
		t.Errorf("圆形粒子尺寸 = %vx%v, 期望 10x10", params.WidthPx, params.HeightPx)
	}
	if src.Draws() != 9 {
		t.Errorf("圆形粒子不应抽取尺寸抖动, 消费 %d 次, 期望 9", src.Draws())
	}
}

// TestGenerate_Bounds 随机角度、宽度、力度下的取值范围
func TestGenerate_Bounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 5000; i++ {
		cfg := EffectConfig{
			Duration:     1500 + rng.Float64()*3000,
			ParticleSize: 1 + rng.Float64()*20,
			Force:        rng.Float64(),
			Height:       PixelHeight(800),
			Width:        rng.Float64() * 2000,
		}
		p := Particle{Color: "#fff", Degree: rng.Float64() * 360}
		params := Generate(p, cfg, rng)

		half := cfg.Width / 2
		if params.LandingOffsetPx < -half-1e-9 || params.LandingOffsetPx > half+1e-9 {
			t.Fatalf("degree=%v width=%v: LandingOffsetPx=%v 超出 [%v, %v]", p.Degree, cfg.Width, params.LandingOffsetPx, -half, half)
		}
		if params.RotationSpeedMs < RotationSpeedMin || params.RotationSpeedMs > RotationSpeedMax {
			t.Fatalf("RotationSpeedMs=%d 超出范围", params.RotationSpeedMs)
		}
		if params.FallDurationMs < cfg.Duration-DurationChaosMs || params.FallDurationMs > cfg.Duration {
			t.Fatalf("FallDurationMs=%v 超出 [%v, %v]", params.FallDurationMs, cfg.Duration-DurationChaosMs, cfg.Duration)
		}
		if params.FallDurationMs <= 0 {
			t.Fatalf("FallDurationMs=%v 应该为正数", params.FallDurationMs)
		}
		if params.YCurve[3] < 0 {
			t.Fatalf("degree=%v force=%v: y4=%v 不应为负", p.Degree, cfg.Force, params.YCurve[3])
		}
		if params.XCurve[3] < 0 || params.XCurve[3] > 1 {
			t.Fatalf("x4=%v 超出 [0, 1]", params.XCurve[3])
		}
		if params.RotationAxisIndex < 0 || params.RotationAxisIndex >= len(utils.RotationTransforms) {
			t.Fatalf("RotationAxisIndex=%d 越界", params.RotationAxisIndex)
		}
		if params.XCurve[0] < 0 || params.XCurve[0] > CrazyParticleCraziness {
			t.Fatalf("x1=%v 超出 [0, %v]", params.XCurve[0], CrazyParticleCraziness)
		}
		if params.YCurve[0] < 0 || params.YCurve[0] > BezierMedian {
			t.Fatalf("y1=%v 超出 [0, %v]", params.YCurve[0], BezierMedian)
		}
		// 保留 4 位小数可能向上取整
		if math.Abs(params.YCurve[1]) > cfg.Force+0.00005+1e-12 {
			t.Fatalf("|y2|=%v 超过 force=%v", math.Abs(params.YCurve[1]), cfg.Force)
		}
	}
}

// TestLandingOffset_Scenario 向上发射的粒子落在正中间，与随机数无关
func TestLandingOffset_Scenario(t *testing.T) {
	want := utils.MapRange(math.Abs(utils.Rotate(0, 90)-180), 0, 180, -150, 150)
	if got := LandingOffset(0, 300); got != want {
		t.Errorf("LandingOffset(0, 300) = %v, 期望 %v", got, want)
	}

	for seed := int64(0); seed < 5; seed++ {
		params := Generate(Particle{Color: "#f00", Degree: 0}, testConfig(), utils.NewSeededRandom(seed))
		if params.LandingOffsetPx != want {
			t.Errorf("seed=%d: LandingOffsetPx = %v, 期望 %v", seed, params.LandingOffsetPx, want)
		}
	}
}

func TestGenerateAll(t *testing.T) {
	particles := CreateParticles(12, []string{"#f00"})
	params := GenerateAll(particles, testConfig(), utils.NewSeededRandom(1))
	if len(params) != len(particles) {
		t.Fatalf("len = %d, 期望 %d", len(params), len(particles))
	}
	for i, p := range particles {
		if params[i].LandingOffsetPx != LandingOffset(p.Degree, 300) {
			t.Errorf("第 %d 个粒子落点与输入顺序不一致", i)
		}
	}
	if GenerateAll(nil, testConfig(), utils.NewSeededRandom(1)) == nil {
		t.Error("空输入应该返回空切片而不是 nil")
	}
}

func TestRandomIntInclusive(t *testing.T) {
	tests := []struct {
		name     string
		r        float64
		expected int
	}{
		{"下界", 0, 200},
		{"上界", 0.99999, 800},
		{"越界随机源", 1.0, 800},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RandomIntInclusive(200, 800, utils.NewSequenceSource(tt.r))
			if got != tt.expected {
				t.Errorf("RandomIntInclusive = %d, 期望 %d", got, tt.expected)
			}
		})
	}
	if RandomIntInclusive(5, 5, utils.NewSequenceSource(0.7)) != 5 {
		t.Error("min == max 时应该返回 min")
	}
}

func TestRandomInRange(t *testing.T) {
	if got := RandomInRange(2, 4, utils.NewSequenceSource(0.5)); got != 3 {
		t.Errorf("RandomInRange = %v, 期望 3", got)
	}
	empty := utils.NewSequenceSource(0.5)
	if got := RandomInRange(4, 2, empty); got != 4 {
		t.Errorf("min >= max 时 RandomInRange = %v, 期望 4", got)
	}
	if empty.Draws() != 1 {
		t.Errorf("空区间消费随机数 %d 次, 期望 1", empty.Draws())
	}
}

// TestGenerate_ZeroForce 力度为 0 时抽取次数不变，纵向曲线退化为 0
func TestGenerate_ZeroForce(t *testing.T) {
	cfg := testConfig()
	cfg.Force = 0
	src := utils.NewSequenceSource(0.5, 0.0, 0.25, 0.5, 0.2, 0.5, 0.4, 0.9, 0.5, 0.5)

	params := Generate(Particle{Color: "#f00", Degree: 90}, cfg, src)

	if want := [4]float64{0.25, 0, 0.5, 0}; params.YCurve != want {
		t.Errorf("YCurve = %v, 期望 %v", params.YCurve, want)
	}
	if params.WidthPx != 7 || params.HeightPx != 11 {
		t.Errorf("size = %vx%v, 期望 7x11", params.WidthPx, params.HeightPx)
	}
	if src.Draws() != 10 {
		t.Errorf("消费随机数 %d 次, 期望 10", src.Draws())
	}
}
