// Package confetti manages the lifetime of confetti explosion instances.
//
// An Instance owns at most one stylesheet in a style registry. The host UI
// layer calls OnConfigChanged after every mount or input change and Dispose
// before unmount; the instance regenerates, replaces and removes its
// stylesheet accordingly.
//
// An Instance is not safe for concurrent use. Separate instances may be used
// from separate goroutines because they never share a registry key.
package confetti

import (
	"fmt"
	"strconv"
	"sync/atomic"

	"github.com/hashicorp/go-hclog"

	"github.com/gonewx/confetti/internal/particle"
	"github.com/gonewx/confetti/pkg/logging"
	"github.com/gonewx/confetti/pkg/registry"
	"github.com/gonewx/confetti/pkg/styles"
	"github.com/gonewx/confetti/pkg/utils"
)

// instanceCounter 进程级实例计数器，从 0 开始，只增不减
var instanceCounter atomic.Uint64

func init() {
	utils.MustValidateRotationTransforms()
}

// nextInstanceID 分配新的实例 ID
func nextInstanceID() string {
	return strconv.FormatUint(instanceCounter.Add(1)-1, 10)
}

// Instance 一次五彩纸屑特效
type Instance struct {
	id       string
	registry *registry.StyleRegistry
	rng      utils.RandomSource
	logger   hclog.Logger

	installedKey string
	params       []particle.TrajectoryParams
	sheet        *styles.Stylesheet
}

// Option 配置 Instance
type Option func(*Instance)

// WithRegistry 使用指定的注册表（默认 registry.Default()）
func WithRegistry(r *registry.StyleRegistry) Option {
	return func(i *Instance) {
		i.registry = r
	}
}

// WithRandom 注入随机源（默认 utils.DefaultRandom()）
func WithRandom(rng utils.RandomSource) Option {
	return func(i *Instance) {
		i.rng = rng
	}
}

// WithLogger 注入日志（默认不输出）
func WithLogger(logger hclog.Logger) Option {
	return func(i *Instance) {
		i.logger = logger
	}
}

// NewInstance allocates a new instance id. Nothing is installed until the
// first OnConfigChanged call.
func NewInstance(opts ...Option) *Instance {
	inst := &Instance{
		id:       nextInstanceID(),
		registry: registry.Default(),
		rng:      utils.DefaultRandom(),
		logger:   hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(inst)
	}
	inst.logger = logging.ForInstance(inst.logger, inst.id)
	return inst
}

// OnConfigChanged regenerates every particle trajectory and replaces the
// instance's stylesheet. Unchanged input is still fully regenerated.
func (inst *Instance) OnConfigChanged(particles []Particle, cfg EffectConfig) error {
	params := particle.GenerateAll(particles, cfg, inst.rng)

	sheet, err := styles.Synthesize(inst.id, particles, params, cfg)
	if err != nil {
		return fmt.Errorf("synthesize stylesheet for instance %s: %w", inst.id, err)
	}

	css := sheet.String()
	if err := styles.Lint(css); err != nil {
		inst.logger.Warn("generated stylesheet failed lint", "error", err)
	}

	key := styles.StyleID(inst.id)
	if inst.installedKey != "" && inst.installedKey != key {
		inst.registry.Remove(inst.installedKey)
	}
	// 同一个键直接替换，注册表中不会同时存在两份
	inst.registry.Install(key, css)
	inst.installedKey = key
	inst.params = params
	inst.sheet = sheet

	inst.logger.Debug("installed stylesheet", "key", key, "particles", len(particles), "bytes", len(css))
	return nil
}

// Dispose removes this instance's stylesheet. Calling it more than once is safe.
func (inst *Instance) Dispose() {
	if inst.installedKey == "" {
		return
	}
	inst.registry.Remove(inst.installedKey)
	inst.logger.Debug("removed stylesheet", "key", inst.installedKey)
	inst.installedKey = ""
	inst.params = nil
	inst.sheet = nil
}

// ID 实例 ID
func (inst *Instance) ID() string {
	return inst.id
}

// StyleID 样式表在注册表中的键
func (inst *Instance) StyleID() string {
	return styles.StyleID(inst.id)
}

// Installed 当前是否有样式表安装在注册表中
func (inst *Instance) Installed() bool {
	return inst.installedKey != ""
}

// Container 容器类名
func (inst *Instance) Container() string {
	return styles.ContainerClass(inst.id)
}

// Screen 全屏遮罩层类名
func (inst *Instance) Screen() string {
	return styles.ScreenClass(inst.id)
}

// Particle 第 index 个粒子元素需要的类名
func (inst *Instance) Particle(index int) string {
	return styles.ParticleClasses(inst.id, index)
}

// Params 返回最近一次生成的参数副本；未安装时返回 nil
func (inst *Instance) Params() []TrajectoryParams {
	if inst.params == nil {
		return nil
	}
	out := make([]particle.TrajectoryParams, len(inst.params))
	copy(out, inst.params)
	return out
}

// Stylesheet 最近一次生成的结构化样式表的副本；未安装时返回 nil
func (inst *Instance) Stylesheet() *styles.Stylesheet {
	return inst.sheet.Clone()
}
