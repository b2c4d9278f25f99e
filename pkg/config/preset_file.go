package config

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed presets.yaml
var builtinPresetsYAML []byte

// DefaultPresetName 默认预设名称
const DefaultPresetName = "default"

// PresetFile 定义预设配置文件结构
type PresetFile struct {
	Version string            `yaml:"version"`
	Presets map[string]Preset `yaml:"presets"`
}

// ParsePresets 解析预设 YAML
func ParsePresets(data []byte) (*PresetFile, error) {
	file := &PresetFile{}
	if err := yaml.Unmarshal(data, file); err != nil {
		return nil, fmt.Errorf("failed to parse preset config: %w", err)
	}
	if len(file.Presets) == 0 {
		return nil, fmt.Errorf("%w: preset config defines no presets", ErrInvalidConfig)
	}
	return file, nil
}

// LoadPresetFile 从文件加载预设
func LoadPresetFile(path string) (*PresetFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read preset config %s: %w", path, err)
	}
	file, err := ParsePresets(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return file, nil
}

// BuiltinPresets 返回内置预设
func BuiltinPresets() *PresetFile {
	file, err := ParsePresets(builtinPresetsYAML)
	if err != nil {
		// 内置文件随代码一起发布，解析失败属于编程错误
		panic(fmt.Sprintf("config: builtin presets: %v", err))
	}
	return file
}

// Names 返回所有预设名称（已排序）
func (f *PresetFile) Names() []string {
	names := make([]string, 0, len(f.Presets))
	for name := range f.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get 查询预设，填充默认值并校验
func (f *PresetFile) Get(name string) (Preset, error) {
	preset, ok := f.Presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w: unknown preset %q", ErrInvalidConfig, name)
	}
	preset = preset.WithDefaults()
	if err := preset.Validate(); err != nil {
		return Preset{}, fmt.Errorf("preset %q: %w", name, err)
	}
	return preset, nil
}

// Resolve 加载 path 指定的文件（为空时使用内置预设）并返回 name 对应的预设
func Resolve(path, name string) (Preset, error) {
	file := BuiltinPresets()
	if path != "" {
		var err error
		if file, err = LoadPresetFile(path); err != nil {
			return Preset{}, err
		}
	}
	if name == "" {
		name = DefaultPresetName
	}
	return file.Get(name)
}
