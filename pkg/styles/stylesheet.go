// Package styles builds the animation stylesheet of one confetti instance.
//
// Synthesis produces a structured Stylesheet (keyframe rules and class rules)
// that is serialized once with String. Tests can inspect the structure without
// depending on the exact text layout.
package styles

import (
	"strconv"
	"strings"
)

// Declaration is a single "property: value" pair.
type Declaration struct {
	Property string
	Value    string
}

// Frame is one step of a keyframes rule, e.g. "50%" or "to".
type Frame struct {
	Selector     string
	Declarations []Declaration
}

// Keyframes is a named @keyframes rule.
type Keyframes struct {
	Name   string
	Frames []Frame
}

// ClassRule is a plain style rule.
type ClassRule struct {
	Selector     string
	Declarations []Declaration
}

// Stylesheet 一个实例的完整样式表
type Stylesheet struct {
	InstanceID string
	Keyframes  []Keyframes
	Rules      []ClassRule
}

// Clone 深拷贝，修改副本不影响原样式表
func (s *Stylesheet) Clone() *Stylesheet {
	if s == nil {
		return nil
	}
	c := &Stylesheet{InstanceID: s.InstanceID}
	if s.Keyframes != nil {
		c.Keyframes = make([]Keyframes, len(s.Keyframes))
		for i, kf := range s.Keyframes {
			frames := make([]Frame, len(kf.Frames))
			for j, f := range kf.Frames {
				frames[j] = Frame{Selector: f.Selector, Declarations: cloneDeclarations(f.Declarations)}
			}
			c.Keyframes[i] = Keyframes{Name: kf.Name, Frames: frames}
		}
	}
	if s.Rules != nil {
		c.Rules = make([]ClassRule, len(s.Rules))
		for i, r := range s.Rules {
			c.Rules[i] = ClassRule{Selector: r.Selector, Declarations: cloneDeclarations(r.Declarations)}
		}
	}
	return c
}

func cloneDeclarations(decls []Declaration) []Declaration {
	if decls == nil {
		return nil
	}
	out := make([]Declaration, len(decls))
	copy(out, decls)
	return out
}

// KeyframeNames 返回所有关键帧名，保持生成顺序
func (s *Stylesheet) KeyframeNames() []string {
	names := make([]string, len(s.Keyframes))
	for i, kf := range s.Keyframes {
		names[i] = kf.Name
	}
	return names
}

// Selectors 返回所有规则选择器，保持生成顺序
func (s *Stylesheet) Selectors() []string {
	selectors := make([]string, len(s.Rules))
	for i, r := range s.Rules {
		selectors[i] = r.Selector
	}
	return selectors
}

// Rule 按选择器查找规则
func (s *Stylesheet) Rule(selector string) (ClassRule, bool) {
	for _, r := range s.Rules {
		if r.Selector == selector {
			return r, true
		}
	}
	return ClassRule{}, false
}

// KeyframesByName 按名称查找关键帧
func (s *Stylesheet) KeyframesByName(name string) (Keyframes, bool) {
	for _, kf := range s.Keyframes {
		if kf.Name == name {
			return kf, true
		}
	}
	return Keyframes{}, false
}

// Value 返回规则中某个属性的值
func (r ClassRule) Value(property string) (string, bool) {
	for _, d := range r.Declarations {
		if d.Property == property {
			return d.Value, true
		}
	}
	return "", false
}

// String serializes the stylesheet: keyframes first, then class rules.
func (s *Stylesheet) String() string {
	var b strings.Builder
	for _, kf := range s.Keyframes {
		b.WriteString("@keyframes ")
		b.WriteString(kf.Name)
		b.WriteString(" {\n")
		for _, f := range kf.Frames {
			writeBlock(&b, "  ", f.Selector, f.Declarations)
		}
		b.WriteString("}\n")
	}
	for _, r := range s.Rules {
		writeBlock(&b, "", r.Selector, r.Declarations)
	}
	return b.String()
}

func writeBlock(b *strings.Builder, indent, selector string, decls []Declaration) {
	b.WriteString(indent)
	b.WriteString(selector)
	b.WriteString(" {\n")
	for _, d := range decls {
		b.WriteString(indent)
		b.WriteString("  ")
		b.WriteString(d.Property)
		b.WriteString(": ")
		b.WriteString(d.Value)
		b.WriteString(";\n")
	}
	b.WriteString(indent)
	b.WriteString("}\n")
}

// FormatNumber 输出最短的十进制表示，-0 输出为 0
func FormatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func px(v float64) string {
	return FormatNumber(v) + "px"
}

func ms(v float64) string {
	return FormatNumber(v) + "ms"
}

func joinNumbers(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = FormatNumber(v)
	}
	return strings.Join(parts, ", ")
}
