// Package render produces the HTML elements that the generated stylesheet
// targets. It only knows the selector handles exposed by an instance.
package render

import (
	"bytes"
	"fmt"
	"html/template"
)

// Handles 渲染层需要的选择器句柄，*confetti.Instance 满足该接口
type Handles interface {
	ID() string
	Container() string
	Screen() string
	Particle(index int) string
}

type particleView struct {
	Index int
	Class string
}

type markupView struct {
	Screen    string
	Container string
	Particles []particleView
}

var markupTemplate = template.Must(template.New("markup").Parse(
	`<div class="{{.Screen}}"><div class="{{.Container}}">` +
		`{{range .Particles}}<div id="confetti-particle-{{.Index}}" class="{{.Class}}"><div></div></div>{{end}}` +
		`</div></div>`))

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<link rel="stylesheet" href="{{.CSSHref}}">
<style>body { margin: 0; display: flex; justify-content: center; }</style>
</head>
<body>
{{.Markup}}
</body>
</html>
`))

// Markup 返回 count 个粒子的 HTML：遮罩层 > 容器 > 粒子
func Markup(h Handles, count int) (template.HTML, error) {
	view := markupView{
		Screen:    h.Screen(),
		Container: h.Container(),
		Particles: make([]particleView, count),
	}
	for i := range view.Particles {
		view.Particles[i] = particleView{Index: i, Class: h.Particle(i)}
	}

	var buf bytes.Buffer
	if err := markupTemplate.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("render markup for instance %s: %w", h.ID(), err)
	}
	return template.HTML(buf.String()), nil
}

// Page 返回引用 cssHref 样式表的完整页面
func Page(h Handles, count int, cssHref string) ([]byte, error) {
	markup, err := Markup(h, count)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	err = pageTemplate.Execute(&buf, struct {
		Title   string
		CSSHref string
		Markup  template.HTML
	}{
		Title:   "confetti " + h.ID(),
		CSSHref: cssHref,
		Markup:  markup,
	})
	if err != nil {
		return nil, fmt.Errorf("render page for instance %s: %w", h.ID(), err)
	}
	return buf.Bytes(), nil
}
