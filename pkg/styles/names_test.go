package styles

import "testing"

func TestNames(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"container", ContainerClass("3"), "confetti-explosion-container-3"},
		{"screen", ScreenClass("3"), "confetti-explosion-screen-3"},
		{"particle", ParticleClass("3"), "confetti-explosion-particle-3"},
		{"particle index", ParticleIndexClass("3", 12), "confetti-explosion-particle-3-12"},
		{"particle classes", ParticleClasses("3", 1), "confetti-explosion-particle-3 confetti-explosion-particle-3-1"},
		{"rotation", RotationKeyframesName("3", 6), "rotation-3-6"},
		{"y axis", YAxisKeyframesName("3"), "y-axis-3"},
		{"x axis", XAxisKeyframesName("3", 0), "x-axis-3-0"},
		{"style id", StyleID("3"), "confetti-style-3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("got %q, 期望 %q", tt.got, tt.expected)
			}
		})
	}
}
