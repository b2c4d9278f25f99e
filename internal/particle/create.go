package particle

// CreateParticles spreads count particles evenly around the circle, cycling
// through colors. An empty color list yields particles with no color.
func CreateParticles(count int, colors []string) []Particle {
	if count <= 0 {
		return nil
	}
	increment := 360.0 / float64(count)
	particles := make([]Particle, count)
	for i := range particles {
		var color string
		if len(colors) > 0 {
			color = colors[i%len(colors)]
		}
		particles[i] = Particle{Color: color, Degree: increment * float64(i)}
	}
	return particles
}
