package export

import (
	"fmt"
	"strings"

	"github.com/programORdie2/verletlab/internal/verlet"
)

// SnapshotSVG renders a particle snapshot as SVG: the container rim
// and one filled circle per particle, in world coordinates.
func SnapshotSVG(ps []verlet.Particle, cfg verlet.Config) string {
	pad := cfg.ParticleRadius * 2
	side := 2 * (cfg.ContainerRadius + pad)
	// Shift world coordinates so the container sits centered in the view.
	offX := cfg.Center.X - cfg.ContainerRadius - pad
	offY := cfg.Center.Y - cfg.ContainerRadius - pad

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, side, side, side, side))

	sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="none" stroke="#555555" stroke-width="1.5"/>
`, cfg.Center.X-offX, cfg.Center.Y-offY, cfg.ContainerRadius))

	sb.WriteString("<g fill=\"#00ff00\">\n")
	for i := range ps {
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, ps[i].Pos.X-offX, ps[i].Pos.Y-offY, cfg.ParticleRadius))
	}
	sb.WriteString("</g>\n</svg>")

	return sb.String()
}

// SeriesSVG plots a recorded series as an SVG polyline, time on the
// x axis. Returns "" when there are fewer than two points.
func SeriesSVG(times, values []float64, width, height int, strokeColor string) string {
	n := len(times)
	if len(values) < n {
		n = len(values)
	}
	if n < 2 {
		return ""
	}

	minX, maxX := times[0], times[0]
	minY, maxY := values[0], values[0]
	for i := 0; i < n; i++ {
		if times[i] < minX {
			minX = times[i]
		}
		if times[i] > maxX {
			maxX = times[i]
		}
		if values[i] < minY {
			minY = values[i]
		}
		if values[i] > maxY {
			maxY = values[i]
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i := 0; i < n; i++ {
		x := (times[i] - minX) / rangeX * float64(width)
		y := float64(height) - (values[i]-minY)/rangeY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
