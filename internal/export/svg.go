package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/selfassembly/internal/assembly"
)

const (
	UnassembledColor = "#ff4444"
	AssembledColor   = "#4488ff"
)

// SnapshotSVG draws the channel and every particle, scale pixels per unit
// length. The y axis points up.
func SnapshotSVG(snap assembly.Snapshot, b assembly.Bounds, scale float64) string {
	width := b.Length * scale
	height := b.Width * scale
	pad := 10.0
	r := scale * 0.03
	if r < 1.5 {
		r = 1.5
	}

	var sb strings.Builder

	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="#666688"/>
`, width+2*pad, height+2*pad, width+2*pad, height+2*pad, pad, pad, width, height)

	_, assembled := snap.Counts()
	fmt.Fprintf(&sb, "<title>t=%d assembled=%d/%d</title>\n", snap.Time, assembled, len(snap.Particles))

	for _, state := range []assembly.State{assembly.Unassembled, assembly.Assembled} {
		color := UnassembledColor
		if state == assembly.Assembled {
			color = AssembledColor
		}
		fmt.Fprintf(&sb, "<g class=\"%s\" fill=\"%s\">\n", state, color)
		xs, ys := snap.Positions(state)
		for i := range xs {
			cx := pad + xs[i]*scale
			cy := pad + height - ys[i]*scale
			fmt.Fprintf(&sb, "<circle cx=\"%.2f\" cy=\"%.2f\" r=\"%.1f\"/>\n", cx, cy, r)
		}
		sb.WriteString("</g>\n")
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

// FractionSVG draws the assembled fraction against time as a single path.
// It returns "" with fewer than two points.
func FractionSVG(times []int, fraction []float64, width, height int, strokeColor string) string {
	if len(times) < 2 || len(fraction) < len(times) {
		return ""
	}

	minT, maxT := float64(times[0]), float64(times[len(times)-1])
	rangeT := maxT - minT
	if rangeT == 0 {
		rangeT = 1
	}

	var sb strings.Builder

	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor)

	for i, t := range times {
		x := (float64(t) - minT) / rangeT * float64(width)
		y := float64(height) - fraction[i]*float64(height)

		if i == 0 {
			fmt.Fprintf(&sb, "%.1f,%.1f", x, y)
		} else {
			fmt.Fprintf(&sb, " L%.1f,%.1f", x, y)
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
