package viz

import (
	"github.com/guptarohit/asciigraph"
)

// PlotFraction draws an assembled-fraction series as an ASCII line chart
// with the y axis pinned to [0,1].
func PlotFraction(fraction []float64, width, height int, caption string) string {
	if len(fraction) == 0 {
		return ""
	}
	data := fraction
	if len(data) == 1 {
		data = []float64{data[0], data[0]}
	}
	opts := []asciigraph.Option{
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(1),
		asciigraph.Precision(2),
	}
	if caption != "" {
		opts = append(opts, asciigraph.Caption(caption))
	}
	return asciigraph.Plot(data, opts...)
}
