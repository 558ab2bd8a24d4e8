package export

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/san-kum/selfassembly/internal/sim"
)

func toFloats(times []int) []float64 {
	out := make([]float64, len(times))
	for i, t := range times {
		out[i] = float64(t)
	}
	return out
}

func fractionAxes() (chart.XAxis, chart.YAxis) {
	return chart.XAxis{Name: "step"},
		chart.YAxis{Name: "assembled fraction", Range: &chart.ContinuousRange{Min: 0, Max: 1}}
}

// WriteFractionChart renders the assembled fraction of one run as a PNG.
func WriteFractionChart(w io.Writer, result *sim.Result) error {
	if len(result.Times) < 2 {
		return fmt.Errorf("need at least 2 samples to chart, got %d", len(result.Times))
	}

	xAxis, yAxis := fractionAxes()
	graph := chart.Chart{
		Title: fmt.Sprintf("Self-assembly (N=%d, seed=%d)", result.Params.N, result.Seed),
		XAxis: xAxis,
		YAxis: yAxis,
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "assembled",
				XValues: toFloats(result.Times),
				YValues: result.Fraction,
			},
		},
	}

	return graph.Render(chart.PNG, w)
}

// WriteEnsembleChart renders the mean fraction with a one-sigma band.
func WriteEnsembleChart(w io.Writer, sum sim.Summary) error {
	if len(sum.Times) < 2 {
		return fmt.Errorf("need at least 2 samples to chart, got %d", len(sum.Times))
	}

	xs := toFloats(sum.Times)
	upper := make([]float64, len(sum.Mean))
	lower := make([]float64, len(sum.Mean))
	for i := range sum.Mean {
		upper[i] = sum.Mean[i] + sum.StdDev[i]
		lower[i] = sum.Mean[i] - sum.StdDev[i]
	}

	xAxis, yAxis := fractionAxes()
	graph := chart.Chart{
		Title: "Self-assembly ensemble",
		XAxis: xAxis,
		YAxis: yAxis,
		Series: []chart.Series{
			chart.ContinuousSeries{Name: "mean", XValues: xs, YValues: sum.Mean},
			chart.ContinuousSeries{Name: "+1 sd", XValues: xs, YValues: upper},
			chart.ContinuousSeries{Name: "-1 sd", XValues: xs, YValues: lower},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	return graph.Render(chart.PNG, w)
}
