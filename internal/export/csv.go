package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/san-kum/selfassembly/internal/assembly"
	"github.com/san-kum/selfassembly/internal/sim"
)

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// WriteTimelineCSV writes one row per recorded step.
func WriteTimelineCSV(w io.Writer, result *sim.Result) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"step", "assembled", "unassembled", "fraction"}); err != nil {
		return err
	}

	for i, t := range result.Times {
		assembled := result.Assembled[i]
		row := []string{
			strconv.Itoa(t),
			strconv.Itoa(assembled),
			strconv.Itoa(result.Params.N - assembled),
			formatFloat(result.Fraction[i]),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteSnapshotCSV writes one row per particle. transformed_at is empty for
// unassembled particles.
func WriteSnapshotCSV(w io.Writer, snap assembly.Snapshot) error {
	cw := csv.NewWriter(w)

	header := []string{"time", "id", "x", "y", "vx", "vy", "state", "transformed_at"}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, p := range snap.Particles {
		at := ""
		if t, ok := p.TransformationTime(); ok {
			at = strconv.Itoa(t)
		}
		row := []string{
			strconv.Itoa(snap.Time),
			strconv.Itoa(p.ID),
			formatFloat(p.X),
			formatFloat(p.Y),
			formatFloat(p.VX),
			formatFloat(p.VY),
			p.State.String(),
			at,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteSummaryCSV writes the ensemble mean and standard deviation per step.
func WriteSummaryCSV(w io.Writer, sum sim.Summary) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"step", "mean_fraction", "std_fraction"}); err != nil {
		return err
	}

	for i, t := range sum.Times {
		row := []string{strconv.Itoa(t), formatFloat(sum.Mean[i]), formatFloat(sum.StdDev[i])}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
