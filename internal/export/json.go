package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/selfassembly/internal/assembly"
	"github.com/san-kum/selfassembly/internal/sim"
)

type ParamsData struct {
	Particles int     `json:"particles"`
	Width     float64 `json:"width"`
	Length    float64 `json:"length"`
	K0        float64 `json:"k0"`
	Alpha     float64 `json:"alpha"`
	Peak      float64 `json:"x_p"`
	Sigma     float64 `json:"sigma"`
	Velocity  float64 `json:"velocity"`
}

type ExportData struct {
	Params    ParamsData         `json:"params"`
	Seed      uint64             `json:"seed"`
	Streams   string             `json:"streams"`
	Steps     int                `json:"steps"`
	Times     []int              `json:"times"`
	Assembled []int              `json:"assembled"`
	Fraction  []float64          `json:"fraction"`
	Metrics   map[string]float64 `json:"metrics"`
	Final     assembly.Snapshot  `json:"final"`
}

func NewExportData(result *sim.Result) ExportData {
	p := result.Params
	return ExportData{
		Params: ParamsData{
			Particles: p.N,
			Width:     p.Width,
			Length:    p.Length,
			K0:        p.K0,
			Alpha:     p.Alpha,
			Peak:      p.XP,
			Sigma:     p.Sigma,
			Velocity:  p.VelocityMag,
		},
		Seed:      result.Seed,
		Streams:   result.Streams.String(),
		Steps:     result.StepsTaken,
		Times:     result.Times,
		Assembled: result.Assembled,
		Fraction:  result.Fraction,
		Metrics:   result.Metrics,
		Final:     result.Final,
	}
}

func WriteJSON(w io.Writer, result *sim.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewExportData(result))
}
