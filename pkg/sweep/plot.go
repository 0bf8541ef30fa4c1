package sweep

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// WritePlot renders the series as a two-line chart of self and average
// mutual inductance versus the swept parameter. The output format follows
// the file extension (png, svg, pdf).
func (s *Series) WritePlot(path string) error {
	p := plot.New()
	p.Title.Text = "Line inductance sweep"
	p.X.Label.Text = fmt.Sprintf("%s (%s)", s.Param, s.Unit)
	p.Y.Label.Text = "inductance (mH/km)"
	p.Legend.Top = true

	self := make(plotter.XYs, len(s.Points))
	mutual := make(plotter.XYs, len(s.Points))
	for i, pt := range s.Points {
		self[i].X, self[i].Y = pt.Value, pt.SelfInductance
		mutual[i].X, mutual[i].Y = pt.Value, pt.MutualAverage
	}

	if err := plotutil.AddLines(p, "self", self, "avg mutual", mutual); err != nil {
		return fmt.Errorf("building sweep plot: %w", err)
	}
	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("writing sweep plot: %w", err)
	}
	return nil
}
