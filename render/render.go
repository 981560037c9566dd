package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/yousemazhar/crashboard/engine"
)

// ============================================================================
// RENDER — Chart configs to PNG files
// ============================================================================
// Optional export path used by the CLI. The JSON ChartConfig remains the
// primary contract; this package turns it into images for offline viewing.
// Pie charts render as bars (the plot library has no pie type) and maps
// render as coordinate scatters.
// ============================================================================

// ReportPNGs writes one PNG per chart of a report into dir, named by chart
// position and slugged title. Placeholder charts are skipped.
func ReportPNGs(report *engine.Report, dir string) error {
	if report == nil || report.NoData {
		return fmt.Errorf("no data to render")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create render dir: %w", err)
	}

	for i, chart := range report.Charts {
		if chart.Placeholder != "" {
			continue
		}
		name := fmt.Sprintf("%02d-%s.png", i, slug(chart.Title))
		if err := ChartPNG(chart, filepath.Join(dir, name)); err != nil {
			return fmt.Errorf("render %q: %w", chart.Title, err)
		}
	}
	return nil
}

// ChartPNG renders a single chart config to a PNG file.
func ChartPNG(cfg *engine.ChartConfig, path string) error {
	p := plot.New()
	p.Title.Text = cfg.Title
	p.X.Label.Text = cfg.XAxis
	p.Y.Label.Text = cfg.YAxis

	switch cfg.ChartType {
	case "line":
		if err := addLines(p, cfg); err != nil {
			return err
		}
	case "heatmap":
		if err := addHeatmap(p, cfg); err != nil {
			return err
		}
	case "map":
		if err := addScatter(p, cfg); err != nil {
			return err
		}
	default: // "bar", "pie"
		if err := addBars(p, cfg); err != nil {
			return err
		}
	}

	return p.Save(10*vg.Inch, 5*vg.Inch, path)
}

func addLines(p *plot.Plot, cfg *engine.ChartConfig) error {
	for _, s := range cfg.Series {
		xys := make(plotter.XYs, len(s.Data))
		for i, d := range s.Data {
			xys[i].X = float64(i)
			xys[i].Y = d.Value
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return err
		}
		p.Add(line)
		p.Legend.Add(s.Name, line)
	}
	if len(cfg.Series) > 0 {
		p.NominalX(labelsOf(cfg.Series[0])...)
	}
	return nil
}

func addBars(p *plot.Plot, cfg *engine.ChartConfig) error {
	width := vg.Points(18)
	offset := -width / 2 * vg.Length(len(cfg.Series)-1)

	for _, s := range cfg.Series {
		values := make(plotter.Values, len(s.Data))
		for i, d := range s.Data {
			values[i] = d.Value
		}
		bars, err := plotter.NewBarChart(values, width)
		if err != nil {
			return err
		}
		bars.Offset = offset
		offset += width
		p.Add(bars)
		p.Legend.Add(s.Name, bars)
	}
	if len(cfg.Series) > 0 {
		p.NominalX(labelsOf(cfg.Series[0])...)
	}
	p.Legend.Top = true
	return nil
}

func addScatter(p *plot.Plot, cfg *engine.ChartConfig) error {
	xys := make(plotter.XYs, len(cfg.Points))
	for i, pt := range cfg.Points {
		xys[i].X = pt.Lon
		xys[i].Y = pt.Lat
	}
	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return err
	}
	scatter.GlyphStyle.Radius = vg.Points(1)
	p.Add(scatter)
	p.X.Label.Text = "Longitude"
	p.Y.Label.Text = "Latitude"
	return nil
}

func addHeatmap(p *plot.Plot, cfg *engine.ChartConfig) error {
	if cfg.Heatmap == nil {
		return fmt.Errorf("heatmap chart without grid")
	}
	pal := moreland.SmoothBlueRed().Palette(255)
	hm := plotter.NewHeatMap(&dayHourGrid{g: cfg.Heatmap}, pal)
	p.Add(hm)
	return nil
}

// dayHourGrid adapts engine.HeatmapGrid to plotter.GridXYZ.
// Rows are reversed so Monday renders at the top.
type dayHourGrid struct {
	g *engine.HeatmapGrid
}

func (d *dayHourGrid) Dims() (int, int) { return len(d.g.Cols), len(d.g.Rows) }
func (d *dayHourGrid) X(c int) float64  { return float64(c) }
func (d *dayHourGrid) Y(r int) float64  { return float64(r) }
func (d *dayHourGrid) Z(c, r int) float64 {
	return d.g.Values[len(d.g.Rows)-1-r][c]
}

func labelsOf(s engine.ChartSeries) []string {
	labels := make([]string, len(s.Data))
	for i, d := range s.Data {
		labels[i] = d.Label
	}
	return labels
}

// slug turns a chart title into a file-name fragment.
func slug(title string) string {
	s := strings.ToLower(title)
	s = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return '-'
		}
	}, s)
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return strings.Trim(s, "-")
}
