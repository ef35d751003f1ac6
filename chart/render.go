// Copyright 2026 The Aether Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"

	"github.com/aetherchess/analysis/benchtab"
	"github.com/aetherchess/analysis/internal/display"
	"github.com/aetherchess/analysis/tourney"
)

// Tournament renders the tournament chart set into dir: score
// percentages, win/draw/loss comparison, the head-to-head heatmap,
// and average game lengths. Each chart is written as PNG and PDF.
func Tournament(s *tourney.Stats, dir string) error {
	if err := scorePercentage(s, dir); err != nil {
		return err
	}
	if err := wdlComparison(s, dir); err != nil {
		return err
	}
	if err := resultShares(s, dir); err != nil {
		return err
	}
	if err := headToHeatmap(s, dir); err != nil {
		return err
	}
	return gameLength(s, dir)
}

// Bench renders the benchmark chart set into dir: per-metric
// comparisons, and, when the dataset carries the columns, depth
// versus time limit and the per-phase comparison. A dataset missing
// one of the core metric columns fails; missing optional grouping
// columns only skip their charts.
func Bench(d *benchtab.Dataset, dir string) error {
	metrics := []struct {
		col, title, name string
	}{
		{"nps", "Mean nodes per second", "nps_comparison"},
		{"depth", "Mean search depth", "depth_comparison"},
		{"ttfm_ms", "Mean time to first move (ms)", "ttfm_comparison"},
		{"nodes", "Mean nodes searched", "nodes_comparison"},
	}
	for _, m := range metrics {
		series, err := MetricMeans(d, m.col)
		if err != nil {
			return err
		}
		if err := metricChart(series, m.title, dir, m.name); err != nil {
			return err
		}
	}

	if err := npsBoxplot(d, dir); err != nil {
		return err
	}
	if err := depthVsTime(d, dir); err != nil {
		return err
	}
	return phaseComparison(d, dir)
}

func scorePercentage(s *tourney.Stats, dir string) error {
	series := reverse(ScorePercents(s))
	p := plot.New()
	p.Title.Text = "Tournament score percentage"
	p.X.Label.Text = "Score %"
	p.X.Min, p.X.Max = 0, 100
	if err := addBarh(p, series); err != nil {
		return err
	}
	// 50% reference line.
	half := plotter.XYs{{X: 50, Y: -0.5}, {X: 50, Y: float64(len(series.Labels)) - 0.5}}
	ref, err := plotter.NewLine(half)
	if err != nil {
		return err
	}
	ref.LineStyle.Color = color.Gray{Y: 0x80}
	ref.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
	p.Add(ref)
	return save(p, dir, "score_percentage", 18*vg.Centimeter, 12*vg.Centimeter)
}

func wdlComparison(s *tourney.Stats, dir string) error {
	labels, wins, draws, losses := WDL(s)
	p := plot.New()
	p.Title.Text = "Tournament results by algorithm"
	p.Y.Label.Text = "Games"

	w := vg.Points(12)
	groups := []struct {
		name   string
		vals   []float64
		offset vg.Length
		color  color.RGBA
	}{
		{"Wins", wins, -w, display.WinColor},
		{"Draws", draws, 0, display.DrawColor},
		{"Losses", losses, w, display.LossColor},
	}
	for _, g := range groups {
		b, err := plotter.NewBarChart(plotter.Values(g.vals), w)
		if err != nil {
			return err
		}
		b.Offset = g.offset
		b.Color = g.color
		b.LineStyle.Width = 0
		p.Add(b)
		p.Legend.Add(g.name, b)
	}
	p.Legend.Top = true
	p.NominalX(labels...)
	return save(p, dir, "algorithm_comparison", 20*vg.Centimeter, 12*vg.Centimeter)
}

// resultShares draws each player's win/draw/loss split as one stacked
// 100% bar.
func resultShares(s *tourney.Stats, dir string) error {
	labels, wins, draws, losses := WDLShares(s)
	p := plot.New()
	p.Title.Text = "Result shares by algorithm"
	p.Y.Label.Text = "Share of games (%)"
	p.Y.Min, p.Y.Max = 0, 100

	w := vg.Points(24)
	wb, err := plotter.NewBarChart(plotter.Values(wins), w)
	if err != nil {
		return err
	}
	db, err := plotter.NewBarChart(plotter.Values(draws), w)
	if err != nil {
		return err
	}
	lb, err := plotter.NewBarChart(plotter.Values(losses), w)
	if err != nil {
		return err
	}
	wb.Color, db.Color, lb.Color = display.WinColor, display.DrawColor, display.LossColor
	wb.LineStyle.Width, db.LineStyle.Width, lb.LineStyle.Width = 0, 0, 0
	db.StackOn(wb)
	lb.StackOn(db)
	p.Add(wb, db, lb)
	p.Legend.Add("Wins", wb)
	p.Legend.Add("Draws", db)
	p.Legend.Add("Losses", lb)
	p.Legend.Top = true
	p.NominalX(labels...)
	return save(p, dir, "result_shares", 20*vg.Centimeter, 12*vg.Centimeter)
}

func headToHeatmap(s *tourney.Stats, dir string) error {
	g := HeadToHead(s)
	p := plot.New()
	p.Title.Text = "Head-to-head score percentage (row vs column)"
	h := plotter.NewHeatMap(g, palette.Heat(12, 1))
	h.Min, h.Max = 0, 100
	p.Add(h)
	p.NominalX(g.Labels...)
	p.NominalY(g.YLabels()...)
	p.X.Tick.Label.Rotation = -0.4
	p.X.Tick.Label.YAlign = draw.YTop
	p.X.Tick.Label.XAlign = draw.XLeft
	return save(p, dir, "head_to_head_heatmap", 18*vg.Centimeter, 15*vg.Centimeter)
}

func gameLength(s *tourney.Stats, dir string) error {
	series := reverse(AvgGameLengths(s))
	if len(series.Labels) == 0 {
		return nil
	}
	p := plot.New()
	p.Title.Text = "Average game length"
	p.X.Label.Text = "Plies"
	if err := addBarh(p, series); err != nil {
		return err
	}
	return save(p, dir, "game_length", 18*vg.Centimeter, 12*vg.Centimeter)
}

// metricChart renders one per-algorithm metric comparison as a
// horizontal bar chart, best value at the top.
func metricChart(s Series, title, dir, name string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Mean"
	if err := addBarh(p, s); err != nil {
		return err
	}
	return save(p, dir, name, 18*vg.Centimeter, 12*vg.Centimeter)
}

// npsBoxplot draws the per-algorithm NPS distribution as box plots,
// one box per algorithm.
func npsBoxplot(d *benchtab.Dataset, dir string) error {
	labels, values, err := MetricDistributions(d, "nps")
	if err != nil {
		return err
	}
	p := plot.New()
	p.Title.Text = "NPS distribution by algorithm"
	p.Y.Label.Text = "Nodes per second"
	w := vg.Points(24)
	for i, vals := range values {
		b, err := plotter.NewBoxPlot(w, float64(i), plotter.Values(vals))
		if err != nil {
			return err
		}
		p.Add(b)
	}
	p.NominalX(labels...)
	return save(p, dir, "nps_distribution", 18*vg.Centimeter, 12*vg.Centimeter)
}

func depthVsTime(d *benchtab.Dataset, dir string) error {
	lines, err := DepthVsTime(d)
	if err != nil {
		var missing *benchtab.MissingColumnError
		if errors.As(err, &missing) {
			return nil
		}
		return err
	}
	p := plot.New()
	p.Title.Text = "Search depth by time limit"
	p.X.Label.Text = "Time limit (ms)"
	p.Y.Label.Text = "Mean depth"
	for _, line := range lines {
		xys := make(plotter.XYs, len(line.Points))
		for i, pt := range line.Points {
			xys[i].X, xys[i].Y = pt.X, pt.Y
		}
		l, sc, err := plotter.NewLinePoints(xys)
		if err != nil {
			return err
		}
		l.LineStyle.Color = line.Color
		l.LineStyle.Width = vg.Points(1.5)
		sc.GlyphStyle.Color = line.Color
		sc.GlyphStyle.Radius = vg.Points(3)
		p.Add(l, sc)
		p.Legend.Add(line.Label, l)
	}
	p.Legend.Top = true
	p.Legend.Left = true
	return save(p, dir, "depth_vs_time", 18*vg.Centimeter, 12*vg.Centimeter)
}

func phaseComparison(d *benchtab.Dataset, dir string) error {
	phases, algos, values, err := PhaseMeans(d, "nps")
	if err != nil {
		var missing *benchtab.MissingColumnError
		if errors.As(err, &missing) {
			return nil
		}
		return err
	}
	if len(phases) < 2 {
		return nil
	}

	p := plot.New()
	p.Title.Text = "NPS by game phase"
	p.Y.Label.Text = "Mean NPS"

	w := vg.Points(10)
	for i, phase := range phases {
		b, err := plotter.NewBarChart(plotter.Values(values[i]), w)
		if err != nil {
			return err
		}
		b.Offset = vg.Length(float64(i)-float64(len(phases)-1)/2) * w
		b.Color = display.PhaseColor(phase)
		b.LineStyle.Width = 0
		p.Add(b)
		p.Legend.Add(display.PhaseLabel(phase), b)
	}
	p.Legend.Top = true
	labels := make([]string, len(algos))
	for i, a := range algos {
		labels[i] = display.AlgorithmLabel(a)
	}
	p.NominalX(labels...)
	return save(p, dir, "phase_comparison", 20*vg.Centimeter, 12*vg.Centimeter)
}

// addBarh adds one horizontal bar per series entry, colored per
// entry. Each bar is its own BarChart so it can carry its own color.
func addBarh(p *plot.Plot, s Series) error {
	for i, v := range s.Values {
		b, err := plotter.NewBarChart(plotter.Values{v}, vg.Points(18))
		if err != nil {
			return err
		}
		b.Horizontal = true
		b.XMin = float64(i)
		b.Color = s.Colors[i]
		b.LineStyle.Width = 0
		p.Add(b)
	}
	p.NominalY(s.Labels...)
	return nil
}

// save writes the plot into dir as both name.png and name.pdf, in
// the canvas idiom the rest of our tooling uses.
func save(p *plot.Plot, dir, name string, w, h vg.Length) error {
	png := vgimg.PngCanvas{Canvas: vgimg.NewWith(
		vgimg.UseWH(w, h),
		vgimg.UseDPI(150),
		vgimg.UseBackgroundColor(color.White),
	)}
	if err := write(p, filepath.Join(dir, name+".png"), png); err != nil {
		return err
	}
	return write(p, filepath.Join(dir, name+".pdf"), vgpdf.New(w, h))
}

func write(p *plot.Plot, path string, c vg.CanvasWriterTo) error {
	p.Draw(draw.New(c))
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := c.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %s: %v", path, err)
	}
	return nil
}

// reverse flips a series in place and returns it, so ranking-ordered
// series render best-at-top on horizontal charts.
func reverse(s Series) Series {
	for i, j := 0, len(s.Values)-1; i < j; i, j = i+1, j-1 {
		s.Labels[i], s.Labels[j] = s.Labels[j], s.Labels[i]
		s.Values[i], s.Values[j] = s.Values[j], s.Values[i]
		s.Colors[i], s.Colors[j] = s.Colors[j], s.Colors[i]
	}
	return s
}
