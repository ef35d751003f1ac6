// Copyright 2026 The Aether Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart renders the aggregated tournament and benchmark
// models as PNG and PDF charts.
//
// The package is split into a pure data-preparation layer (this
// file), which selects and orders values from the read-only model,
// and a rendering layer that draws prepared series with gonum/plot.
// The preparation layer has no rendering dependencies and is tested
// directly.
package chart

import (
	"image/color"
	"sort"

	"github.com/aetherchess/analysis/benchtab"
	"github.com/aetherchess/analysis/internal/display"
	"github.com/aetherchess/analysis/tourney"
)

// A Series is an ordered set of labeled bar values.
type Series struct {
	Labels []string
	Values []float64
	Colors []color.RGBA
}

// An XY is one point of a line series.
type XY struct {
	X, Y float64
}

// A Line is one labeled line of a multi-line chart.
type Line struct {
	Label  string
	Color  color.RGBA
	Points []XY
}

// ScorePercents returns each player's score percentage in ranking
// order, best first.
func ScorePercents(s *tourney.Stats) Series {
	var out Series
	for _, p := range s.Ranking() {
		out.Labels = append(out.Labels, display.AlgorithmLabel(p))
		out.Values = append(out.Values, s.ByPlayer[p].ScorePercent())
		out.Colors = append(out.Colors, display.AlgorithmColor(p))
	}
	return out
}

// AvgGameLengths returns the average game length of each player that
// recorded ply counts, in ranking order.
func AvgGameLengths(s *tourney.Stats) Series {
	var out Series
	for _, p := range s.Ranking() {
		st := s.ByPlayer[p]
		if st.GamesWithPlies == 0 {
			continue
		}
		out.Labels = append(out.Labels, display.AlgorithmLabel(p))
		out.Values = append(out.Values, st.AvgGameLength())
		out.Colors = append(out.Colors, display.AlgorithmColor(p))
	}
	return out
}

// WDL returns per-player win, draw, and loss counts in ranking
// order, for a grouped bar chart.
func WDL(s *tourney.Stats) (labels []string, wins, draws, losses []float64) {
	for _, p := range s.Ranking() {
		st := s.ByPlayer[p]
		labels = append(labels, display.AlgorithmLabel(p))
		wins = append(wins, float64(st.Wins))
		draws = append(draws, float64(st.Draws))
		losses = append(losses, float64(st.Losses))
	}
	return
}

// WDLShares returns per-player win, draw, and loss percentages in
// ranking order, for a stacked bar chart. The three shares of a
// player sum to 100 (or all read 0 for a player with no games).
func WDLShares(s *tourney.Stats) (labels []string, wins, draws, losses []float64) {
	for _, p := range s.Ranking() {
		st := s.ByPlayer[p]
		n := float64(st.Games())
		if n == 0 {
			n = 1
		}
		labels = append(labels, display.AlgorithmLabel(p))
		wins = append(wins, float64(st.Wins)/n*100)
		draws = append(draws, float64(st.Draws)/n*100)
		losses = append(losses, float64(st.Losses)/n*100)
	}
	return
}

// MetricDistributions returns each algorithm's raw values of one
// metric, algorithms in dataset order, for box plots.
func MetricDistributions(d *benchtab.Dataset, metric string) (labels []string, values [][]float64, err error) {
	algos, err := d.Levels("algorithm")
	if err != nil {
		return nil, nil, err
	}
	for _, algo := range algos {
		sub, err := d.FilterEq("algorithm", algo)
		if err != nil {
			return nil, nil, err
		}
		xs, err := sub.Floats(metric)
		if err != nil {
			return nil, nil, err
		}
		labels = append(labels, display.AlgorithmLabel(algo))
		values = append(values, xs)
	}
	return labels, values, nil
}

// A Grid is a square head-to-head matrix of score percentages, row
// player against column player, in ranking order. It implements
// plotter.GridXYZ.
type Grid struct {
	Labels []string
	cells  [][]float64
}

// HeadToHead builds the pairwise score-percentage grid. Self-pairs
// and pairs that never met hold the 50 midpoint sentinel.
func HeadToHead(s *tourney.Stats) *Grid {
	ranked := s.Ranking()
	g := &Grid{}
	for _, p := range ranked {
		g.Labels = append(g.Labels, display.AlgorithmLabel(p))
		row := make([]float64, len(ranked))
		for j, opp := range ranked {
			row[j] = s.Pair(p, opp).ScorePercent()
		}
		g.cells = append(g.cells, row)
	}
	return g
}

// Dims, Z, X, and Y implement plotter.GridXYZ. Row 0 of the grid is
// drawn at the top, matching the ranking order of Labels.

func (g *Grid) Dims() (c, r int) {
	return len(g.Labels), len(g.Labels)
}

func (g *Grid) Z(c, r int) float64 {
	return g.cells[len(g.cells)-1-r][c]
}

func (g *Grid) X(c int) float64 {
	return float64(c)
}

func (g *Grid) Y(r int) float64 {
	return float64(r)
}

// YLabels returns the row labels bottom-to-top, the order the Y axis
// consumes them.
func (g *Grid) YLabels() []string {
	out := make([]string, len(g.Labels))
	for i, l := range g.Labels {
		out[len(out)-1-i] = l
	}
	return out
}

// MetricMeans returns the per-algorithm mean of one benchmark metric,
// ascending, so the best bar renders on top of a horizontal chart
// when higher is better.
func MetricMeans(d *benchtab.Dataset, metric string) (Series, error) {
	means, err := d.MeansByAlgorithm(metric)
	if err != nil {
		return Series{}, err
	}
	sortGroupsAsc(means, metric)
	var out Series
	for _, m := range means {
		out.Labels = append(out.Labels, display.AlgorithmLabel(m.Key))
		out.Values = append(out.Values, m.Mean[metric])
		out.Colors = append(out.Colors, display.AlgorithmColor(m.Key))
	}
	return out, nil
}

// DepthVsTime returns one line per algorithm of mean search depth as
// a function of the time limit.
func DepthVsTime(d *benchtab.Dataset) ([]Line, error) {
	limits, err := d.LevelsFloat("time_limit")
	if err != nil {
		return nil, err
	}
	algos, err := d.Levels("algorithm")
	if err != nil {
		return nil, err
	}

	lines := make([]Line, 0, len(algos))
	for _, algo := range algos {
		line := Line{Label: display.AlgorithmLabel(algo), Color: display.AlgorithmColor(algo)}
		sub, err := d.FilterEq("algorithm", algo)
		if err != nil {
			return nil, err
		}
		for _, tl := range limits {
			at, err := sub.FilterEq("time_limit", tl)
			if err != nil {
				return nil, err
			}
			sum, err := at.Summarize("depth")
			if err != nil {
				return nil, err
			}
			if sum.N == 0 {
				continue
			}
			line.Points = append(line.Points, XY{X: tl, Y: sum.Mean})
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// PhaseMeans returns, for each game phase in canonical order, the
// per-algorithm mean of one metric. Algorithms are returned
// separately in their dataset order; every phase series is aligned
// to that order, with 0 for an algorithm unmeasured in a phase.
func PhaseMeans(d *benchtab.Dataset, metric string) (phases []string, algos []string, values [][]float64, err error) {
	phases, err = d.Levels("phase")
	if err != nil {
		return nil, nil, nil, err
	}
	benchtab.SortPhases(phases)
	algos, err = d.Levels("algorithm")
	if err != nil {
		return nil, nil, nil, err
	}

	index := make(map[string]int, len(algos))
	for i, a := range algos {
		index[a] = i
	}
	for _, phase := range phases {
		sub, err := d.FilterEq("phase", phase)
		if err != nil {
			return nil, nil, nil, err
		}
		means, err := sub.MeansByAlgorithm(metric)
		if err != nil {
			return nil, nil, nil, err
		}
		row := make([]float64, len(algos))
		for _, m := range means {
			row[index[m.Key]] = m.Mean[metric]
		}
		values = append(values, row)
	}
	return phases, algos, values, nil
}

func sortGroupsAsc(ms []benchtab.GroupMeans, metric string) {
	sort.SliceStable(ms, func(i, j int) bool {
		return ms[i].Mean[metric] < ms[j].Mean[metric]
	})
}
