// Copyright 2026 The Aether Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"reflect"
	"strings"
	"testing"

	"github.com/aetherchess/analysis/benchtab"
	"github.com/aetherchess/analysis/gamefmt"
	"github.com/aetherchess/analysis/tourney"
)

func sampleStats() *tourney.Stats {
	return tourney.Aggregate([]gamefmt.Game{
		{White: "MTDf", Black: "MCTS", Outcome: gamefmt.WhiteWin, PlyCount: 73},
		{White: "MCTS", Black: "MTDf", Outcome: gamefmt.BlackWin, PlyCount: 41},
		{White: "MTDf", Black: "NegaScout", Outcome: gamefmt.Draw},
	})
}

func TestScorePercents(t *testing.T) {
	s := ScorePercents(sampleStats())
	if want := []string{"MTD(f)", "NegaScout", "MCTS"}; !reflect.DeepEqual(s.Labels, want) {
		t.Fatalf("got labels %v, want %v", s.Labels, want)
	}
	if len(s.Values) != 3 || len(s.Colors) != 3 {
		t.Fatalf("ragged series: %+v", s)
	}
	if s.Values[0] <= s.Values[2] {
		t.Errorf("got values %v, want ranking order best first", s.Values)
	}
}

func TestAvgGameLengths(t *testing.T) {
	s := AvgGameLengths(sampleStats())
	// NegaScout recorded no ply counts and is dropped.
	if want := []string{"MTD(f)", "MCTS"}; !reflect.DeepEqual(s.Labels, want) {
		t.Fatalf("got labels %v, want %v", s.Labels, want)
	}
	if s.Values[0] != 57 || s.Values[1] != 57 {
		t.Errorf("got values %v, want 57 for both", s.Values)
	}
}

func TestWDL(t *testing.T) {
	labels, wins, draws, losses := WDL(sampleStats())
	if labels[0] != "MTD(f)" {
		t.Fatalf("got labels %v, want MTD(f) first", labels)
	}
	if wins[0] != 2 || draws[0] != 1 || losses[0] != 0 {
		t.Errorf("got MTD(f) W/D/L %v/%v/%v, want 2/1/0", wins[0], draws[0], losses[0])
	}
}

func TestHeadToHead(t *testing.T) {
	g := HeadToHead(sampleStats())
	c, r := g.Dims()
	if c != 3 || r != 3 {
		t.Fatalf("got dims %dx%d, want 3x3", c, r)
	}

	// Row 0 of the ranking renders at the top, so its cells come
	// back at grid row r-1.
	if got := g.Z(2, 2); got != 100 {
		t.Errorf("got Z(2, 2) = %v, want 100 (MTDf beat MCTS twice)", got)
	}
	if got := g.Z(0, 0); got != 0 {
		t.Errorf("got Z(0, 0) = %v, want 0 (MCTS lost both to MTDf)", got)
	}
	// Self-pairs and never-met pairs sit at the 50 midpoint.
	if got := g.Z(0, 2); got != 50 {
		t.Errorf("got self cell %v, want 50", got)
	}
	if got := g.Z(2, 1); got != 50 {
		t.Errorf("got never-met cell %v, want 50", got)
	}

	want := []string{"MCTS", "NegaScout", "MTD(f)"}
	if got := g.YLabels(); !reflect.DeepEqual(got, want) {
		t.Errorf("got Y labels %v, want %v", got, want)
	}
}

const benchCSV = `algorithm,position_id,phase,depth,nodes,time_ms,nps,ttfm_ms
MTDf,pos1,opening,8,120000,500,240000,12
MCTS,pos1,opening,6,40000,500,80000,30
MTDf,pos2,endgame,12,200000,500,400000,8
MCTS,pos2,endgame,7,50000,500,100000,25
`

func benchData(t *testing.T, data string) *benchtab.Dataset {
	t.Helper()
	d, err := benchtab.ReadCSV(strings.NewReader(data), "test.csv")
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestWDLShares(t *testing.T) {
	labels, wins, draws, losses := WDLShares(sampleStats())
	if labels[0] != "MTD(f)" {
		t.Fatalf("got labels %v, want MTD(f) first", labels)
	}
	for i := range labels {
		sum := wins[i] + draws[i] + losses[i]
		if sum < 99.99 || sum > 100.01 {
			t.Errorf("%s: shares sum to %v, want 100", labels[i], sum)
		}
	}
	if wins[len(wins)-1] != 0 || losses[len(losses)-1] != 100 {
		t.Errorf("got last-ranked shares W %v L %v, want 0, 100", wins[len(wins)-1], losses[len(losses)-1])
	}
}

func TestMetricDistributions(t *testing.T) {
	labels, values, err := MetricDistributions(benchData(t, benchCSV), "nps")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"MTD(f)", "MCTS"}; !reflect.DeepEqual(labels, want) {
		t.Fatalf("got labels %v, want %v", labels, want)
	}
	if want := []float64{240000, 400000}; !reflect.DeepEqual(values[0], want) {
		t.Errorf("got MTD(f) values %v, want %v", values[0], want)
	}
}

func TestMetricMeans(t *testing.T) {
	s, err := MetricMeans(benchData(t, benchCSV), "nps")
	if err != nil {
		t.Fatal(err)
	}
	// Ascending, so the best algorithm is last.
	if want := []string{"MCTS", "MTD(f)"}; !reflect.DeepEqual(s.Labels, want) {
		t.Fatalf("got labels %v, want %v", s.Labels, want)
	}
	if want := []float64{90000, 320000}; !reflect.DeepEqual(s.Values, want) {
		t.Errorf("got values %v, want %v", s.Values, want)
	}
}

func TestDepthVsTime(t *testing.T) {
	a := benchData(t, benchCSV).WithTimeLimit(500)
	b := benchData(t, benchCSV).WithTimeLimit(2000)
	d, err := benchtab.Concat(a, b)
	if err != nil {
		t.Fatal(err)
	}
	lines, err := DepthVsTime(d)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	want := []XY{{X: 500, Y: 10}, {X: 2000, Y: 10}}
	if lines[0].Label != "MTD(f)" || !reflect.DeepEqual(lines[0].Points, want) {
		t.Errorf("got line %+v, want MTD(f) with points %v", lines[0], want)
	}
}

func TestPhaseMeans(t *testing.T) {
	phases, algos, values, err := PhaseMeans(benchData(t, benchCSV), "depth")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"opening", "endgame"}; !reflect.DeepEqual(phases, want) {
		t.Fatalf("got phases %v, want %v", phases, want)
	}
	if want := []string{"MTDf", "MCTS"}; !reflect.DeepEqual(algos, want) {
		t.Fatalf("got algos %v, want %v", algos, want)
	}
	if want := [][]float64{{8, 6}, {12, 7}}; !reflect.DeepEqual(values, want) {
		t.Errorf("got values %v, want %v", values, want)
	}
}
