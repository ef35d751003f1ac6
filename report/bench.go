// Copyright 2026 The Aether Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/aetherchess/analysis/benchtab"
	"github.com/aetherchess/analysis/internal/display"
)

// benchMetrics are the metric columns the benchmark summary is built
// from. A dataset missing one of them cannot produce the summary and
// the formatter reports the missing column.
var benchMetrics = []string{"nps", "depth", "nodes", "ttfm_ms"}

// FormatBenchText appends the benchmark summary document to buf:
// header, per-algorithm ranking by mean NPS, NPS distributions, and
// per-phase and per-time-limit breakdowns when the dataset carries
// those columns.
func FormatBenchText(buf *bytes.Buffer, d *benchtab.Dataset) error {
	means, err := d.MeansByAlgorithm(benchMetrics...)
	if err != nil {
		return err
	}
	if len(means) == 0 {
		return benchtab.ErrNoRows
	}
	sortByMean(means, "nps")

	wid := 0
	label := func(algo string) string { return display.AlgorithmLabel(algo) }
	for _, m := range means {
		if n := len(label(m.Key)); n > wid {
			wid = n
		}
	}

	fmt.Fprintf(buf, "%s\n", doubleRule)
	fmt.Fprintf(buf, "SEARCH ALGORITHM COMPARISON\n")
	fmt.Fprintf(buf, "Aether chess engine benchmark results\n")
	fmt.Fprintf(buf, "%s\n\n", doubleRule)

	if n, err := d.DistinctCount("position_id"); err == nil {
		fmt.Fprintf(buf, "Test positions: %d\n", n)
	}
	fmt.Fprintf(buf, "Algorithms tested: %d\n", len(means))
	if phases, err := d.Levels("phase"); err == nil {
		benchtab.SortPhases(phases)
		fmt.Fprintf(buf, "Game phases: %s\n", joinPhases(phases))
	}
	if limits, err := d.LevelsFloat("time_limit"); err == nil {
		fmt.Fprintf(buf, "Time limits: %s\n", joinLimits(limits))
	}
	fmt.Fprintf(buf, "\n")

	fmt.Fprintf(buf, "%s\n", rule)
	fmt.Fprintf(buf, "ALGORITHM RANKING (by mean NPS)\n")
	fmt.Fprintf(buf, "%s\n", rule)
	for i, m := range means {
		fmt.Fprintf(buf, "  %d. %s\n", i+1, label(m.Key))
		fmt.Fprintf(buf, "     NPS: %12.0f  |  Depth: %6.1f  |  Nodes: %12.0f  |  TTFM: %8.2fms\n",
			m.Mean["nps"], m.Mean["depth"], m.Mean["nodes"], m.Mean["ttfm_ms"])
	}

	fmt.Fprintf(buf, "\n%s\n", rule)
	fmt.Fprintf(buf, "NPS DISTRIBUTION\n")
	fmt.Fprintf(buf, "%s\n", rule)
	for _, m := range means {
		sub, err := d.FilterEq("algorithm", m.Key)
		if err != nil {
			return err
		}
		sum, err := sub.Summarize("nps")
		if err != nil {
			return err
		}
		fmt.Fprintf(buf, "  %-*s  mean %.0f  median %.0f  min %.0f  max %.0f  (n=%d)\n",
			wid, label(m.Key), sum.Mean, sum.Median, sum.Min, sum.Max, sum.N)
	}

	if phases, err := d.Levels("phase"); err == nil && len(phases) > 1 {
		benchtab.SortPhases(phases)
		fmt.Fprintf(buf, "\n%s\n", rule)
		fmt.Fprintf(buf, "ANALYSIS BY GAME PHASE\n")
		fmt.Fprintf(buf, "%s\n", rule)
		for _, phase := range phases {
			sub, err := d.FilterEq("phase", phase)
			if err != nil {
				return err
			}
			pm, err := sub.MeansByAlgorithm("nps", "depth")
			if err != nil {
				return err
			}
			sortByMean(pm, "nps")
			fmt.Fprintf(buf, "\n  %s:\n", display.PhaseLabel(phase))
			for _, m := range pm {
				fmt.Fprintf(buf, "    %-*s  NPS: %10.0f  Depth: %5.1f\n",
					wid, label(m.Key), m.Mean["nps"], m.Mean["depth"])
			}
		}
	}

	if limits, err := d.LevelsFloat("time_limit"); err == nil && len(limits) > 1 {
		fmt.Fprintf(buf, "\n%s\n", rule)
		fmt.Fprintf(buf, "ANALYSIS BY TIME LIMIT\n")
		fmt.Fprintf(buf, "%s\n", rule)
		for _, tl := range limits {
			sub, err := d.FilterEq("time_limit", tl)
			if err != nil {
				return err
			}
			tm, err := sub.MeansByAlgorithm("depth", "nps")
			if err != nil {
				return err
			}
			sortByMean(tm, "depth")
			fmt.Fprintf(buf, "\n  Limit %.0fms:\n", tl)
			for _, m := range tm {
				fmt.Fprintf(buf, "    %-*s  Depth: %5.1f  NPS: %10.0f\n",
					wid, label(m.Key), m.Mean["depth"], m.Mean["nps"])
			}
		}
	}

	fmt.Fprintf(buf, "\n%s\n", rule)
	fmt.Fprintf(buf, "CONCLUSIONS\n")
	fmt.Fprintf(buf, "%s\n", rule)
	fmt.Fprintf(buf, "  Highest throughput (NPS): %s\n", label(maxBy(means, "nps")))
	fmt.Fprintf(buf, "  Deepest search:           %s\n", label(maxBy(means, "depth")))
	fmt.Fprintf(buf, "  Best responsiveness:      %s\n", label(minBy(means, "ttfm_ms")))
	return nil
}

// sortByMean orders groups by the given metric mean, descending,
// keeping the dataset's group order for ties.
func sortByMean(ms []benchtab.GroupMeans, metric string) {
	sort.SliceStable(ms, func(i, j int) bool {
		return ms[i].Mean[metric] > ms[j].Mean[metric]
	})
}

func maxBy(ms []benchtab.GroupMeans, metric string) string {
	best := ms[0]
	for _, m := range ms[1:] {
		if m.Mean[metric] > best.Mean[metric] {
			best = m
		}
	}
	return best.Key
}

func minBy(ms []benchtab.GroupMeans, metric string) string {
	best := ms[0]
	for _, m := range ms[1:] {
		if m.Mean[metric] < best.Mean[metric] {
			best = m
		}
	}
	return best.Key
}

func joinPhases(phases []string) string {
	out := ""
	for i, p := range phases {
		if i > 0 {
			out += ", "
		}
		out += display.PhaseLabel(p)
	}
	return out
}

func joinLimits(limits []float64) string {
	out := ""
	for i, tl := range limits {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%.0fms", tl)
	}
	return out
}
