// Copyright 2026 The Aether Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtab

import (
	"fmt"
	"sort"

	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
)

// A MissingColumnError reports an aggregation that needs a column the
// dataset does not carry. It fails only that aggregation; unrelated
// aggregations over the same dataset proceed.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("dataset is missing column %q", e.Column)
}

// check returns a *MissingColumnError for the first absent column.
func (d *Dataset) check(cols ...string) error {
	for _, col := range cols {
		if !d.HasColumn(col) {
			return &MissingColumnError{col}
		}
	}
	return nil
}

// floats returns the named column as []float64.
func (d *Dataset) floats(col string) ([]float64, error) {
	if err := d.check(col); err != nil {
		return nil, err
	}
	xs, ok := d.tab.Column(col).([]float64)
	if !ok {
		return nil, fmt.Errorf("column %q is not numeric", col)
	}
	return xs, nil
}

// Floats returns a copy of the named numeric column, so callers
// cannot mutate the underlying table.
func (d *Dataset) Floats(col string) ([]float64, error) {
	xs, err := d.floats(col)
	if err != nil {
		return nil, err
	}
	return append([]float64(nil), xs...), nil
}

// strs returns the named column as []string.
func (d *Dataset) strs(col string) ([]string, error) {
	if err := d.check(col); err != nil {
		return nil, err
	}
	xs, ok := d.tab.Column(col).([]string)
	if !ok {
		return nil, fmt.Errorf("column %q is not a string column", col)
	}
	return xs, nil
}

// Levels returns the distinct values of a string column in order of
// first appearance.
func (d *Dataset) Levels(col string) ([]string, error) {
	xs, err := d.strs(col)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var out []string
	for _, x := range xs {
		if !seen[x] {
			seen[x] = true
			out = append(out, x)
		}
	}
	return out, nil
}

// LevelsFloat returns the distinct values of a numeric column,
// sorted ascending.
func (d *Dataset) LevelsFloat(col string) ([]float64, error) {
	xs, err := d.floats(col)
	if err != nil {
		return nil, err
	}
	seen := make(map[float64]bool)
	var out []float64
	for _, x := range xs {
		if !seen[x] {
			seen[x] = true
			out = append(out, x)
		}
	}
	sort.Float64s(out)
	return out, nil
}

// DistinctCount returns the number of distinct values in a string
// column.
func (d *Dataset) DistinctCount(col string) (int, error) {
	levels, err := d.Levels(col)
	if err != nil {
		return 0, err
	}
	return len(levels), nil
}

// FilterEq returns the subset of rows whose column equals val. val
// must be a string for string columns and a float64 for numeric
// columns.
func (d *Dataset) FilterEq(col string, val interface{}) (*Dataset, error) {
	if err := d.check(col); err != nil {
		return nil, err
	}
	return &Dataset{table.Flatten(table.FilterEq(d.tab, col, val))}, nil
}

// GroupMeans holds the per-group means of a set of metrics.
type GroupMeans struct {
	// Key is the group's value of the grouping column.
	Key string

	// Mean maps metric column name to the group mean.
	Mean map[string]float64
}

// MeansBy computes the mean of each metric column grouped by a
// string column, in the manner of a data-frame groupby().mean().
// Groups appear in order of first appearance in the dataset, which
// keeps repeated runs over the same input byte-identical downstream.
func (d *Dataset) MeansBy(by string, metrics ...string) ([]GroupMeans, error) {
	if _, err := d.strs(by); err != nil {
		return nil, err
	}
	for _, m := range metrics {
		if _, err := d.floats(m); err != nil {
			return nil, err
		}
	}
	// Grouping a zero-row table produces a table with no columns at
	// all, not zero-length ones.
	if d.Len() == 0 {
		return nil, nil
	}

	flat := table.Flatten(ggstat.Agg(by)(ggstat.AggMean(metrics...)).F(d.tab))
	keys := flat.Column(by).([]string)

	out := make([]GroupMeans, len(keys))
	for i, key := range keys {
		out[i] = GroupMeans{Key: key, Mean: make(map[string]float64)}
	}
	for _, m := range metrics {
		means := flat.Column("mean " + m).([]float64)
		for i := range out {
			out[i].Mean[m] = means[i]
		}
	}
	return out, nil
}

// MeansByAlgorithm computes per-algorithm metric means.
func (d *Dataset) MeansByAlgorithm(metrics ...string) ([]GroupMeans, error) {
	return d.MeansBy("algorithm", metrics...)
}

// A Summary describes the distribution of one metric column.
type Summary struct {
	N                      int
	Mean, Median, Min, Max float64
}

// Summarize computes the distribution summary of a metric column
// over the whole dataset.
func (d *Dataset) Summarize(metric string) (Summary, error) {
	xs, err := d.floats(metric)
	if err != nil {
		return Summary{}, err
	}
	if len(xs) == 0 {
		return Summary{}, nil
	}
	min, max := stats.Bounds(xs)
	return Summary{
		N:      len(xs),
		Mean:   stats.Mean(xs),
		Median: stats.Sample{Xs: xs}.Quantile(0.5),
		Min:    min,
		Max:    max,
	}, nil
}

// Canonical game phase values. Unrecognized phases pass through
// untouched and sort after the canonical ones.
const (
	PhaseOpening    = "opening"
	PhaseMiddlegame = "middlegame"
	PhaseEndgame    = "endgame"
)

var phaseRank = map[string]int{
	PhaseOpening:    0,
	PhaseMiddlegame: 1,
	PhaseEndgame:    2,
}

// SortPhases orders phases opening, middlegame, endgame, then any
// unrecognized phases alphabetically. The sort is in place and the
// slice is returned for convenience.
func SortPhases(phases []string) []string {
	sort.SliceStable(phases, func(i, j int) bool {
		ri, iok := phaseRank[phases[i]]
		rj, jok := phaseRank[phases[j]]
		switch {
		case iok && jok:
			return ri < rj
		case iok:
			return true
		case jok:
			return false
		}
		return phases[i] < phases[j]
	})
	return phases
}
