// Copyright 2026 The Aether Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchtab loads per-position benchmark measurements from CSV
// into data-frame style tables and computes grouped aggregates over
// them.
//
// A benchmark row describes one (algorithm, position) measurement:
//
//	algorithm, position_id, phase, depth, nodes, time_ms, nps,
//	ttfm_ms, best_move, score, branching_factor, stability
//
// plus an optional time_limit column identifying the time budget the
// measurement ran under. Rows are accepted as-is; missing optional
// columns only fail the specific aggregations that need them, with a
// *MissingColumnError naming the column.
package benchtab

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/table"
)

// ErrNoRows indicates that an input source exists but yields zero
// benchmark rows.
var ErrNoRows = errors.New("no benchmark rows")

// numericColumns are the columns stored as []float64. Everything else
// is stored as []string.
var numericColumns = map[string]bool{
	"depth":            true,
	"nodes":            true,
	"time_ms":          true,
	"nps":              true,
	"ttfm_ms":          true,
	"score":            true,
	"branching_factor": true,
	"stability":        true,
	"time_limit":       true,
}

// A Dataset is an immutable benchmark measurement table. Derived
// Datasets (filtered, tagged, concatenated) share no mutable state
// with their source.
type Dataset struct {
	tab *table.Table
}

// New wraps an existing table in a Dataset.
func New(tab *table.Table) *Dataset {
	return &Dataset{tab}
}

// Table returns the underlying table. Callers must treat it as
// read-only.
func (d *Dataset) Table() *table.Table {
	return d.tab
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	return d.tab.Len()
}

// HasColumn reports whether the dataset carries the named column.
func (d *Dataset) HasColumn(col string) bool {
	return d.tab.Column(col) != nil
}

// Columns returns the column names in input order.
func (d *Dataset) Columns() []string {
	return d.tab.Columns()
}

// ReadCSV parses one CSV benchmark file. The first row is the
// header. Known numeric columns are parsed as float64; a value that
// is empty or does not parse contributes 0 rather than dropping the
// row. fileName is purely diagnostic.
func ReadCSV(r io.Reader, fileName string) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%s: %w", fileName, ErrNoRows)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %v", fileName, err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %v", fileName, err)
	}

	var b table.Builder
	for i, col := range header {
		if numericColumns[col] {
			vals := make([]float64, len(rows))
			for j, row := range rows {
				if i < len(row) {
					v, err := strconv.ParseFloat(strings.TrimSpace(row[i]), 64)
					if err == nil {
						vals[j] = v
					}
				}
			}
			b.Add(col, vals)
		} else {
			vals := make([]string, len(rows))
			for j, row := range rows {
				if i < len(row) {
					vals[j] = strings.TrimSpace(row[i])
				}
			}
			b.Add(col, vals)
		}
	}
	return &Dataset{b.Done()}, nil
}

// WithTimeLimit returns a Dataset with every row tagged with the
// given time budget in milliseconds. If the dataset already carries a
// time_limit column it is returned unchanged.
func (d *Dataset) WithTimeLimit(ms int) *Dataset {
	if d.HasColumn("time_limit") {
		return d
	}
	col := make([]float64, d.Len())
	for i := range col {
		col[i] = float64(ms)
	}
	return &Dataset{table.NewBuilder(d.tab).Add("time_limit", col).Done()}
}

// Concat concatenates datasets row-wise. All datasets must have the
// same column set; otherwise Concat reports which source differs.
func Concat(ds ...*Dataset) (*Dataset, error) {
	if len(ds) == 0 {
		return nil, ErrNoRows
	}
	want := columnSet(ds[0])
	gs := make([]table.Grouping, len(ds))
	for i, d := range ds {
		if got := columnSet(d); got != want {
			return nil, fmt.Errorf("cannot concatenate: columns %s != %s", got, want)
		}
		gs[i] = d.tab
	}
	return &Dataset{table.Flatten(table.Concat(gs...))}, nil
}

func columnSet(d *Dataset) string {
	cols := append([]string(nil), d.tab.Columns()...)
	sort.Strings(cols)
	return strings.Join(cols, ",")
}

// LoadFile loads a single CSV benchmark file.
func LoadFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadCSV(f, path)
}

// LoadResults loads a results directory produced by the benchmark
// harness: one subdirectory per time budget ("500ms", "2000ms", ...),
// each holding comparison_*.csv files. Every row is tagged with the
// time limit parsed from its subdirectory name, so datasets gathered
// under different budgets concatenate into one comparable set.
func LoadResults(dir string) (*Dataset, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var parts []*Dataset
	for _, e := range entries {
		if !e.IsDir() || !strings.HasSuffix(e.Name(), "ms") {
			continue
		}
		ms, err := strconv.Atoi(strings.TrimSuffix(e.Name(), "ms"))
		if err != nil {
			continue
		}
		paths, err := filepath.Glob(filepath.Join(dir, e.Name(), "comparison_*.csv"))
		if err != nil {
			return nil, err
		}
		sort.Strings(paths)
		for _, path := range paths {
			d, err := LoadFile(path)
			if err != nil {
				return nil, err
			}
			parts = append(parts, d.WithTimeLimit(ms))
		}
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("%s: no comparison CSV files: %w", dir, ErrNoRows)
	}
	return Concat(parts...)
}
