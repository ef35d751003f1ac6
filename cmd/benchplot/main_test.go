// Copyright 2026 The Aether Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testCSV = `algorithm,position_id,phase,depth,nodes,time_ms,nps,ttfm_ms
MTDf,pos1,opening,8,120000,500,240000,12
MCTS,pos1,opening,6,40000,500,80000,30
`

func run(t *testing.T, args ...string) (stdout string, err error) {
	t.Helper()
	var out, outErr bytes.Buffer
	t.Logf("benchplot %s", strings.Join(args, " "))
	err = benchplot(&out, &outErr, args)
	return out.String(), err
}

func TestBenchplotFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "comparison.csv")
	if err := os.WriteFile(path, []byte(testCSV), 0666); err != nil {
		t.Fatal(err)
	}
	outDir := filepath.Join(dir, "out")

	stdout, err := run(t, "-no-charts", path, outDir)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout, "ALGORITHM RANKING") || !strings.Contains(stdout, "MTD(f)") {
		t.Errorf("unexpected output:\n%s", stdout)
	}
	written, err := os.ReadFile(filepath.Join(outDir, "benchmark_summary.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(written) != stdout {
		t.Error("summary file and echoed output differ")
	}
}

func TestBenchplotResultsDir(t *testing.T) {
	dir := t.TempDir()
	for _, sub := range []string{"500ms", "2000ms"} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0777); err != nil {
			t.Fatal(err)
		}
		path := filepath.Join(dir, sub, "comparison_opening.csv")
		if err := os.WriteFile(path, []byte(testCSV), 0666); err != nil {
			t.Fatal(err)
		}
	}

	stdout, err := run(t, "-no-charts", dir)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout, "Time limits: 500ms, 2000ms") {
		t.Errorf("unexpected output:\n%s", stdout)
	}
	if _, err := os.Stat(filepath.Join(dir, "charts", "benchmark_summary.txt")); err != nil {
		t.Errorf("summary not written to default outdir: %v", err)
	}
}

func TestBenchplotMissingInput(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, "-no-charts", filepath.Join(dir, "nope.csv"))
	if !os.IsNotExist(err) {
		t.Fatalf("got %v, want a not-exist error", err)
	}
}

func TestBenchplotEmptyInput(t *testing.T) {
	// A header-only CSV yields zero rows, which is fatal before any
	// output directory is created.
	dir := t.TempDir()
	path := filepath.Join(dir, "comparison.csv")
	header := testCSV[:strings.IndexByte(testCSV, '\n')+1]
	if err := os.WriteFile(path, []byte(header), 0666); err != nil {
		t.Fatal(err)
	}
	outDir := filepath.Join(dir, "out")

	_, err := run(t, "-no-charts", path, outDir)
	if err == nil || !strings.Contains(err.Error(), "no benchmark rows") {
		t.Fatalf("got %v, want no-benchmark-rows error", err)
	}
	if _, err := os.Stat(outDir); !os.IsNotExist(err) {
		t.Errorf("output directory created for empty input (stat: %v)", err)
	}
}
