// Copyright 2026 The Aether Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchplot summarizes per-position search benchmark measurements.
//
// Usage:
//
//	benchplot [-no-charts] <results-dir|results.csv> [outdir]
//
// The input is either a single comparison CSV or a results directory
// holding one subdirectory per time budget (500ms, 2000ms, ...) of
// comparison_*.csv files; in the directory form every row is tagged
// with its source time limit so budgets can be compared. Benchplot
// aggregates per-algorithm metric means, writes a deterministic text
// summary into outdir, and renders the benchmark chart set.
//
// outdir defaults to a charts directory next to the input. It is
// created if absent.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/aetherchess/analysis/benchtab"
	"github.com/aetherchess/analysis/chart"
	"github.com/aetherchess/analysis/report"
)

func main() {
	log.SetPrefix("benchplot: ")
	log.SetFlags(0)
	if err := benchplot(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

// benchplot runs the tool: load, aggregate, write the summary into
// outdir and echo it to w. It returns flag.ErrHelp for usage errors.
// No output directory is created unless the dataset produces a
// summary.
func benchplot(w, wErr io.Writer, args []string) error {
	fs := flag.NewFlagSet("benchplot", flag.ContinueOnError)
	fs.SetOutput(wErr)
	fs.Usage = func() {
		fmt.Fprintf(wErr, "usage: benchplot [options] <results-dir|results.csv> [outdir]\n")
		fmt.Fprintf(wErr, "options:\n")
		fs.PrintDefaults()
	}
	flagNoCharts := fs.Bool("no-charts", false, "skip chart rendering")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 || fs.NArg() > 2 {
		fs.Usage()
		return flag.ErrHelp
	}
	path := fs.Arg(0)

	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	var (
		data   *benchtab.Dataset
		outDir string
	)
	if info.IsDir() {
		data, err = benchtab.LoadResults(path)
		outDir = filepath.Join(path, "charts")
	} else {
		data, err = benchtab.LoadFile(path)
		outDir = filepath.Join(filepath.Dir(path), "charts")
	}
	if err != nil {
		return err
	}
	if fs.NArg() == 2 {
		outDir = fs.Arg(1)
	}

	if data.Len() == 0 {
		return fmt.Errorf("no benchmark rows found in %s", path)
	}

	var buf bytes.Buffer
	if err := report.FormatBenchText(&buf, data); err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0777); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(outDir, "benchmark_summary.txt"), buf.Bytes(), 0666); err != nil {
		return err
	}
	w.Write(buf.Bytes())

	if !*flagNoCharts {
		return chart.Bench(data, outDir)
	}
	return nil
}
