// Copyright 2026 The Aether Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Tourneystat summarizes the results of an engine-vs-engine
// tournament.
//
// Usage:
//
//	tourneystat [-html] [-no-charts] [-strict] tournament.pgn [outdir]
//
// The input is a tagged game log. Each record is a block of
// `[Key "Value"]` tags; White, Black, and Result are mandatory and
// blocks missing one of them are skipped and counted. Tourneystat
// aggregates per-algorithm and head-to-head statistics, writes a
// deterministic text summary (and optionally an HTML one) into
// outdir, and renders the tournament chart set.
//
// By default any result string that is not "1-0" or "0-1" counts as
// a draw; -strict rejects records whose result is not one of the
// three canonical strings.
//
// outdir defaults to a tournament_report directory next to the
// input. It is created if absent.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/aetherchess/analysis/chart"
	"github.com/aetherchess/analysis/gamefmt"
	"github.com/aetherchess/analysis/report"
	"github.com/aetherchess/analysis/tourney"
)

func main() {
	log.SetPrefix("tourneystat: ")
	log.SetFlags(0)
	if err := tourneystat(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

// tourneystat runs the tool: parse, aggregate, write the summary into
// outdir and echo it to w. It returns flag.ErrHelp for usage errors.
// No output directory is created unless the input yields at least one
// record.
func tourneystat(w, wErr io.Writer, args []string) error {
	fs := flag.NewFlagSet("tourneystat", flag.ContinueOnError)
	fs.SetOutput(wErr)
	fs.Usage = func() {
		fmt.Fprintf(wErr, "usage: tourneystat [options] tournament.pgn [outdir]\n")
		fmt.Fprintf(wErr, "options:\n")
		fs.PrintDefaults()
	}
	flagHTML := fs.Bool("html", false, "also write the summary as an HTML document")
	flagNoCharts := fs.Bool("no-charts", false, "skip chart rendering")
	flagStrict := fs.Bool("strict", false, "reject records with unrecognized result strings")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 || fs.NArg() > 2 {
		fs.Usage()
		return flag.ErrHelp
	}
	path := fs.Arg(0)
	outDir := filepath.Join(filepath.Dir(path), "tournament_report")
	if fs.NArg() == 2 {
		outDir = fs.Arg(1)
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	r := gamefmt.NewReader(f, path)
	if *flagStrict {
		r.SetOutcomePolicy(gamefmt.StrictOutcome)
	}
	var games []gamefmt.Game
	for r.Scan() {
		games = append(games, *r.Result())
	}
	if err := r.Err(); err != nil {
		f.Close()
		return err
	}
	f.Close()

	if len(games) == 0 {
		return fmt.Errorf("no game records found in %s", path)
	}

	stats := tourney.Aggregate(games)

	if err := os.MkdirAll(outDir, 0777); err != nil {
		return err
	}

	var buf bytes.Buffer
	report.FormatTournamentText(&buf, stats, len(games), r.Skipped())
	if err := os.WriteFile(filepath.Join(outDir, "tournament_summary.txt"), buf.Bytes(), 0666); err != nil {
		return err
	}
	w.Write(buf.Bytes())

	if *flagHTML {
		h, err := os.Create(filepath.Join(outDir, "tournament_summary.html"))
		if err != nil {
			return err
		}
		if err := report.FormatTournamentHTML(h, stats, len(games), r.Skipped()); err != nil {
			h.Close()
			return err
		}
		if err := h.Close(); err != nil {
			return err
		}
	}

	if !*flagNoCharts {
		return chart.Tournament(stats, outDir)
	}
	return nil
}
