// Copyright 2026 The Aether Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gamefmt provides a reader for tagged tournament game logs.
//
// A game log is a sequence of game records. Each record is a block of
// bracketed `[Key "Value"]` tag pairs followed by optional move text.
// A new record begins at each Event tag. The reader is tolerant: it
// skips blocks that lack a mandatory tag and substitutes invalid byte
// sequences instead of failing the whole file.
//
// This package is designed to be used with the higher-level packages
// tourney, report, and chart.
package gamefmt

// An Outcome is the decoded result of a single game.
type Outcome int

const (
	// UnknownOutcome is the zero Outcome. It never appears in
	// games produced by a Reader; decoding always yields one of
	// the three concrete outcomes or rejects the record.
	UnknownOutcome Outcome = iota
	WhiteWin
	BlackWin
	Draw
)

func (o Outcome) String() string {
	switch o {
	case WhiteWin:
		return "1-0"
	case BlackWin:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	}
	return "?"
}

// An OutcomePolicy decodes a result tag string into an Outcome.
// It reports ok == false if the string is not a legal result under
// this policy, in which case the record is treated as malformed.
//
// Decoding happens exactly once, at parse time. Aggregation never
// sees result strings.
type OutcomePolicy func(s string) (o Outcome, ok bool)

// LenientOutcome decodes "1-0" and "0-1" as wins and every other
// string, including "1/2-1/2", "*", and truncated or garbled results,
// as a draw. This matches the historical behavior of the tournament
// scripts and is the default policy of a Reader.
func LenientOutcome(s string) (Outcome, bool) {
	switch s {
	case "1-0":
		return WhiteWin, true
	case "0-1":
		return BlackWin, true
	}
	return Draw, true
}

// StrictOutcome decodes only the three canonical result strings and
// rejects everything else, so that a truncated record cannot be
// silently counted as a draw.
func StrictOutcome(s string) (Outcome, bool) {
	switch s {
	case "1-0":
		return WhiteWin, true
	case "0-1":
		return BlackWin, true
	case "1/2-1/2":
		return Draw, true
	}
	return UnknownOutcome, false
}

// A Game is a single parsed game record.
//
// White, Black, and Outcome are always set; the remaining fields
// default to their zero values when the source block omits them.
type Game struct {
	// White and Black are the participant identifiers of the two
	// sides.
	White, Black string

	// Outcome is the decoded game result.
	Outcome Outcome

	// Termination describes how the game ended, if recorded.
	Termination string

	// PlyCount is the length of the game in plies, or 0 if the
	// block carried no PlyCount tag. Games with PlyCount 0 are
	// excluded from average-length statistics rather than counted
	// as zero-length.
	PlyCount int

	// TimeControl is the time control tag, if recorded.
	TimeControl string

	// OpeningFEN is the starting position tag, if recorded.
	OpeningFEN string

	fileName string
	line     int
}

// Pos returns the file name and first line number of the block this
// Game was read from. For Games that were not read by a Reader, it
// returns "", 0.
func (g *Game) Pos() (fileName string, line int) {
	return g.fileName, g.line
}
