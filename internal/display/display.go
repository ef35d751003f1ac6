// Copyright 2026 The Aether Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package display maps participant and phase identifiers to display
// labels and chart colors. The lookup tables are built once and never
// mutated; unknown identifiers fall back to the identifier itself and
// a neutral gray, so a new algorithm shows up in reports and charts
// without any registration step.
package display

import "image/color"

var algorithmLabels = map[string]string{
	"FullAlphaBeta": "Alpha-Beta (full)",
	"PureAlphaBeta": "Alpha-Beta (pure)",
	"NegaScout":     "NegaScout",
	"MTDf":          "MTD(f)",
	"MCTS":          "MCTS",
	"ClassicMCTS":   "MCTS (classic)",

	// Benchmark CSVs use the long names.
	"Pure Alpha-Beta": "Alpha-Beta (pure)",
	"Full Alpha-Beta": "Alpha-Beta (full)",
	"Classic MCTS":    "MCTS (classic)",
}

var algorithmColors = map[string]color.RGBA{
	"FullAlphaBeta": rgb(0x2ecc71),
	"PureAlphaBeta": rgb(0x27ae60),
	"NegaScout":     rgb(0x3498db),
	"MTDf":          rgb(0x9b59b6),
	"MCTS":          rgb(0xe74c3c),
	"ClassicMCTS":   rgb(0xc0392b),

	"Pure Alpha-Beta": rgb(0x27ae60),
	"Full Alpha-Beta": rgb(0x2ecc71),
	"Classic MCTS":    rgb(0xc0392b),
}

var phaseLabels = map[string]string{
	"opening":    "Opening",
	"middlegame": "Middlegame",
	"endgame":    "Endgame",
}

var phaseColors = map[string]color.RGBA{
	"opening":    rgb(0x3498db),
	"middlegame": rgb(0xf39c12),
	"endgame":    rgb(0xe74c3c),
}

// Neutral fallback for identifiers without an assigned color.
var fallbackColor = rgb(0x7f8c8d)

// Outcome slice colors shared by win/draw/loss charts.
var (
	WinColor  = rgb(0x2ecc71)
	DrawColor = rgb(0xf39c12)
	LossColor = rgb(0xe74c3c)
)

func rgb(v uint32) color.RGBA {
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}
}

// AlgorithmLabel returns the display label for an algorithm
// identifier, or the identifier itself.
func AlgorithmLabel(id string) string {
	if l, ok := algorithmLabels[id]; ok {
		return l
	}
	return id
}

// AlgorithmColor returns the chart color for an algorithm identifier,
// or a neutral gray.
func AlgorithmColor(id string) color.RGBA {
	if c, ok := algorithmColors[id]; ok {
		return c
	}
	return fallbackColor
}

// PhaseLabel returns the display label for a game phase, or the
// phase identifier itself.
func PhaseLabel(phase string) string {
	if l, ok := phaseLabels[phase]; ok {
		return l
	}
	return phase
}

// PhaseColor returns the chart color for a game phase, or a neutral
// gray.
func PhaseColor(phase string) color.RGBA {
	if c, ok := phaseColors[phase]; ok {
		return c
	}
	return fallbackColor
}
