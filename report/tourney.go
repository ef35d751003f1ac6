// Copyright 2026 The Aether Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report renders aggregated tournament and benchmark models
// into deterministic text and HTML documents.
//
// The information content of the documents is the compatibility
// contract; the exact byte layout is not, except that repeated runs
// over identical input produce identical bytes. All numbers are
// printed with fixed precision and no locale dependence.
package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/aetherchess/analysis/internal/display"
	"github.com/aetherchess/analysis/tourney"
)

const rule = "----------------------------------------------------------------------"
const doubleRule = "======================================================================"

// FormatTournamentText appends the tournament summary document to
// buf: header, overall ranking, head-to-head breakdown, and
// conclusions with the dominance relation. games and skipped are the
// reader's accepted and rejected record counts.
func FormatTournamentText(buf *bytes.Buffer, s *tourney.Stats, games, skipped int) {
	ranked := s.Ranking()

	labels := make(map[string]string, len(s.Players))
	wid := 0
	for _, p := range s.Players {
		l := display.AlgorithmLabel(p)
		labels[p] = l
		if len(l) > wid {
			wid = len(l)
		}
	}

	fmt.Fprintf(buf, "%s\n", doubleRule)
	fmt.Fprintf(buf, "SEARCH ALGORITHM COMPARISON\n")
	fmt.Fprintf(buf, "Aether chess engine tournament results\n")
	fmt.Fprintf(buf, "%s\n\n", doubleRule)

	if skipped > 0 {
		fmt.Fprintf(buf, "Total games: %d (skipped %d malformed records)\n", games, skipped)
	} else {
		fmt.Fprintf(buf, "Total games: %d\n", games)
	}
	all := make([]string, len(s.Players))
	for i, p := range s.Players {
		all[i] = labels[p]
	}
	fmt.Fprintf(buf, "Algorithms: %s\n\n", strings.Join(all, ", "))

	fmt.Fprintf(buf, "%s\n", rule)
	fmt.Fprintf(buf, "OVERALL RANKING (by score percentage)\n")
	fmt.Fprintf(buf, "%s\n", rule)
	for i, p := range ranked {
		st := s.ByPlayer[p]
		fmt.Fprintf(buf, "  %d. %-*s  Score: %5.1f/%-3d (%5.1f%%)  W/D/L: %d/%d/%d\n",
			i+1, wid, labels[p],
			st.Score(), st.Games(), st.ScorePercent(),
			st.Wins, st.Draws, st.Losses)
	}

	fmt.Fprintf(buf, "\n%s\n", rule)
	fmt.Fprintf(buf, "HEAD-TO-HEAD RESULTS\n")
	fmt.Fprintf(buf, "%s\n", rule)
	for _, p := range ranked {
		fmt.Fprintf(buf, "\n  %s:\n", labels[p])
		for _, opp := range ranked {
			if opp == p {
				continue
			}
			c := s.Pair(p, opp)
			if c.Total() == 0 {
				continue
			}
			fmt.Fprintf(buf, "    vs %-*s  W/D/L: %d/%d/%d  Score: %.1f/%d (%.1f%%)\n",
				wid, labels[opp],
				c.Wins, c.Draws, c.Losses,
				c.Score(), c.Total(), c.ScorePercent())
		}
	}

	anyPlies := false
	for _, p := range ranked {
		if s.ByPlayer[p].GamesWithPlies > 0 {
			anyPlies = true
			break
		}
	}
	if anyPlies {
		fmt.Fprintf(buf, "\n%s\n", rule)
		fmt.Fprintf(buf, "AVERAGE GAME LENGTH\n")
		fmt.Fprintf(buf, "%s\n", rule)
		for _, p := range ranked {
			gameLengthLine(buf, wid, labels[p], s.ByPlayer[p])
		}
	}

	fmt.Fprintf(buf, "\n%s\n", rule)
	fmt.Fprintf(buf, "CONCLUSIONS\n")
	fmt.Fprintf(buf, "%s\n", rule)
	best, worst := s.Best(), s.Worst()
	fmt.Fprintf(buf, "  Best algorithm:  %s (%.1f%%)\n", labels[best], s.ByPlayer[best].ScorePercent())
	fmt.Fprintf(buf, "  Worst algorithm: %s (%.1f%%)\n", labels[worst], s.ByPlayer[worst].ScorePercent())

	fmt.Fprintf(buf, "\n  Dominance (A dominates B if head-to-head score > 50%%):\n")
	for _, p := range ranked {
		dominated := s.Dominated(p)
		if len(dominated) == 0 {
			continue
		}
		for i, d := range dominated {
			dominated[i] = labels[d]
		}
		fmt.Fprintf(buf, "    %s dominates: %s\n", labels[p], strings.Join(dominated, ", "))
	}
}

// Avg game length is reported only for players that recorded plies.
func gameLengthLine(buf *bytes.Buffer, wid int, label string, st *tourney.PlayerStats) {
	if st.GamesWithPlies == 0 {
		return
	}
	fmt.Fprintf(buf, "  %-*s  %.1f plies over %d games\n", wid, label, st.AvgGameLength(), st.GamesWithPlies)
}
