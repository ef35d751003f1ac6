// Copyright 2026 The Aether Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tourney aggregates parsed game records into per-player and
// pairwise tournament statistics and derives rankings and dominance
// relations from them.
//
// The aggregated model is built once from a record sequence and is
// read-only afterwards; report and chart rendering consume it without
// mutating it.
package tourney

import (
	"sort"

	"github.com/aetherchess/analysis/gamefmt"
)

// PlayerStats holds the accumulated results of one player.
type PlayerStats struct {
	Name                string
	Wins, Losses, Draws int
	TotalPlies          int
	GamesWithPlies      int
}

// Games returns the total number of games played.
func (p *PlayerStats) Games() int {
	return p.Wins + p.Losses + p.Draws
}

// Score returns the tournament score: 1 per win, ½ per draw.
func (p *PlayerStats) Score() float64 {
	return float64(p.Wins) + 0.5*float64(p.Draws)
}

// ScorePercent returns the score as a percentage of games played,
// or 0 for a player with no games.
func (p *PlayerStats) ScorePercent() float64 {
	if p.Games() == 0 {
		return 0
	}
	return p.Score() / float64(p.Games()) * 100
}

// WinPercent returns the share of games won, or 0 for a player with
// no games.
func (p *PlayerStats) WinPercent() float64 {
	if p.Games() == 0 {
		return 0
	}
	return float64(p.Wins) / float64(p.Games()) * 100
}

// AvgGameLength returns the mean ply count over the player's games
// that recorded a ply count, or 0 if none did.
func (p *PlayerStats) AvgGameLength() float64 {
	if p.GamesWithPlies == 0 {
		return 0
	}
	return float64(p.TotalPlies) / float64(p.GamesWithPlies)
}

// A Cell is one entry of the pairwise crosstable: the win/draw/loss
// tally of the row player against the column player, from the row
// player's perspective.
type Cell struct {
	Wins, Draws, Losses int
}

// Total returns the number of games in the cell.
func (c Cell) Total() int {
	return c.Wins + c.Draws + c.Losses
}

// Score returns the row player's score in the cell.
func (c Cell) Score() float64 {
	return float64(c.Wins) + 0.5*float64(c.Draws)
}

// ScorePercent returns the row player's score percentage in the
// cell. For an empty cell it returns the 50 midpoint, the sentinel
// consumed by renderers; callers that need to distinguish "no games"
// must check Total first.
func (c Cell) ScorePercent() float64 {
	if c.Total() == 0 {
		return 50
	}
	return c.Score() / float64(c.Total()) * 100
}

// Stats is the aggregated tournament model.
type Stats struct {
	// Players is the participant list in sorted order. All ordered
	// output derives its iteration order from this slice, never
	// from map iteration.
	Players []string

	// ByPlayer maps each player to its accumulated statistics.
	// Every name in Players has an entry, including players with
	// zero games.
	ByPlayer map[string]*PlayerStats

	// Pairs is the pairwise crosstable, keyed by row then column
	// player. Self-pairs are never populated and read as zero
	// cells.
	Pairs map[string]map[string]Cell
}

// players returns the union of all white and black identifiers in
// games, sorted.
func players(games []gamefmt.Game) []string {
	seen := make(map[string]bool)
	for i := range games {
		seen[games[i].White] = true
		seen[games[i].Black] = true
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Aggregate folds games into a Stats model. Each game credits exactly
// one win and one loss, or two draws, to its two players, and updates
// the two mirrored crosstable cells in the same pass so the matrix
// stays symmetric by construction.
func Aggregate(games []gamefmt.Game) *Stats {
	s := &Stats{
		Players:  players(games),
		ByPlayer: make(map[string]*PlayerStats),
		Pairs:    make(map[string]map[string]Cell),
	}
	for _, name := range s.Players {
		s.ByPlayer[name] = &PlayerStats{Name: name}
		s.Pairs[name] = make(map[string]Cell)
	}

	for i := range games {
		g := &games[i]
		white, black := s.ByPlayer[g.White], s.ByPlayer[g.Black]
		wb, bw := s.Pairs[g.White][g.Black], s.Pairs[g.Black][g.White]

		switch g.Outcome {
		case gamefmt.WhiteWin:
			white.Wins++
			black.Losses++
			wb.Wins++
			bw.Losses++
		case gamefmt.BlackWin:
			white.Losses++
			black.Wins++
			wb.Losses++
			bw.Wins++
		default:
			white.Draws++
			black.Draws++
			wb.Draws++
			bw.Draws++
		}

		if g.White != g.Black {
			s.Pairs[g.White][g.Black] = wb
			s.Pairs[g.Black][g.White] = bw
		}

		if g.PlyCount > 0 {
			white.TotalPlies += g.PlyCount
			white.GamesWithPlies++
			black.TotalPlies += g.PlyCount
			black.GamesWithPlies++
		}
	}
	return s
}

// Pair returns the crosstable cell for row a against column b.
// The self-pair and pairs that never met read as the zero Cell.
func (s *Stats) Pair(a, b string) Cell {
	return s.Pairs[a][b]
}

// Ranking returns the players sorted by score percentage, best
// first. Players with equal score percentage keep their order in
// s.Players; no secondary key is applied.
func (s *Stats) Ranking() []string {
	order := make([]string, len(s.Players))
	copy(order, s.Players)
	sort.SliceStable(order, func(i, j int) bool {
		return s.ByPlayer[order[i]].ScorePercent() > s.ByPlayer[order[j]].ScorePercent()
	})
	return order
}

// Best and Worst return the first and last entries of the ranking.
// They are only meaningful for a non-empty tournament.

func (s *Stats) Best() string {
	return s.Ranking()[0]
}

func (s *Stats) Worst() string {
	r := s.Ranking()
	return r[len(r)-1]
}

// Dominates reports whether a scored strictly more than 50% in its
// head-to-head games against b. played is false if the two never met
// (or a == b), in which case dominance is undefined in both
// directions and dominates is false.
func (s *Stats) Dominates(a, b string) (dominates, played bool) {
	if a == b {
		return false, false
	}
	c := s.Pair(a, b)
	if c.Total() == 0 {
		return false, false
	}
	return c.Score()/float64(c.Total()) > 0.5, true
}

// Dominated returns the players that a dominates, in ranking order.
func (s *Stats) Dominated(a string) []string {
	var out []string
	for _, b := range s.Ranking() {
		if dom, ok := s.Dominates(a, b); ok && dom {
			out = append(out, b)
		}
	}
	return out
}
