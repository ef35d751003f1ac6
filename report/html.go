// Copyright 2026 The Aether Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"fmt"
	"io"

	"github.com/google/safehtml/template"

	"github.com/aetherchess/analysis/internal/display"
	"github.com/aetherchess/analysis/tourney"
)

var tournamentTemplate = template.Must(template.New("tournament").ParseFromTrustedTemplate(template.MakeTrustedTemplate(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Tournament results</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; margin: 1em 0; }
th, td { border: 1px solid #ccc; padding: 0.3em 0.6em; text-align: right; }
th:first-child, td:first-child { text-align: left; }
.self { background: #eee; }
</style>
</head>
<body>
<h1>Tournament results</h1>
<p>Total games: {{.Games}}{{if .Skipped}} (skipped {{.Skipped}} malformed records){{end}}</p>

<h2>Ranking</h2>
<table>
<tr><th>#</th><th>Algorithm</th><th>Score</th><th>%</th><th>W</th><th>D</th><th>L</th></tr>
{{range .Rows -}}
<tr><td>{{.Rank}}</td><td>{{.Label}}</td><td>{{.Score}}</td><td>{{.Percent}}</td><td>{{.Wins}}</td><td>{{.Draws}}</td><td>{{.Losses}}</td></tr>
{{end -}}
</table>

<h2>Crosstable</h2>
<table>
<tr><th>Algorithm</th>{{range .Labels}}<th>{{.}}</th>{{end}}</tr>
{{range .Cross -}}
<tr><td>{{.Label}}</td>{{range .Cells}}<td{{if .Self}} class="self"{{end}}>{{.Text}}</td>{{end}}</tr>
{{end -}}
</table>
</body>
</html>
`)))

type htmlRankRow struct {
	Rank                int
	Label               string
	Score               string
	Percent             string
	Wins, Draws, Losses int
}

type htmlCrossCell struct {
	Text string
	Self bool
}

type htmlCrossRow struct {
	Label string
	Cells []htmlCrossCell
}

type htmlTournament struct {
	Games, Skipped int
	Rows           []htmlRankRow
	Labels         []string
	Cross          []htmlCrossRow
}

// FormatTournamentHTML writes the tournament summary as an HTML
// document: the ranked table and the full crosstable.
func FormatTournamentHTML(w io.Writer, s *tourney.Stats, games, skipped int) error {
	return tournamentTemplate.Execute(w, buildHTMLTournament(s, games, skipped))
}

// buildHTMLTournament is the pure data-preparation step behind
// FormatTournamentHTML.
func buildHTMLTournament(s *tourney.Stats, games, skipped int) *htmlTournament {
	ranked := s.Ranking()
	data := &htmlTournament{Games: games, Skipped: skipped}

	for i, p := range ranked {
		st := s.ByPlayer[p]
		data.Rows = append(data.Rows, htmlRankRow{
			Rank:    i + 1,
			Label:   display.AlgorithmLabel(p),
			Score:   fmt.Sprintf("%.1f/%d", st.Score(), st.Games()),
			Percent: fmt.Sprintf("%.1f%%", st.ScorePercent()),
			Wins:    st.Wins,
			Draws:   st.Draws,
			Losses:  st.Losses,
		})
		data.Labels = append(data.Labels, display.AlgorithmLabel(p))
	}

	for _, p := range ranked {
		row := htmlCrossRow{Label: display.AlgorithmLabel(p)}
		for _, opp := range ranked {
			switch c := s.Pair(p, opp); {
			case p == opp:
				row.Cells = append(row.Cells, htmlCrossCell{Text: "X", Self: true})
			case c.Total() == 0:
				row.Cells = append(row.Cells, htmlCrossCell{Text: "-"})
			default:
				row.Cells = append(row.Cells, htmlCrossCell{
					Text: fmt.Sprintf("%.1f/%d", c.Score(), c.Total()),
				})
			}
		}
		data.Cross = append(data.Cross, row)
	}
	return data
}
