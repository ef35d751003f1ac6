// Copyright 2026 The Aether Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gamefmt

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

// parseAll reads every accepted record from data, wiping position
// information for comparisons.
func parseAll(t *testing.T, data string, setup ...func(r *Reader)) ([]Game, *Reader) {
	t.Helper()
	r := NewReader(strings.NewReader(data), "test")
	for _, f := range setup {
		f(r)
	}
	var out []Game
	for r.Scan() {
		g := *r.Result()
		g.fileName, g.line = "", 0
		out = append(out, g)
	}
	if err := r.Err(); err != nil {
		t.Fatal("parsing failed: ", err)
	}
	return out, r
}

func TestReader(t *testing.T) {
	games, r := parseAll(t, `[Event "Aether ELO test"]
[White "MTDf"]
[Black "MCTS"]
[Result "1-0"]
[Termination "checkmate"]
[PlyCount "73"]
[TimeControl "500ms"]
[FEN "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"]

1. e4 e5 2. Nf3 Nc6 1-0

[Event "Aether ELO test"]
[White "MCTS"]
[Black "MTDf"]
[Result "0-1"]

1. d4 d5 0-1
`)
	want := []Game{
		{
			White:       "MTDf",
			Black:       "MCTS",
			Outcome:     WhiteWin,
			Termination: "checkmate",
			PlyCount:    73,
			TimeControl: "500ms",
			OpeningFEN:  "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		},
		{White: "MCTS", Black: "MTDf", Outcome: BlackWin},
	}
	if !reflect.DeepEqual(games, want) {
		t.Errorf("got %+v, want %+v", games, want)
	}
	if r.Parsed() != 2 || r.Skipped() != 0 {
		t.Errorf("got parsed %d skipped %d, want 2, 0", r.Parsed(), r.Skipped())
	}
}

func TestReaderPos(t *testing.T) {
	r := NewReader(strings.NewReader(`[Event "t"]
[White "A"]
[Black "B"]
[Result "1-0"]

[Event "t"]
[White "A"]
[Black "B"]
[Result "0-1"]
`), "games.pgn")
	var lines []int
	for r.Scan() {
		_, line := r.Result().Pos()
		lines = append(lines, line)
	}
	if want := []int{1, 6}; !reflect.DeepEqual(lines, want) {
		t.Errorf("got block lines %v, want %v", lines, want)
	}
}

func TestSkipMissingMandatory(t *testing.T) {
	games, r := parseAll(t, `[Event "t"]
[White "A"]
[Result "1-0"]

[Event "t"]
[White "A"]
[Black "B"]
[Result "1-0"]
`)
	if len(games) != 1 || games[0].Black != "B" {
		t.Fatalf("got %+v, want one A-B game", games)
	}
	if r.Skipped() != 1 {
		t.Errorf("got %d skipped, want 1", r.Skipped())
	}
}

func TestUnknownResultIsDraw(t *testing.T) {
	// The default policy maps every non-win result string,
	// including "*", to a draw.
	games, r := parseAll(t, `[Event "t"]
[White "A"]
[Black "B"]
[Result "*"]
`)
	if len(games) != 1 || games[0].Outcome != Draw {
		t.Fatalf("got %+v, want one drawn game", games)
	}
	if r.Skipped() != 0 {
		t.Errorf("got %d skipped, want 0", r.Skipped())
	}
}

func TestStrictOutcomePolicy(t *testing.T) {
	games, r := parseAll(t, `[Event "t"]
[White "A"]
[Black "B"]
[Result "*"]

[Event "t"]
[White "A"]
[Black "B"]
[Result "1/2-1/2"]
`, func(r *Reader) { r.SetOutcomePolicy(StrictOutcome) })
	if len(games) != 1 || games[0].Outcome != Draw {
		t.Fatalf("got %+v, want one drawn game", games)
	}
	if r.Skipped() != 1 {
		t.Errorf("got %d skipped, want 1", r.Skipped())
	}
}

func TestInvalidUTF8(t *testing.T) {
	games, _ := parseAll(t, "[Event \"t\"]\n[White \"A\xffB\"]\n[Black \"C\"]\n[Result \"1-0\"]\n")
	if len(games) != 1 {
		t.Fatalf("got %d games, want 1", len(games))
	}
	if want := "A�B"; games[0].White != want {
		t.Errorf("got white %q, want %q", games[0].White, want)
	}
}

func TestBadPlyCount(t *testing.T) {
	games, _ := parseAll(t, `[Event "t"]
[White "A"]
[Black "B"]
[Result "1-0"]
[PlyCount "many"]
`)
	if len(games) != 1 || games[0].PlyCount != 0 {
		t.Fatalf("got %+v, want one game with PlyCount 0", games)
	}
}

// failingReader yields its data and then a read error, like a file
// truncated by an I/O failure.
type failingReader struct {
	data string
	err  error
	off  int
}

func (r *failingReader) Read(p []byte) (int, error) {
	if r.off >= len(r.data) {
		return 0, r.err
	}
	n := copy(p, r.data[r.off:])
	r.off += n
	return n, nil
}

func TestReadError(t *testing.T) {
	// The block open when the input fails may be truncated; it must
	// be discarded, not returned as a record.
	readErr := errors.New("read failed")
	r := NewReader(&failingReader{data: `[Event "t"]
[White "A"]
[Black "B"]
[Result "1-0"]
`, err: readErr}, "test")
	for r.Scan() {
		t.Errorf("got record %+v after input failure", r.Result())
	}
	if err := r.Err(); err != readErr {
		t.Fatalf("got error %v, want %v", err, readErr)
	}
	if r.Parsed() != 0 {
		t.Errorf("got %d parsed, want 0", r.Parsed())
	}
}

func TestParseTag(t *testing.T) {
	tests := []struct {
		line     string
		key, val string
		isTag    bool
	}{
		{`[White "MTDf"]`, "White", "MTDf", true},
		{`  [White "MTDf"]  `, "White", "MTDf", true},
		{`[Opening "King's \"Gambit\""]`, "Opening", `King's \"Gambit\"`, true},
		{`[Result ""]`, "Result", "", true},
		{`1. e4 e5 2. Nf3`, "", "", false},
		{`[incomplete`, "", "", false},
		{`[NoValue ]`, "", "", false},
		{``, "", "", false},
	}
	for _, test := range tests {
		key, val, isTag := parseTag(test.line)
		if key != test.key || val != test.val || isTag != test.isTag {
			t.Errorf("parseTag(%q) = %q, %q, %v, want %q, %q, %v",
				test.line, key, val, isTag, test.key, test.val, test.isTag)
		}
	}
}

func TestOutcomePolicies(t *testing.T) {
	lenient := map[string]Outcome{
		"1-0": WhiteWin, "0-1": BlackWin, "1/2-1/2": Draw, "*": Draw, "": Draw,
	}
	for s, want := range lenient {
		if got, ok := LenientOutcome(s); !ok || got != want {
			t.Errorf("LenientOutcome(%q) = %v, %v, want %v, true", s, got, ok, want)
		}
	}
	if _, ok := StrictOutcome("*"); ok {
		t.Error("StrictOutcome(\"*\") accepted, want rejected")
	}
}
