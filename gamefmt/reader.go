// Copyright 2026 The Aether Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gamefmt

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// A Reader reads game records from a tagged tournament log.
//
// Its API is modeled on bufio.Scanner: the caller repeatedly calls
// Scan and reads the current record with Result. The returned Game is
// owned by the Reader and overwritten by the next call to Scan; a
// caller that retains records must copy them.
//
// Blocks missing a mandatory tag (White, Black, Result) are skipped,
// not surfaced as errors; Skipped reports how many were dropped so
// callers can account for them.
type Reader struct {
	s        *bufio.Scanner
	fileName string
	line     int
	policy   OutcomePolicy

	// Current block being accumulated.
	open      bool
	blockLine int
	tags      map[string]string

	game    Game
	err     error
	done    bool
	parsed  int
	skipped int
}

// NewReader constructs a Reader that parses the tagged game log from r.
// fileName is used in record positions; it is purely diagnostic.
// The Reader decodes results with LenientOutcome unless
// SetOutcomePolicy is called before the first Scan.
func NewReader(r io.Reader, fileName string) *Reader {
	if fileName == "" {
		fileName = "<unknown>"
	}
	return &Reader{
		s:        bufio.NewScanner(r),
		fileName: fileName,
		policy:   LenientOutcome,
		tags:     make(map[string]string),
	}
}

// SetOutcomePolicy sets the policy used to decode result tags.
// Records rejected by the policy count as skipped.
func (r *Reader) SetOutcomePolicy(p OutcomePolicy) {
	r.policy = p
}

// Scan advances the reader to the next accepted game record and
// reports whether one was read. When Scan returns false, the caller
// should use Err to distinguish end of input from an I/O error.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}

	for !r.done {
		if !r.s.Scan() {
			r.err = r.s.Err()
			r.done = true
			break
		}
		r.line++
		// Invalid byte sequences are substituted, not fatal.
		// Garbled tag values still parse; a garbled mandatory
		// tag key makes the block malformed, which is skipped
		// like any other malformed block.
		line := strings.ToValidUTF8(r.s.Text(), "�")

		key, val, isTag := parseTag(line)
		if !isTag {
			// Move text and blank lines carry no fields.
			continue
		}
		if key == "Event" && r.open {
			// An Event tag begins the next record.
			ok := r.finish()
			r.start()
			r.tags[key] = val
			if ok {
				return true
			}
			continue
		}
		if !r.open {
			r.start()
		}
		r.tags[key] = val
	}

	// Flush the final block, unless the input failed mid-stream,
	// in which case the block may be truncated and is discarded.
	if r.open {
		r.open = false
		if r.err == nil && r.finish() {
			return true
		}
	}
	return false
}

// Result returns the record read by the latest call to Scan.
func (r *Reader) Result() *Game {
	return &r.game
}

// Err returns the first I/O error encountered by the Reader.
func (r *Reader) Err() error {
	return r.err
}

// Parsed returns the number of records accepted so far.
func (r *Reader) Parsed() int {
	return r.parsed
}

// Skipped returns the number of blocks dropped so far because a
// mandatory tag was missing or the result was rejected by the
// outcome policy.
func (r *Reader) Skipped() int {
	return r.skipped
}

// start opens a fresh block at the current line.
func (r *Reader) start() {
	r.open = true
	r.blockLine = r.line
	for k := range r.tags {
		delete(r.tags, k)
	}
}

// finish validates the accumulated block and, if it is a well-formed
// record, stores it as the current Game. It reports whether a record
// was produced.
func (r *Reader) finish() bool {
	white, okW := r.tags["White"]
	black, okB := r.tags["Black"]
	result, okR := r.tags["Result"]
	if !okW || !okB || !okR {
		r.skipped++
		return false
	}
	outcome, ok := r.policy(result)
	if !ok {
		r.skipped++
		return false
	}

	plies := 0
	if s, ok := r.tags["PlyCount"]; ok {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			plies = n
		}
	}

	r.game = Game{
		White:       white,
		Black:       black,
		Outcome:     outcome,
		Termination: r.tags["Termination"],
		PlyCount:    plies,
		TimeControl: r.tags["TimeControl"],
		OpeningFEN:  r.tags["FEN"],
		fileName:    r.fileName,
		line:        r.blockLine,
	}
	r.parsed++
	return true
}

// parseTag parses a `[Key "Value"]` tag pair line. Surrounding
// whitespace is ignored. Lines that do not have the tag shape report
// isTag == false and are not an error.
func parseTag(line string) (key, val string, isTag bool) {
	line = strings.TrimSpace(line)
	if len(line) < 2 || line[0] != '[' {
		return "", "", false
	}
	i := strings.IndexByte(line, ' ')
	if i < 0 {
		return "", "", false
	}
	key = line[1:i]
	if key == "" {
		return "", "", false
	}
	open := strings.IndexByte(line[i:], '"')
	if open < 0 {
		return "", "", false
	}
	open += i
	end := strings.LastIndexByte(line, '"')
	if end <= open {
		return "", "", false
	}
	return key, line[open+1 : end], true
}
