// core/rollfile/parse.go
package rollfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Record is one die file's parsed contents. Description is the first
// line verbatim, terminator included. Counts maps each rolled value to
// the number of times it was rolled; a face that was never rolled is
// absent from the map, not present with a zero count.
type Record struct {
	Path        string
	Description string
	Counts      map[int]int
}

// Name returns the whitespace-trimmed description used for display and
// for keying aggregate results.
func (r Record) Name() string { return strings.TrimSpace(r.Description) }

// Total is the number of roll lines the record was built from.
func (r Record) Total() int {
	n := 0
	for _, c := range r.Counts {
		n += c
	}
	return n
}

// ParseError reports a malformed die file. Line is 1-based; it is 0 when
// the failure is not tied to a specific line (e.g. the file could not be
// opened).
type ParseError struct {
	Path string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

var errEmptyFile = errors.New("empty file: missing description line")

// ParseFile reads one die file: a free-text description line followed by
// one integer roll per line. Any malformed roll line (blank lines
// included) aborts the parse; bad lines are never skipped.
func ParseFile(path string) (Record, error) {
	fh, err := os.Open(path)
	if err != nil {
		return Record{}, &ParseError{Path: path, Err: err}
	}
	defer func() { _ = fh.Close() }()

	rd := bufio.NewReader(fh)

	desc, err := rd.ReadString('\n')
	if err == io.EOF && desc == "" {
		return Record{}, &ParseError{Path: path, Err: errEmptyFile}
	}
	if err != nil && err != io.EOF {
		return Record{}, &ParseError{Path: path, Line: 1, Err: err}
	}

	rec := Record{Path: path, Description: desc, Counts: map[int]int{}}

	ln := 1
	for {
		line, err := rd.ReadString('\n')
		if line == "" && err == io.EOF {
			break
		}
		if err != nil && err != io.EOF {
			return Record{}, &ParseError{Path: path, Line: ln + 1, Err: err}
		}
		ln++
		v, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr != nil {
			return Record{}, &ParseError{Path: path, Line: ln, Err: convErr}
		}
		rec.Counts[v]++
		if err == io.EOF {
			break
		}
	}
	return rec, nil
}
