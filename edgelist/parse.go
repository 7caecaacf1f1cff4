package edgelist

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/pathsketch/cell"
)

// Parse scans text for path sections and returns them in input order.
// Text without any header yields no sections and no error.
//
// Lines inside a section that are not well-formed edges end the section;
// they are not errors. The only failure is a header whose index cannot be
// read, reported as ErrInvalidInput.
func Parse(text string) ([]Section, error) {
	var out []Section
	rest := text

	for {
		i := strings.Index(rest, HeaderPrefix)
		if i < 0 {
			break
		}
		label, after, err := header(rest[i+len(HeaderPrefix):])
		if err != nil {
			return nil, err
		}
		rest = after

		sec := Section{Label: label}
		for rest != "" {
			line, next := splitLine(rest)
			e, ok := edgeLine(line)
			if !ok {
				break
			}
			sec.Edges = append(sec.Edges, e)
			rest = next
		}
		out = append(out, sec)
	}

	return out, nil
}

// ParseReader reads r to the end and parses the result.
func ParseReader(r io.Reader) ([]Section, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("edgelist: read: %w", err)
	}
	return Parse(string(b))
}

// header parses "N ---" plus optional trailing blanks up to the end of the
// line, and returns the index with the text following the header line.
func header(s string) (int, string, error) {
	n := digits(s)
	if n == 0 {
		return 0, "", fmt.Errorf("%w: header index is not a number", ErrInvalidInput)
	}
	label, err := strconv.Atoi(s[:n])
	if err != nil {
		return 0, "", fmt.Errorf("%w: header index %q: %v", ErrInvalidInput, s[:n], err)
	}
	s = s[n:]
	if !strings.HasPrefix(s, HeaderSuffix) {
		return 0, "", fmt.Errorf("%w: header %d is not closed by %q", ErrInvalidInput, label, HeaderSuffix)
	}
	line, rest := splitLine(s[len(HeaderSuffix):])
	if strings.Trim(line, " \t") != "" {
		return 0, "", fmt.Errorf("%w: trailing text after header %d", ErrInvalidInput, label)
	}
	return label, rest, nil
}

// splitLine cuts s at the first newline; a trailing '\r' is dropped from line.
func splitLine(s string) (line, rest string) {
	i := strings.IndexByte(s, '\n')
	if i < 0 {
		line, rest = s, ""
	} else {
		line, rest = s[:i], s[i+1:]
	}
	return strings.TrimSuffix(line, "\r"), rest
}

// edgeLine recognizes one "(X,Y) -> (X,Y)" line.
func edgeLine(line string) (Edge, bool) {
	lx := lexer{s: line}
	lx.blanks()
	from, ok := lx.cell()
	if !ok {
		return Edge{}, false
	}
	lx.blanks()
	if !lx.literal(Arrow) {
		return Edge{}, false
	}
	lx.blanks()
	to, ok := lx.cell()
	if !ok {
		return Edge{}, false
	}
	lx.blanks()
	if !lx.done() {
		return Edge{}, false
	}
	return Edge{From: from, To: to}, true
}

type lexer struct {
	s   string
	pos int
}

func (lx *lexer) done() bool {
	return lx.pos == len(lx.s)
}

func (lx *lexer) blanks() {
	for lx.pos < len(lx.s) && (lx.s[lx.pos] == ' ' || lx.s[lx.pos] == '\t') {
		lx.pos++
	}
}

func (lx *lexer) literal(tok string) bool {
	if !strings.HasPrefix(lx.s[lx.pos:], tok) {
		return false
	}
	lx.pos += len(tok)
	return true
}

func (lx *lexer) number() (int, bool) {
	n := digits(lx.s[lx.pos:])
	if n == 0 {
		return 0, false
	}
	v, err := strconv.Atoi(lx.s[lx.pos : lx.pos+n])
	if err != nil {
		return 0, false
	}
	lx.pos += n
	return v, true
}

// cell reads "(X,Y)"; blanks are allowed after the comma only.
func (lx *lexer) cell() (cell.Cell, bool) {
	if !lx.literal("(") {
		return cell.Cell{}, false
	}
	x, ok := lx.number()
	if !ok || !lx.literal(",") {
		return cell.Cell{}, false
	}
	lx.blanks()
	y, ok := lx.number()
	if !ok || !lx.literal(")") {
		return cell.Cell{}, false
	}
	return cell.New(x, y), true
}

// digits returns the length of the leading run of ASCII digits in s.
func digits(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}
