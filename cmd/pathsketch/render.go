package main

import (
	"bufio"
	"io"

	"github.com/katalvlaran/pathsketch/cell"
	"github.com/katalvlaran/pathsketch/grid"
)

// Map glyphs. Path cells use 'a'+ColorIndex; later paths draw over earlier ones.
const (
	glyphFree     = '.'
	glyphOrdinary = '#'
	glyphPaired   = '+'
	glyphStart    = 'S'
	glyphEnd      = 'E'
)

// render writes one row per grid line, top row first.
func render(w io.Writer, g *grid.Grid) error {
	rows := make([][]byte, g.Height())
	for y := range rows {
		rows[y] = make([]byte, g.Width())
		for x := range rows[y] {
			rows[y][x] = glyphFree
		}
	}
	put := func(c cell.Cell, b byte) {
		if g.Contains(c) {
			rows[c.Y-1][c.X-1] = b
		}
	}
	for _, c := range g.Occupied() {
		if g.IsPaired(c) {
			put(c, glyphPaired)
		} else {
			put(c, glyphOrdinary)
		}
	}
	for _, p := range g.Paths() {
		for _, c := range p.Cells {
			put(c, byte('a'+p.ColorIndex()))
		}
	}
	if c, ok := g.Start(); ok {
		put(c, glyphStart)
	}
	if c, ok := g.End(); ok {
		put(c, glyphEnd)
	}

	bw := bufio.NewWriter(w)
	for _, row := range rows {
		bw.Write(row)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
