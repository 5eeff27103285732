package main

import (
	"strings"

	"github.com/katalvlaran/splitgrow/core"
)

// Glyphs used by draw.
const (
	glyphWhite = 'o'
	glyphBlack = '#'
	glyphHoriz = '-'
	glyphVert  = '|'
)

// draw renders g as ASCII art: nodes on even rows and columns, edges in the
// cells between them. Rows grow downwards with y.
func draw(g *core.Graph) string {
	if g.Len() == 0 {
		return ""
	}
	lo, hi := g.NodeAt(0).Pos(), g.NodeAt(0).Pos()
	for _, n := range g.Nodes() {
		lo.X, lo.Y = min(lo.X, n.GX), min(lo.Y, n.GY)
		hi.X, hi.Y = max(hi.X, n.GX), max(hi.Y, n.GY)
	}

	rows, cols := 2*(hi.Y-lo.Y)+1, 2*(hi.X-lo.X)+1
	canvas := make([][]rune, rows)
	for r := range canvas {
		canvas[r] = []rune(strings.Repeat(" ", cols))
	}
	at := func(p core.Point) (int, int) { return 2 * (p.Y - lo.Y), 2 * (p.X - lo.X) }

	for _, n := range g.Nodes() {
		r, c := at(n.Pos())
		canvas[r][c] = glyphWhite
		if n.Color == core.Black {
			canvas[r][c] = glyphBlack
		}
	}
	for _, e := range g.Edges() {
		u, _ := g.Node(e.U)
		v, _ := g.Node(e.V)
		r1, c1 := at(u.Pos())
		r2, c2 := at(v.Pos())
		glyph := glyphHoriz
		if r1 != r2 {
			glyph = glyphVert
		}
		canvas[(r1+r2)/2][(c1+c2)/2] = glyph
	}

	var sb strings.Builder
	for _, row := range canvas {
		sb.WriteString(strings.TrimRight(string(row), " "))
		sb.WriteByte('\n')
	}

	return sb.String()
}
