package gridworld

import "strings"

// Render draws g one row per line: '#' for walls, 'S' and 'G' for the ends
// of path, '*' for its interior cells and '.' for everything else.
func (g *Grid) Render(path []Cell) string {
	mark := make(map[Cell]byte, len(path))
	for i, c := range path {
		switch i {
		case 0:
			mark[c] = 'S'
		case len(path) - 1:
			mark[c] = 'G'
		default:
			mark[c] = '*'
		}
	}

	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := Cell{X: x, Y: y}
			switch m, ok := mark[c]; {
			case ok:
				b.WriteByte(m)
			case !g.Passable(c):
				b.WriteByte('#')
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
