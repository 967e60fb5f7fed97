package gridworld

// Labels assigns every passable cell a component number starting at 1;
// walls carry 0.
type Labels struct {
	width int
	ids   []int
	count int
}

// Count returns the number of components.
func (l Labels) Count() int { return l.count }

// Of returns the component of c, or 0 for walls and out-of-bounds cells.
func (l Labels) Of(c Cell) int {
	if c.X < 0 || c.X >= l.width || c.Y < 0 {
		return 0
	}
	i := c.Y*l.width + c.X
	if i >= len(l.ids) {
		return 0
	}
	return l.ids[i]
}

// Components labels the connected regions of passable cells under the
// grid's move rule, scanning row-major so labels are deterministic.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H).
func (g *Grid) Components() Labels {
	l := Labels{width: g.width, ids: make([]int, g.width*g.height)}

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c0 := Cell{X: x, Y: y}
			if !g.Passable(c0) || l.ids[g.index(c0)] != 0 {
				continue
			}
			l.count++
			// BFS flood fill
			queue := []Cell{c0}
			l.ids[g.index(c0)] = l.count
			for qi := 0; qi < len(queue); qi++ {
				for _, n := range g.Neighbors(queue[qi]) {
					if i := g.index(n); l.ids[i] == 0 {
						l.ids[i] = l.count
						queue = append(queue, n)
					}
				}
			}
		}
	}

	return l
}

// index maps c to a row-major index: y*width + x.
func (g *Grid) index(c Cell) int { return c.Y*g.width + c.X }
