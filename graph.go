package carve

import "math"

// Point is the (x, y) position of a single seam pixel.
type Point struct {
	X int
	Y int
}

// Seam is a connected top-to-bottom path of pixels, exactly one per row,
// where the columns of adjacent rows differ by at most one.
type Seam []Point

// node is the per-pixel record of the seam search: the cumulative shortest
// distance from the top row, the pixel's own energy and a finalized flag.
// Once a node is finalized its distance is never revisited.
type node struct {
	x, y      int
	dist      float64
	energy    float64
	finalized bool
}

// SeamGraph is an implicit weighted DAG over the energy map: every pixel
// connects to its up-to-three neighbors in the row below (down-left, down,
// down-right, clipped at the grid edges). All edges point strictly from row
// y to row y+1, so the graph is layered by row and has no cycles.
//
// The node array is rebuilt for every search; nothing persists across
// seam-removal iterations.
type SeamGraph struct {
	width  int
	height int
	nodes  []node
}

// NewSeamGraph builds the search graph over the given energy map.
// Row 0 nodes start with their own energy as distance, every other node
// starts at +Inf.
func NewSeamGraph(e *EnergyMap) (*SeamGraph, error) {
	if e == nil || e.Width == 0 || e.Height == 0 {
		return nil, ErrInvalidDimension
	}
	g := &SeamGraph{
		width:  e.Width,
		height: e.Height,
		nodes:  make([]node, e.Width*e.Height),
	}
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			n := g.at(x, y)
			n.x, n.y = x, y
			n.energy = e.At(x, y)
			if y == 0 {
				n.dist = n.energy
			} else {
				n.dist = math.Inf(1)
			}
		}
	}
	return g, nil
}

func (g *SeamGraph) at(x, y int) *node {
	return &g.nodes[x+y*g.width]
}

// FindSeam runs the shortest-path search and returns the minimum-energy
// vertical seam together with its total energy.
//
// The relaxation sweeps the layered DAG row by row: each node relaxes its
// successors in the next row and is then finalized. Since every edge goes
// from row y to row y+1, a row is complete before the next one is read,
// which yields the same distances as the queue-based single-source
// relaxation it replaces. On equal distances the bottom-row endpoint is the
// leftmost minimum, and path reconstruction prefers the up-left, up,
// up-right predecessor in that order.
func (g *SeamGraph) FindSeam() (Seam, float64) {
	for y := 0; y < g.height-1; y++ {
		for x := 0; x < g.width; x++ {
			cur := g.at(x, y)
			for nx := x - 1; nx <= x+1; nx++ {
				if nx < 0 || nx > g.width-1 {
					continue
				}
				succ := g.at(nx, y+1)
				if succ.finalized {
					continue
				}
				if d := cur.dist + succ.energy; d < succ.dist {
					succ.dist = d
				}
			}
			cur.finalized = true
		}
	}
	for x := 0; x < g.width; x++ {
		g.at(x, g.height-1).finalized = true
	}

	// Pick the bottom row endpoint with the lowest cumulative energy.
	end := g.at(0, g.height-1)
	for x := 1; x < g.width; x++ {
		if n := g.at(x, g.height-1); n.dist < end.dist {
			end = n
		}
	}

	// Walk the path back to the top row through the cheapest predecessor.
	seam := make(Seam, g.height)
	seam[g.height-1] = Point{X: end.x, Y: end.y}

	px := end.x
	for y := g.height - 2; y >= 0; y-- {
		var best *node
		for nx := px - 1; nx <= px+1; nx++ {
			if nx < 0 || nx > g.width-1 {
				continue
			}
			if n := g.at(nx, y); best == nil || n.dist < best.dist {
				best = n
			}
		}
		px = best.x
		seam[y] = Point{X: px, Y: y}
	}
	return seam, end.dist
}
