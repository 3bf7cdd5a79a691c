package accretion

import "math"

type gridKey struct {
	group GroupID
	x, y  int
}

// spatialGrid buckets body indices by (group, cell). With a cell at least as wide
// as the largest merge distance, every possible partner of a body lies in the
// 3x3 block of cells around it.
type spatialGrid struct {
	cellSize float64
	cells    map[gridKey][]int
}

func newSpatialGrid() *spatialGrid {
	return &spatialGrid{cells: make(map[gridKey][]int)}
}

// minCellSize keeps tiny particles from spreading over a huge number of cells.
const minCellSize = 10.0

// rebuild resets the buckets and inserts the indices of active for which keep returns true.
// Buckets left empty are dropped, so the map never holds more keys than inserted bodies.
func (g *spatialGrid) rebuild(active []Body, cellSize float64, keep func(*Body) bool) {
	cellSize = math.Max(cellSize, minCellSize)
	if cellSize != g.cellSize {
		clear(g.cells)
		g.cellSize = cellSize
	}
	// keep the slice capacity, only reset length
	for k, v := range g.cells {
		g.cells[k] = v[:0]
	}
	for i := range active {
		b := &active[i]
		if !keep(b) {
			continue
		}
		key := g.keyFor(b)
		g.cells[key] = append(g.cells[key], i)
	}
	for k, v := range g.cells {
		if len(v) == 0 {
			delete(g.cells, k)
		}
	}
}

func (g *spatialGrid) keyFor(b *Body) gridKey {
	return gridKey{
		group: b.Group,
		x:     int(math.Floor(b.Pos.X / g.cellSize)),
		y:     int(math.Floor(b.Pos.Y / g.cellSize)),
	}
}

// neighbours calls fn for every index stored in the 3x3 block around b, same group only.
func (g *spatialGrid) neighbours(b *Body, fn func(j int)) {
	center := g.keyFor(b)
	for i := center.x - 1; i <= center.x+1; i++ {
		for j := center.y - 1; j <= center.y+1; j++ {
			for _, idx := range g.cells[gridKey{group: b.Group, x: i, y: j}] {
				fn(idx)
			}
		}
	}
}
