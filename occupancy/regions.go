package occupancy

// WalkableRegions partitions the Walkable cells into 4-connected regions.
// Regions appear in row-major order of their first cell; cells within a region
// appear in BFS order. A floor plan whose walls split the floor into several
// regions has destinations that are unreachable from some starts.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for visited flags and output.
func (m *Matrix) WalkableRegions() [][]Point {
	seen := make([]bool, m.width*m.height)
	var regions [][]Point

	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if m.cells[y][x] != Walkable {
				continue
			}
			i0 := m.index(x, y)
			if seen[i0] {
				continue
			}
			queue := []int{i0}
			seen[i0] = true
			var region []Point

			for qi := 0; qi < len(queue); qi++ {
				u := m.Coordinate(queue[qi])
				region = append(region, u)
				for _, d := range Neighbors4 {
					v := u.Add(d)
					if !m.Passable(v.X, v.Y) {
						continue
					}
					vi := m.index(v.X, v.Y)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			regions = append(regions, region)
		}
	}

	return regions
}
