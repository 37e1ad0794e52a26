package geom

// Components counts the connected pieces of the region. Two spans connect
// when their bands share a y edge and their x intervals overlap with
// positive length; corner contact alone does not connect.
//
// Time: O(S α(S)) for S spans, via union-find over span indices.
func (r Region) Components() int {
	total := 0
	offsets := make([]int, len(r.bands)) // first span index of each band
	for i, b := range r.bands {
		offsets[i] = total
		total += len(b.spans)
	}
	if total == 0 {
		return 0
	}

	parent := make([]int, total)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		for parent[i] != i {
			parent[i] = parent[parent[i]] // path halving
			i = parent[i]
		}

		return i
	}
	union := func(i, j int) {
		ri, rj := find(i), find(j)
		if ri != rj {
			parent[rj] = ri
		}
	}

	// Link spans of each pair of y-adjacent bands with positive x overlap.
	for bi := 0; bi+1 < len(r.bands); bi++ {
		cur, next := r.bands[bi], r.bands[bi+1]
		if cur.y2 != next.y1 {
			continue
		}
		i, j := 0, 0
		for i < len(cur.spans) && j < len(next.spans) {
			a, b := cur.spans[i], next.spans[j]
			if a.x1 < b.x2 && b.x1 < a.x2 {
				union(offsets[bi]+i, offsets[bi+1]+j)
			}
			if a.x2 < b.x2 {
				i++
			} else {
				j++
			}
		}
	}

	count := 0
	for i := 0; i < total; i++ {
		if find(i) == i {
			count++
		}
	}

	return count
}
