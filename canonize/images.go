package canonize

import (
	"slices"

	"github.com/katalvlaran/canonical/set"
)

// imageEntry is one interned leaf: its image, the individualization path
// that reached it, and the witness permutation.
type imageEntry[M any] struct {
	image M
	path  []int
	perm  set.Map[int]
}

// imageMap is an ordered map keyed by image value, backed by a slice kept
// sorted under compare. Lookup and insertion are O(log k) comparisons for k
// interned images; the minimum entry is the first slot.
type imageMap[M any] struct {
	compare func(a, b M) int
	entries []imageEntry[M]
}

// search locates img: its slot if present, otherwise its insertion point.
func (m *imageMap[M]) search(img M) (int, bool) {
	return slices.BinarySearchFunc(m.entries, img, func(e imageEntry[M], target M) int {
		return m.compare(e.image, target)
	})
}

// insertAt interns img at slot i (as returned by search on a miss).
// path and perm must be owned by the map: callers clone.
func (m *imageMap[M]) insertAt(i int, img M, path []int, perm set.Map[int]) {
	m.entries = slices.Insert(m.entries, i, imageEntry[M]{image: img, path: path, perm: perm})
}

// min returns the entry with the minimum image. The map must be nonempty.
func (m *imageMap[M]) min() *imageEntry[M] {
	return &m.entries[0]
}
