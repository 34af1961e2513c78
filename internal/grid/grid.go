package grid

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// #region location
// Location addresses one cell in a D-dimensional grid.
type Location []int

// Equal reports whether two locations have identical coordinates.
func (l Location) Equal(other Location) bool {
	if len(l) != len(other) {
		return false
	}
	for i := range l {
		if l[i] != other[i] {
			return false
		}
	}
	return true
}

// Less reports whether l precedes other in raster order
// (first coordinate most significant).
func (l Location) Less(other Location) bool {
	for i := range l {
		if i >= len(other) {
			return false
		}
		if l[i] != other[i] {
			return l[i] < other[i]
		}
	}
	return len(l) < len(other)
}

// Key returns a stable string key for use in maps.
func (l Location) Key() string {
	parts := make([]string, len(l))
	for i, c := range l {
		parts[i] = strconv.Itoa(c)
	}
	return strings.Join(parts, ",")
}

// Clone returns an independent copy of the location.
func (l Location) Clone() Location {
	out := make(Location, len(l))
	copy(out, l)
	return out
}

func (l Location) String() string {
	return "(" + l.Key() + ")"
}

// #endregion location

// #region example
// Example is a taught (location, label) pair. Labels are 0 or 1.
type Example struct {
	Loc   Location
	Label int
}

func (e Example) String() string {
	return fmt.Sprintf("%s=%d", e.Loc, e.Label)
}

// #endregion example

// #region space
// Space is the set of all locations for a per-dimension shape.
// Immutable after construction.
type Space struct {
	dims []int
	size int
}

// NewSpace validates the per-dimension sizes and returns a Space.
// Every dimension must be at least 1 so the location set is non-empty.
func NewSpace(dims ...int) (Space, error) {
	if len(dims) == 0 {
		return Space{}, fmt.Errorf("space needs at least one dimension")
	}
	size := 1
	for i, d := range dims {
		if d < 1 {
			return Space{}, fmt.Errorf("dimension %d has size %d, must be >= 1", i, d)
		}
		size *= d
	}
	out := Space{dims: make([]int, len(dims)), size: size}
	copy(out.dims, dims)
	return out, nil
}

// Dims returns a copy of the per-dimension sizes.
func (s Space) Dims() []int {
	out := make([]int, len(s.dims))
	copy(out, s.dims)
	return out
}

// Size returns the total number of locations.
func (s Space) Size() int {
	return s.size
}

// Enumerate returns every location in raster order: the first
// coordinate varies slowest, the last fastest. The order is the
// canonical ordering used for deterministic tie-breaking everywhere.
func (s Space) Enumerate() []Location {
	locs := make([]Location, 0, s.size)
	cur := make(Location, len(s.dims))
	for {
		locs = append(locs, cur.Clone())
		// odometer increment, last dimension fastest
		i := len(cur) - 1
		for i >= 0 {
			cur[i]++
			if cur[i] < s.dims[i] {
				break
			}
			cur[i] = 0
			i--
		}
		if i < 0 {
			return locs
		}
	}
}

// Index returns the row-major flat index of loc within the space.
// Grid predictions are flat arrays addressed by this index.
func (s Space) Index(loc Location) int {
	idx := 0
	for i, c := range loc {
		idx = idx*s.dims[i] + c
	}
	return idx
}

// Contains reports whether loc is a valid coordinate in the space.
func (s Space) Contains(loc Location) bool {
	if len(loc) != len(s.dims) {
		return false
	}
	for i, c := range loc {
		if c < 0 || c >= s.dims[i] {
			return false
		}
	}
	return true
}

// DimString renders the shape as "13x6".
func (s Space) DimString() string {
	parts := make([]string, len(s.dims))
	for i, d := range s.dims {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, "x")
}

// #endregion space

// #region ordering
// SortLocations orders locations in raster order, in place.
func SortLocations(locs []Location) {
	sort.Slice(locs, func(i, j int) bool {
		return locs[i].Less(locs[j])
	})
}

// #endregion ordering
