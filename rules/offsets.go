package rules

import "math/bits"

// Offset is a relative position from a focal cell
type Offset struct {
	DX, DY int
}

const (
	// Radius is the Chebyshev radius of a window around a focal cell
	Radius = 2
	// InnerCount is the number of radius-1 offsets (king moves)
	InnerCount = 8
	// WindowSize is the number of offsets in a radius-2 window, focal cell excluded
	WindowSize = 24
)

// Offsets lists the window positions. The first InnerCount entries are the
// radius-1 neighbors starting east and turning counter-clockwise, the rest are
// the outer ring starting two cells east.
var Offsets = [WindowSize]Offset{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1},
	{2, 0}, {2, 1}, {2, 2}, {1, 2}, {0, 2}, {-1, 2}, {-2, 2}, {-2, 1},
	{-2, 0}, {-2, -1}, {-2, -2}, {-1, -2}, {0, -2}, {1, -2}, {2, -2}, {2, -1},
}

// InnerMask selects the radius-1 offsets of a window bitmask
const InnerMask uint32 = 1<<InnerCount - 1

var (
	// offsetIndex maps (dx+Radius, dy+Radius) to an index into Offsets, -1 for the focal cell
	offsetIndex [2*Radius + 1][2*Radius + 1]int

	// BirthMasks holds, for each radius-1 offset, the window bits that are
	// neighbors of that candidate, not counting the focal cell itself
	BirthMasks [InnerCount]uint32
)

func init() {
	for i := range offsetIndex {
		for j := range offsetIndex[i] {
			offsetIndex[i][j] = -1
		}
	}
	for i, o := range Offsets {
		offsetIndex[o.DX+Radius][o.DY+Radius] = i
	}

	for k := range InnerCount {
		candidate := Offsets[k]
		for i, o := range Offsets {
			if chebyshev(o.DX-candidate.DX, o.DY-candidate.DY) == 1 {
				BirthMasks[k] |= 1 << i
			}
		}
	}
}

// IndexOf returns the window index of the relative position (dx, dy), or
// false when it lies outside the window or is the focal cell
func IndexOf(dx, dy int) (int, bool) {
	if dx < -Radius || dx > Radius || dy < -Radius || dy > Radius {
		return 0, false
	}
	idx := offsetIndex[dx+Radius][dy+Radius]
	return idx, idx >= 0
}

// CountBits returns the number of set flags in a window mask
func CountBits(mask uint32) int {
	return bits.OnesCount32(mask)
}

func chebyshev(dx, dy int) int {
	return max(abs(dx), abs(dy))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
