// Package grid maps crossbar-array coordinates to the flat, row-major
// index space shared by the wordline and bitline node families.
package grid

// Shape describes an m x n crossbar: m wordlines (rows), n bitlines
// (columns). It carries no other state and its methods are pure.
type Shape struct {
	Rows, Cols int
}

// New constructs a Shape, matching the rows/cols ordering of the
// resistance grid R (m x n).
func New(rows, cols int) Shape {
	return Shape{Rows: rows, Cols: cols}
}

// Size is mn, the number of devices (and the number of nodes in one
// node family).
func (s Shape) Size() int {
	return s.Rows * s.Cols
}

// DeviceIndex returns the row-major flat index of device/WL-node (i,j)
// within one mn-sized family: i*n + j.
func (s Shape) DeviceIndex(i, j int) int {
	return i*s.Cols + j
}

// WLIndex is the flat index of the wordline node at (i,j) in the full
// 2mn node space: indices [0, mn) are wordline nodes.
func (s Shape) WLIndex(i, j int) int {
	return s.DeviceIndex(i, j)
}

// BLIndex is the flat index of the bitline node at (i,j) in the full
// 2mn node space: indices [mn, 2mn) are bitline nodes.
func (s Shape) BLIndex(i, j int) int {
	return s.Size() + s.DeviceIndex(i, j)
}

// Coordinate inverts DeviceIndex, recovering (i,j) from a flat mn index.
func (s Shape) Coordinate(idx int) (i, j int) {
	return idx / s.Cols, idx % s.Cols
}

// Rect reports whether (i,j) lies within the grid.
func (s Shape) Rect(i, j int) bool {
	return i >= 0 && i < s.Rows && j >= 0 && j < s.Cols
}
