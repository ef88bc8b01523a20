package index

import (
	"encoding/binary"
	"fmt"
)

// A Cell addresses one element of a Matrix index.
type Cell struct {
	Row int
	Col int
}

// IndexKey serializes the cell row-major so that cells sort in iteration
// order.
func (c Cell) IndexKey() []byte {
	b := make([]byte, 16)
	binary.BigEndian.PutUint64(b[:8], uint64(c.Row))
	binary.BigEndian.PutUint64(b[8:], uint64(c.Col))
	// inverting the sign bits makes the serializations sort naturally
	b[0] ^= 0x80
	b[8] ^= 0x80
	return b
}

// A Matrix is a two-dimensional index over fixed extents. A (row, col) pair
// resolves to the row-major position row*ncols+col; each axis wraps
// negative values independently, so Cell{-1, -1} addresses the last element.
// Lookup is pure arithmetic and needs no per-key state.
type Matrix struct {
	nrows int
	ncols int
}

// NewMatrix creates a matrix index with the given extents. Negative extents
// fail with ErrConstruction.
func NewMatrix(nrows, ncols int) (*Matrix, error) {
	if nrows < 0 || ncols < 0 {
		return nil, fmt.Errorf("%w: negative matrix extents (%d, %d)", ErrConstruction, nrows, ncols)
	}
	return &Matrix{nrows: nrows, ncols: ncols}, nil
}

// Contains reports whether the cell lies within the extents. Like negative
// sequence keys, negative cells are accepted by Find but are aliases, not
// domain members.
func (m *Matrix) Contains(key Cell) bool {
	return key.Row >= 0 && key.Row < m.nrows && key.Col >= 0 && key.Col < m.ncols
}

// Len returns the total number of cells.
func (m *Matrix) Len() int {
	return m.nrows * m.ncols
}

// Keys returns all cells in row-major order.
func (m *Matrix) Keys() []Cell {
	keys := make([]Cell, 0, m.nrows*m.ncols)
	for row := 0; row < m.nrows; row++ {
		for col := 0; col < m.ncols; col++ {
			keys = append(keys, Cell{Row: row, Col: col})
		}
	}
	return keys
}

// Find resolves a cell to its row-major position. Each axis wraps negative
// values independently; a cell outside the extents after wrapping fails
// with ErrNotFound.
func (m *Matrix) Find(key Cell) (int, error) {
	row, err := coerce(key.Row, m.nrows)
	if err != nil {
		return 0, err
	}
	col, err := coerce(key.Col, m.ncols)
	if err != nil {
		return 0, err
	}
	return row*m.ncols + col, nil
}
