package piece

// Matrix is a square occupancy mask, row-major with row 0 at the top.
type Matrix [][]bool

// shape builds a Matrix from rows of '#' (set) and '.' (clear).
func shape(rows ...string) Matrix {
	m := make(Matrix, len(rows))
	for i, row := range rows {
		m[i] = make([]bool, len(row))
		for j, ch := range row {
			m[i][j] = ch == '#'
		}
	}
	return m
}

// RotateClockwise returns a new matrix turned 90° clockwise. The input is
// assumed square; catalog shapes are padded to their bounding square.
func RotateClockwise(m Matrix) Matrix {
	n := len(m)
	out := make(Matrix, n)
	for i := range out {
		out[i] = make([]bool, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out[j][n-1-i] = m[i][j]
		}
	}
	return out
}

// TrimBounds reports the size of the smallest box holding every set cell.
// An empty matrix trims to 0x0.
func TrimBounds(m Matrix) (rows, cols int) {
	minRow, maxRow := len(m), -1
	minCol, maxCol := -1, -1
	for i, row := range m {
		for j, set := range row {
			if !set {
				continue
			}
			minRow = min(minRow, i)
			maxRow = max(maxRow, i)
			if minCol == -1 || j < minCol {
				minCol = j
			}
			maxCol = max(maxCol, j)
		}
	}
	if maxRow < 0 {
		return 0, 0
	}
	return maxRow - minRow + 1, maxCol - minCol + 1
}

// Clone returns a deep copy.
func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = append([]bool(nil), row...)
	}
	return out
}

// Equal reports whether both matrices have the same size and cells.
func (m Matrix) Equal(o Matrix) bool {
	if len(m) != len(o) {
		return false
	}
	for i := range m {
		if len(m[i]) != len(o[i]) {
			return false
		}
		for j := range m[i] {
			if m[i][j] != o[i][j] {
				return false
			}
		}
	}
	return true
}

// String renders the matrix with '#' and '.', one row per line.
func (m Matrix) String() string {
	b := make([]byte, 0, len(m)*(len(m)+1))
	for i, row := range m {
		if i > 0 {
			b = append(b, '\n')
		}
		for _, set := range row {
			if set {
				b = append(b, '#')
			} else {
				b = append(b, '.')
			}
		}
	}
	return string(b)
}
