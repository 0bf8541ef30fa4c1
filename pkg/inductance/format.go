package inductance

import (
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// DefaultPrecision is the number of decimal places used for display output.
const DefaultPrecision = 4

// FormatMatrix renders any matrix to fixed-precision decimal strings, row
// by row. It is a display helper only and never alters stored values.
func FormatMatrix(m mat.Matrix, prec int) [][]string {
	rows, cols := m.Dims()
	out := make([][]string, rows)
	for i := 0; i < rows; i++ {
		out[i] = make([]string, cols)
		for j := 0; j < cols; j++ {
			out[i][j] = strconv.FormatFloat(m.At(i, j), 'f', prec, 64)
		}
	}
	return out
}

// FormatMatrix4 renders a matrix with the default 4 decimal places.
func FormatMatrix4(m mat.Matrix) [][]string {
	return FormatMatrix(m, DefaultPrecision)
}
