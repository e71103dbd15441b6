//go:build purego || js

package aetheria

import "math"

// Mat is a pure Go 2D float32 matrix.
type Mat struct {
	data []float32
	rows int
	cols int
}

func NewMat() Mat { return Mat{} }

func NewMatWithSize(rows, cols int) Mat {
	return Mat{
		data: make([]float32, rows*cols),
		rows: rows,
		cols: cols,
	}
}

func (m Mat) Rows() int   { return m.rows }
func (m Mat) Cols() int   { return m.cols }
func (m Mat) Empty() bool { return m.data == nil || m.rows == 0 || m.cols == 0 }

func (m *Mat) Close() {
	m.data = nil
	m.rows = 0
	m.cols = 0
}

// DataFloat32 returns the backing float32 slice in row-major order.
func (m Mat) DataFloat32() []float32 {
	return m.data
}

// --- Pure Go CV operations ---

func reflectIndex(idx, size int) int {
	// A single-element axis has nothing to reflect; the oscillation below
	// would never terminate for size 1.
	if size == 1 {
		return 0
	}
	if idx < 0 {
		idx = -idx
	}
	for idx >= size {
		idx = 2*size - 2 - idx
		if idx < 0 {
			idx = -idx
		}
	}
	return idx
}

func sepFilter2DReflect(src Mat, dst *Mat, kernelX, kernelY Mat) {
	rows, cols := src.rows, src.cols
	srcData := src.DataFloat32()
	kx := kernelX.DataFloat32()
	ky := kernelY.DataFloat32()
	kxLen := kernelX.rows * kernelX.cols
	kyLen := kernelY.rows * kernelY.cols
	kxHalf := kxLen / 2
	kyHalf := kyLen / 2

	if dst.rows != rows || dst.cols != cols || dst.data == nil {
		*dst = NewMatWithSize(rows, cols)
	}

	temp := make([]float32, rows*cols)

	// Horizontal pass
	for r := 0; r < rows; r++ {
		rowOff := r * cols
		for c := 0; c < cols; c++ {
			var sum float32
			for k := 0; k < kxLen; k++ {
				cc := reflectIndex(c+k-kxHalf, cols)
				sum += srcData[rowOff+cc] * kx[k]
			}
			temp[rowOff+c] = sum
		}
	}

	// Vertical pass
	dstData := dst.DataFloat32()
	for r := 0; r < rows; r++ {
		dstOff := r * cols
		for c := 0; c < cols; c++ {
			var sum float32
			for k := 0; k < kyLen; k++ {
				rr := reflectIndex(r+k-kyHalf, rows)
				sum += temp[rr*cols+c] * ky[k]
			}
			dstData[dstOff+c] = sum
		}
	}
}

func getGaussianKernel1D(size int, sigma float64) Mat {
	m := NewMatWithSize(size, 1)
	data := m.DataFloat32()
	half := size / 2
	sum := 0.0
	for i := 0; i < size; i++ {
		x := float64(i - half)
		val := math.Exp(-x * x / (2 * sigma * sigma))
		data[i] = float32(val)
		sum += val
	}
	for i := range data[:size] {
		data[i] = float32(float64(data[i]) / sum)
	}
	return m
}

// laplacian applies the 4-connected discrete Laplacian with reflected borders.
func laplacian(src Mat, dst *Mat) {
	rows, cols := src.rows, src.cols
	srcData := src.DataFloat32()

	if dst.rows != rows || dst.cols != cols || dst.data == nil {
		*dst = NewMatWithSize(rows, cols)
	}
	dstData := dst.DataFloat32()

	for r := 0; r < rows; r++ {
		up := reflectIndex(r-1, rows) * cols
		down := reflectIndex(r+1, rows) * cols
		rowOff := r * cols
		for c := 0; c < cols; c++ {
			left := reflectIndex(c-1, cols)
			right := reflectIndex(c+1, cols)
			center := srcData[rowOff+c]
			dstData[rowOff+c] = srcData[up+c] + srcData[down+c] +
				srcData[rowOff+left] + srcData[rowOff+right] - 4*center
		}
	}
}

func absDiff(a, b Mat, dst *Mat) {
	n := a.rows * a.cols
	ad, bd := a.DataFloat32(), b.DataFloat32()
	if dst.rows != a.rows || dst.cols != a.cols || dst.data == nil {
		*dst = NewMatWithSize(a.rows, a.cols)
	}
	dd := dst.DataFloat32()
	for i := 0; i < n; i++ {
		d := ad[i] - bd[i]
		if d < 0 {
			d = -d
		}
		dd[i] = d
	}
}

