package multimap

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/skywave/grid"
)

// Sentinel errors for multimap operations.
var (
	// ErrNoGeometries indicates an attempt to build an empty container.
	ErrNoGeometries = errors.New("multimap: need at least one geometry")
	// ErrScaleIndex indicates a scale index outside [0, NScale).
	ErrScaleIndex = errors.New("multimap: scale index out of range")
	// ErrShapeMismatch indicates a container whose layout disagrees with
	// the expected geometries or batch shape.
	ErrShapeMismatch = errors.New("multimap: incompatible shapes")
)

// Multimap is an ordered set of flat float64 maps, one per scale, sharing
// leading batch dimensions. The batch shape and geometries are fixed at
// allocation; the pixel data is mutable through Map.
type Multimap struct {
	pre  []int
	geos []grid.Geometry
	maps [][]float64
}

// Zeros allocates a zero-filled Multimap with one map per geometry and the
// given shared batch shape (nil or empty means a single unbatched map per
// scale).
func Zeros(geos []grid.Geometry, pre []int) (*Multimap, error) {
	if len(geos) == 0 {
		return nil, ErrNoGeometries
	}
	nb := 1
	for _, d := range pre {
		if d <= 0 {
			return nil, fmt.Errorf("%w: batch dim %d", ErrShapeMismatch, d)
		}
		nb *= d
	}
	m := &Multimap{
		pre:  append([]int(nil), pre...),
		geos: append([]grid.Geometry(nil), geos...),
		maps: make([][]float64, len(geos)),
	}
	for i, g := range geos {
		if err := g.Validate(); err != nil {
			return nil, err
		}
		m.maps[i] = make([]float64, nb*g.Npix())
	}
	return m, nil
}

// NScale returns the number of scales stored.
func (m *Multimap) NScale() int { return len(m.maps) }

// Pre returns a copy of the shared batch shape.
func (m *Multimap) Pre() []int { return append([]int(nil), m.pre...) }

// NBatch returns the flattened batch count (product of Pre, 1 when empty).
func (m *Multimap) NBatch() int {
	nb := 1
	for _, d := range m.pre {
		nb *= d
	}
	return nb
}

// Geometry returns the geometry of scale i.
func (m *Multimap) Geometry(i int) (grid.Geometry, error) {
	if i < 0 || i >= len(m.geos) {
		return grid.Geometry{}, fmt.Errorf("%w: %d not in [0, %d)", ErrScaleIndex, i, len(m.geos))
	}
	return m.geos[i], nil
}

// Map returns the scale-i pixel array as a mutable view into the
// container's storage, laid out (batch..., Ny_i, Nx_i) row-major.
func (m *Multimap) Map(i int) ([]float64, error) {
	if i < 0 || i >= len(m.maps) {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrScaleIndex, i, len(m.maps))
	}
	return m.maps[i], nil
}

// CompatibleWith reports whether the container matches the expected
// per-scale geometries and batch shape, returning a descriptive
// ErrShapeMismatch when it does not.
func (m *Multimap) CompatibleWith(geos []grid.Geometry, pre []int) error {
	if len(geos) != len(m.geos) {
		return fmt.Errorf("%w: %d scales, want %d", ErrShapeMismatch, len(m.geos), len(geos))
	}
	if len(pre) != len(m.pre) {
		return fmt.Errorf("%w: batch rank %d, want %d", ErrShapeMismatch, len(m.pre), len(pre))
	}
	for i, d := range pre {
		if m.pre[i] != d {
			return fmt.Errorf("%w: batch dim %d is %d, want %d", ErrShapeMismatch, i, m.pre[i], d)
		}
	}
	for i, g := range geos {
		if m.geos[i].Ny != g.Ny || m.geos[i].Nx != g.Nx {
			return fmt.Errorf("%w: scale %d is %dx%d, want %dx%d",
				ErrShapeMismatch, i, m.geos[i].Ny, m.geos[i].Nx, g.Ny, g.Nx)
		}
	}
	return nil
}
