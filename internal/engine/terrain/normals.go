package terrain

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/heightfield/pkg/grid"
)

// EdgePolicy decides which elevation stands in for a neighbour that lies
// outside the heightmap.
type EdgePolicy int

const (
	// EdgeCopy uses the cell's own height.
	EdgeCopy EdgePolicy = iota
	// EdgeReflect extrapolates from the opposite neighbour: 2*h - opposite.
	EdgeReflect
)

// ParseEdgePolicy maps a configuration string to an EdgePolicy.
func ParseEdgePolicy(s string) (EdgePolicy, error) {
	switch s {
	case "", "copy":
		return EdgeCopy, nil
	case "reflect":
		return EdgeReflect, nil
	default:
		return EdgeCopy, fmt.Errorf("unknown edge policy %q", s)
	}
}

func (p EdgePolicy) String() string {
	if p == EdgeReflect {
		return "reflect"
	}
	return "copy"
}

// EstimateNormals returns one unit normal per heightmap cell, indexed like
// the heightmap itself.
func EstimateNormals(hm *Heightmap, policy EdgePolicy) [][3]float32 {
	dim := hm.Dimension()
	normals := make([][3]float32, hm.Len())

	for i := range normals {
		c := dim.ToCoords(i)
		self := hm.At(i)
		at := func(d grid.Direction) float32 {
			return neighbourHeight(hm, c, self, d, policy)
		}
		normals[i] = TerrainNormal(at(grid.Right), at(grid.Left), at(grid.Up), at(grid.Down))
	}
	return normals
}

func neighbourHeight(hm *Heightmap, c grid.Coords, self float32, d grid.Direction, policy EdgePolicy) float32 {
	if v, ok := hm.Get(c.Step(d)); ok {
		return v
	}
	if policy == EdgeReflect {
		opposite, ok := hm.Get(c.Step(d.Inv()))
		if !ok {
			opposite = self
		}
		return 2*self - opposite
	}
	return self
}

// TerrainNormal estimates a surface normal from the heights of the four
// axis-aligned neighbours. The Y component is fixed at 2, i.e. neighbours are
// assumed one unit away on each side.
func TerrainNormal(right, left, up, down float32) [3]float32 {
	return [3]float32(mgl32.Vec3{left - right, 2, down - up}.Normalize())
}

// TriangleNormal returns the unit normal of a counter-clockwise triangle.
func TriangleNormal(a, b, c [3]float32) [3]float32 {
	va, vb, vc := mgl32.Vec3(a), mgl32.Vec3(b), mgl32.Vec3(c)
	return [3]float32(vb.Sub(va).Cross(vc.Sub(va)).Normalize())
}
