// Package terrain generates heightmap terrain and builds render meshes from it.
package terrain

import "github.com/Faultbox/heightfield/pkg/grid"

// Heightmap is a grid of terrain elevations.
type Heightmap = grid.Grid[float32]

// Area is the world-space rectangle a sample grid is mapped onto.
type Area struct {
	X, Y float32
	W, H float32
}

// FaceVertex is a vertex of the lit, textured terrain surface.
type FaceVertex struct {
	Position [3]float32
	TexCoord [2]float32
	Normal   [3]float32
}

// Pos returns the vertex position.
func (v FaceVertex) Pos() [3]float32 { return v.Position }

// LineVertex is a vertex of a flat-colored line mesh.
type LineVertex struct {
	Position [3]float32
	Color    [3]float32
}

// Pos returns the vertex position.
func (v LineVertex) Pos() [3]float32 { return v.Position }

// Primitive is the topology of a mesh.
type Primitive int

const (
	TriangleList Primitive = iota
	LineList
)

func (p Primitive) String() string {
	switch p {
	case TriangleList:
		return "triangles"
	case LineList:
		return "lines"
	default:
		return "unknown"
	}
}

// Mesh holds CPU-side geometry ready for upload.
// A nil Indices means the vertices are drawn in order.
type Mesh[V any] struct {
	Vertices  []V
	Indices   []uint32
	Primitive Primitive
}

// Indexed reports whether the mesh carries an index buffer.
func (m *Mesh[V]) Indexed() bool {
	return m.Indices != nil
}

// Bounds holds an axis-aligned bounding box.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// BoundsOf returns the bounding box of the given vertices.
// An empty slice yields the zero Bounds.
func BoundsOf[V interface{ Pos() [3]float32 }](verts []V) Bounds {
	if len(verts) == 0 {
		return Bounds{}
	}
	first := verts[0].Pos()
	b := Bounds{Min: first, Max: first}
	for _, v := range verts[1:] {
		p := v.Pos()
		for i := range 3 {
			if p[i] < b.Min[i] {
				b.Min[i] = p[i]
			}
			if p[i] > b.Max[i] {
				b.Max[i] = p[i]
			}
		}
	}
	return b
}
