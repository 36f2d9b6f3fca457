package terrain

import (
	"fmt"

	"github.com/Faultbox/heightfield/pkg/grid"
)

// BuildMesh tessellates a heightmap into a flat triangle list.
//
// Every cell except those on the last column or row spans a quad with its
// right, up and diagonal neighbours. The first triangle (cell, right, up)
// takes the cell's normal; the second (diagonal, right, up) takes the
// diagonal's normal, which gives the far corner of each quad a faceted look.
// Texture coordinates repeat every texelsPerTile cells.
func BuildMesh(hm *Heightmap, normals [][3]float32, sampleSize [2]float32, texelsPerTile grid.NonZero) (*Mesh[FaceVertex], error) {
	if len(normals) != hm.Len() {
		return nil, fmt.Errorf("normals: got %d, want %d", len(normals), hm.Len())
	}
	if !texelsPerTile.Valid() {
		return nil, fmt.Errorf("texels per tile: %w", grid.ErrZero)
	}

	w, h := hm.Size()
	dim := hm.Dimension()
	index := func(c grid.Coords) int {
		i, _ := dim.ToIndex(c)
		return i
	}

	n := texelsPerTile.Int()
	step := 1 / float32(n)

	quads := max(w-1, 0) * max(h-1, 0)
	vertices := make([]FaceVertex, 0, quads*6)

	for i := range hm.Len() {
		c := dim.ToCoords(i)
		// Edge cells only serve as the far corner of their neighbour's quad.
		if c[0] == w-1 || c[1] == h-1 {
			continue
		}

		right := c.Step(grid.Right)
		up := c.Step(grid.Up)
		diag := right.Step(grid.Up)

		pos := func(at grid.Coords) [3]float32 {
			return [3]float32{
				float32(at[0]) * sampleSize[0],
				hm.At(index(at)),
				float32(at[1]) * sampleSize[1],
			}
		}

		normal := normals[i]
		diagNormal := normals[index(diag)]

		t00 := [2]float32{float32(c[0]%n) * step, float32(c[1]%n) * step}
		t10 := [2]float32{t00[0] + step, t00[1]}
		t01 := [2]float32{t00[0], t00[1] + step}
		t11 := [2]float32{t00[0] + step, t00[1] + step}

		cellPos, rightPos, upPos, diagPos := pos(c), pos(right), pos(up), pos(diag)

		vertices = append(vertices,
			FaceVertex{Position: cellPos, TexCoord: t00, Normal: normal},
			FaceVertex{Position: rightPos, TexCoord: t10, Normal: normal},
			FaceVertex{Position: upPos, TexCoord: t01, Normal: normal},

			FaceVertex{Position: diagPos, TexCoord: t11, Normal: diagNormal},
			FaceVertex{Position: rightPos, TexCoord: t10, Normal: diagNormal},
			FaceVertex{Position: upPos, TexCoord: t01, Normal: diagNormal},
		)
	}

	return &Mesh[FaceVertex]{
		Vertices:  vertices,
		Primitive: TriangleList,
	}, nil
}

// ShowNormals builds a debug line mesh with one segment per face vertex,
// running from the vertex along its normal. Segments fade from colors[0] at
// the surface to colors[1] at the tip.
func ShowNormals(mesh *Mesh[FaceVertex], length float32, colors [2][3]float32) *Mesh[LineVertex] {
	vertices := make([]LineVertex, 0, len(mesh.Vertices)*2)
	for _, v := range mesh.Vertices {
		tip := [3]float32{
			v.Position[0] + v.Normal[0]*length,
			v.Position[1] + v.Normal[1]*length,
			v.Position[2] + v.Normal[2]*length,
		}
		vertices = append(vertices,
			LineVertex{Position: v.Position, Color: colors[0]},
			LineVertex{Position: tip, Color: colors[1]},
		)
	}
	return &Mesh[LineVertex]{
		Vertices:  vertices,
		Primitive: LineList,
	}
}
