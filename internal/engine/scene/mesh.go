// Package scene uploads terrain meshes to the GPU and draws them.
package scene

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/heightfield/internal/engine/terrain"
)

// ErrBufferCreation is returned when a mesh cannot be uploaded.
var ErrBufferCreation = errors.New("buffer creation failed")

// Attribute describes one float vertex attribute.
type Attribute struct {
	Location   uint32
	Components int32
	Offset     uintptr
}

// Layout describes how a vertex type is laid out in a vertex buffer.
type Layout struct {
	Stride     int32
	Attributes []Attribute
}

// FaceLayout is the layout of terrain.FaceVertex: position at 0, texture
// coordinates at 1, normal at 2.
func FaceLayout() Layout {
	var v terrain.FaceVertex
	return Layout{
		Stride: int32(unsafe.Sizeof(v)),
		Attributes: []Attribute{
			{Location: 0, Components: 3, Offset: unsafe.Offsetof(v.Position)},
			{Location: 1, Components: 2, Offset: unsafe.Offsetof(v.TexCoord)},
			{Location: 2, Components: 3, Offset: unsafe.Offsetof(v.Normal)},
		},
	}
}

// LineLayout is the layout of terrain.LineVertex: position at 0, color at 1.
func LineLayout() Layout {
	var v terrain.LineVertex
	return Layout{
		Stride: int32(unsafe.Sizeof(v)),
		Attributes: []Attribute{
			{Location: 0, Components: 3, Offset: unsafe.Offsetof(v.Position)},
			{Location: 1, Components: 3, Offset: unsafe.Offsetof(v.Color)},
		},
	}
}

// UploadedMesh is a mesh resident on the GPU.
type UploadedMesh struct {
	vao   uint32
	vbo   uint32
	ebo   uint32
	count int32
	mode  uint32
}

// UploadFaces uploads a terrain surface mesh.
func UploadFaces(m *terrain.Mesh[terrain.FaceVertex]) (*UploadedMesh, error) {
	return Upload(m, FaceLayout())
}

// UploadLines uploads a line mesh.
func UploadLines(m *terrain.Mesh[terrain.LineVertex]) (*UploadedMesh, error) {
	return Upload(m, LineLayout())
}

// Upload copies the vertices and optional indices of m into new GPU
// buffers described by layout.
func Upload[V any](m *terrain.Mesh[V], layout Layout) (*UploadedMesh, error) {
	if m == nil || len(m.Vertices) == 0 {
		return nil, fmt.Errorf("%w: empty mesh", ErrBufferCreation)
	}
	if m.Indexed() && len(m.Indices) == 0 {
		return nil, fmt.Errorf("%w: empty index buffer", ErrBufferCreation)
	}
	if vertexSize := int32(unsafe.Sizeof(m.Vertices[0])); vertexSize != layout.Stride {
		return nil, fmt.Errorf("%w: vertex size %d does not match stride %d", ErrBufferCreation, vertexSize, layout.Stride)
	}

	um := &UploadedMesh{mode: primitiveMode(m.Primitive)}

	gl.GenVertexArrays(1, &um.vao)
	gl.BindVertexArray(um.vao)

	gl.GenBuffers(1, &um.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, um.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*int(layout.Stride), unsafe.Pointer(&m.Vertices[0]), gl.STATIC_DRAW)

	for _, a := range layout.Attributes {
		gl.VertexAttribPointerWithOffset(a.Location, a.Components, gl.FLOAT, false, layout.Stride, a.Offset)
		gl.EnableVertexAttribArray(a.Location)
	}

	um.count = int32(len(m.Vertices))
	if m.Indexed() {
		gl.GenBuffers(1, &um.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, um.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)
		um.count = int32(len(m.Indices))
	}

	gl.BindVertexArray(0)

	if code := gl.GetError(); code != gl.NO_ERROR || um.vao == 0 || um.vbo == 0 {
		um.Destroy()
		return nil, fmt.Errorf("%w: GL error 0x%x", ErrBufferCreation, code)
	}

	return um, nil
}

// Draw issues the draw call for the mesh. The caller binds the program.
func (um *UploadedMesh) Draw() {
	if um == nil || um.vao == 0 {
		return
	}

	gl.BindVertexArray(um.vao)
	if um.ebo != 0 {
		gl.DrawElements(um.mode, um.count, gl.UNSIGNED_INT, nil)
	} else {
		gl.DrawArrays(um.mode, 0, um.count)
	}
	gl.BindVertexArray(0)
}

// Count returns the number of vertices or indices drawn.
func (um *UploadedMesh) Count() int32 {
	return um.count
}

// Destroy releases the GPU buffers.
func (um *UploadedMesh) Destroy() {
	if um.vao != 0 {
		gl.DeleteVertexArrays(1, &um.vao)
		um.vao = 0
	}
	if um.vbo != 0 {
		gl.DeleteBuffers(1, &um.vbo)
		um.vbo = 0
	}
	if um.ebo != 0 {
		gl.DeleteBuffers(1, &um.ebo)
		um.ebo = 0
	}
}

func primitiveMode(p terrain.Primitive) uint32 {
	switch p {
	case terrain.LineList:
		return gl.LINES
	default:
		return gl.TRIANGLES
	}
}
