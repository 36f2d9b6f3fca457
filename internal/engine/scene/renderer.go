package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/heightfield/internal/engine/scene/shaders"
	"github.com/Faultbox/heightfield/internal/engine/shader"
	"github.com/Faultbox/heightfield/internal/engine/terrain"
	"github.com/Faultbox/heightfield/internal/engine/texture"
	"github.com/Faultbox/heightfield/internal/logger"
)

// DefaultLightDir is the direction the terrain is lit from.
var DefaultLightDir = mgl32.Vec3{0.3, 0.4, 0.1}

// Renderer owns the GPU resources of the terrain scene.
type Renderer struct {
	faceProgram *shader.Program
	lineProgram *shader.Program

	terrain *UploadedMesh
	normals *UploadedMesh
	texture uint32

	// Model is applied to both meshes.
	Model    mgl32.Mat4
	LightDir mgl32.Vec3
	// ShowNormals enables drawing of the normal lines.
	ShowNormals bool
}

// New compiles the shader programs and uploads the terrain surface, its
// normal lines and its texture. A GL context must be current.
func New(surface *terrain.Mesh[terrain.FaceVertex], normals *terrain.Mesh[terrain.LineVertex], tex *texture.Image) (*Renderer, error) {
	r := &Renderer{
		Model:    mgl32.Ident4(),
		LightDir: DefaultLightDir,
	}

	var err error
	if r.faceProgram, err = shader.NewProgram("face", shaders.FaceVertexShader, shaders.FaceFragmentShader); err != nil {
		r.Destroy()
		return nil, err
	}
	if r.lineProgram, err = shader.NewProgram("line", shaders.LineVertexShader, shaders.LineFragmentShader); err != nil {
		r.Destroy()
		return nil, err
	}

	if r.terrain, err = UploadFaces(surface); err != nil {
		r.Destroy()
		return nil, fmt.Errorf("terrain mesh: %w", err)
	}
	if r.normals, err = UploadLines(normals); err != nil {
		r.Destroy()
		return nil, fmt.Errorf("normal lines: %w", err)
	}

	r.texture = uploadTexture(tex)

	logger.Info("scene uploaded",
		zap.Int32("terrain_vertices", r.terrain.Count()),
		zap.Int32("normal_vertices", r.normals.Count()),
		zap.Int("texture_width", tex.Width),
		zap.Int("texture_height", tex.Height),
	)

	return r, nil
}

func uploadTexture(img *texture.Image) uint32 {
	var texID uint32
	gl.GenTextures(1, &texID)
	gl.BindTexture(gl.TEXTURE_2D, texID)

	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(img.Width), int32(img.Height),
		0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))

	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)

	return texID
}

// Resize updates the viewport.
func (r *Renderer) Resize(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Draw renders one frame with the given projection-view matrix.
func (r *Renderer) Draw(projView mgl32.Mat4) {
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.DepthMask(true)

	r.faceProgram.Use()
	r.faceProgram.SetMat4("uProjView", projView)
	r.faceProgram.SetMat4("uModel", r.Model)
	r.faceProgram.SetVec3("uLightDir", r.LightDir)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.texture)
	r.faceProgram.SetInt("uTexture", 0)

	r.terrain.Draw()

	if r.ShowNormals {
		r.lineProgram.Use()
		r.lineProgram.SetMat4("uProjView", projView)
		r.lineProgram.SetMat4("uModel", r.Model)
		r.normals.Draw()
	}

	gl.UseProgram(0)
}

// ReadPixels reads the default framebuffer as bottom-up RGBA.
func (r *Renderer) ReadPixels(width, height int) []byte {
	pixels := make([]byte, width*height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels
}

// Destroy releases all resources.
func (r *Renderer) Destroy() {
	if r.terrain != nil {
		r.terrain.Destroy()
	}
	if r.normals != nil {
		r.normals.Destroy()
	}
	if r.texture != 0 {
		gl.DeleteTextures(1, &r.texture)
		r.texture = 0
	}
	if r.faceProgram != nil {
		r.faceProgram.Delete()
	}
	if r.lineProgram != nil {
		r.lineProgram.Delete()
	}
}
