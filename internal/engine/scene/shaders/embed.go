// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// FaceVertexShader is the vertex shader for the lit, textured terrain surface.
//
//go:embed face.vert
var FaceVertexShader string

// FaceFragmentShader is the fragment shader for the lit, textured terrain surface.
//
//go:embed face.frag
var FaceFragmentShader string

// LineVertexShader is the vertex shader for flat-colored lines.
//
//go:embed line.vert
var LineVertexShader string

// LineFragmentShader is the fragment shader for flat-colored lines.
//
//go:embed line.frag
var LineFragmentShader string
