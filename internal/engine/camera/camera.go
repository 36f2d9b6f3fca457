// Package camera provides the first-person camera used to fly over the terrain.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// DefaultSpeed is the movement speed in world units per second.
const DefaultSpeed float32 = 8

// WorldUp is the vertical axis of the world.
var WorldUp = mgl32.Vec3{0, 1, 0}

// FirstPerson is a free-flying camera driven by a view direction and a
// movement vector expressed in camera space.
type FirstPerson struct {
	Position  mgl32.Vec3
	Direction mgl32.Vec3

	// Movement is (right, up, forward) in the range [-1, 1] per axis.
	Movement mgl32.Vec3
	Speed    float32
}

// NewFirstPerson creates a camera at pos looking along dir.
func NewFirstPerson(pos, dir mgl32.Vec3) *FirstPerson {
	return &FirstPerson{
		Position:  pos,
		Direction: dir.Normalize(),
		Speed:     DefaultSpeed,
	}
}

// Rotate turns the view direction. pitch turns around the world vertical
// axis, yaw tilts the direction up or down. Both are in radians.
func (c *FirstPerson) Rotate(pitch, yaw float32) {
	// Bring the direction into the YZ plane, tilt it there, then turn it
	// back with the horizontal rotation applied.
	a := -math32.Atan2(c.Direction.X(), c.Direction.Z())

	rot := mgl32.Rotate3DY(-a + pitch).
		Mul3(mgl32.Rotate3DX(-yaw)).
		Mul3(mgl32.Rotate3DY(a))

	c.Direction = rot.Mul3x1(c.Direction)
}

// SetMovement sets the movement vector applied by UpdatePos.
func (c *FirstPerson) SetMovement(v mgl32.Vec3) {
	c.Movement = v
}

// UpdatePos advances the position by dt seconds of movement. Forward
// movement stays parallel to the ground plane. The update is skipped while
// the direction is vertical, since no horizontal basis exists then.
func (c *FirstPerson) UpdatePos(dt float32) {
	side := c.Direction.Cross(WorldUp)
	if side.Len() == 0 || hasNaN(side) {
		return
	}
	right := side.Normalize()
	forward := right.Cross(WorldUp).Mul(-1)

	step := dt * c.Speed
	delta := forward.Mul(c.Movement.Z() * step).
		Add(right.Mul(c.Movement.X() * step)).
		Add(WorldUp.Mul(c.Movement.Y() * step))

	c.Position = c.Position.Add(delta)
}

// View returns the view matrix.
func (c *FirstPerson) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Direction), WorldUp)
}

// FieldOfView holds the vertical and horizontal view angles in radians.
type FieldOfView struct {
	Y float32
	X float32
}

// NewFieldOfView derives the horizontal angle from the vertical one by
// scaling with the aspect ratio.
func NewFieldOfView(fovYDegrees, aspect float32) FieldOfView {
	y := mgl32.DegToRad(fovYDegrees)
	return FieldOfView{Y: y, X: y * aspect}
}

// Projection returns a perspective projection matrix. fovY is in radians.
func Projection(fovY, aspect, near, far float32) mgl32.Mat4 {
	return mgl32.Perspective(fovY, aspect, near, far)
}

func hasNaN(v mgl32.Vec3) bool {
	return math32.IsNaN(v[0]) || math32.IsNaN(v[1]) || math32.IsNaN(v[2])
}
