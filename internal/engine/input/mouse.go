package input

// WrapCursor moves a cursor that came within margin pixels of a window
// edge to the opposite side. It returns the new position and true when the
// cursor has to be warped.
func WrapCursor(cursor, window [2]int32, margin int32) ([2]int32, bool) {
	wrapped := cursor
	for axis := range 2 {
		size := window[axis]
		switch c := cursor[axis]; {
		case c > size-margin:
			wrapped[axis] = margin + 1
		case c < margin:
			wrapped[axis] = size - margin - 1
		}
	}
	return wrapped, wrapped != cursor
}

// MouseLook turns absolute cursor positions into camera rotation.
type MouseLook struct {
	// FovX and FovY are the view angles in radians.
	FovX, FovY float32

	last [2]int32
	jump bool
}

// NewMouseLook creates a MouseLook. The first motion it sees only records
// the cursor position.
func NewMouseLook(fovX, fovY float32) *MouseLook {
	return &MouseLook{FovX: fovX, FovY: fovY, jump: true}
}

// Move records a cursor position and returns the pitch and yaw for the
// motion since the previous one. ok is false for the first motion after
// construction or a warp.
func (m *MouseLook) Move(x, y int32, window [2]int32) (pitch, yaw float32, ok bool) {
	if m.jump {
		m.jump = false
		m.last = [2]int32{x, y}
		return 0, 0, false
	}

	dx := float32(m.last[0] - x)
	dy := float32(m.last[1] - y)
	m.last = [2]int32{x, y}

	pitch = m.FovX / float32(window[0]) * dx * 2
	yaw = m.FovY / float32(window[1]) * dy * 2
	return pitch, yaw, true
}

// Last returns the most recent cursor position.
func (m *MouseLook) Last() [2]int32 {
	return m.last
}

// Warped tells MouseLook the cursor was moved programmatically, so the
// next motion must not rotate the camera.
func (m *MouseLook) Warped() {
	m.jump = true
}
