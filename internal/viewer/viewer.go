// Package viewer implements the terrain viewer's main loop.
package viewer

import (
	"fmt"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/heightfield/internal/config"
	"github.com/Faultbox/heightfield/internal/engine/camera"
	"github.com/Faultbox/heightfield/internal/engine/debug"
	"github.com/Faultbox/heightfield/internal/engine/input"
	"github.com/Faultbox/heightfield/internal/engine/scene"
	"github.com/Faultbox/heightfield/internal/engine/texture"
	"github.com/Faultbox/heightfield/internal/engine/window"
	"github.com/Faultbox/heightfield/internal/logger"
)

// Title is the window title.
const Title = "Heightfield"

// frameSleep is the pause after each presented frame.
const frameSleep = time.Millisecond

// Viewer is the main viewer instance.
type Viewer struct {
	cfg     *config.Config
	log     *zap.Logger
	running bool

	window      *window.Window
	renderer    *scene.Renderer
	input       *input.Input
	camera      *camera.FirstPerson
	look        *input.MouseLook
	screenshots *debug.ScreenshotCapture

	size       [2]int32
	projection mgl32.Mat4
}

// New creates the window, builds the terrain and uploads it.
func New(cfg *config.Config) (*Viewer, error) {
	v := &Viewer{
		cfg:         cfg,
		log:         logger.Named("viewer"),
		input:       input.New(),
		look:        input.NewMouseLook(0, 0),
		screenshots: debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "heightfield"),
	}

	// Generation runs before the window opens so a bad config fails fast.
	t, err := BuildTerrain(cfg.Terrain, cfg.Debug)
	if err != nil {
		return nil, err
	}

	tex, err := texture.Load(cfg.Terrain.Texture)
	if err != nil {
		return nil, fmt.Errorf("loading terrain texture: %w", err)
	}

	v.window, err = window.New(window.Config{
		Title:        Title,
		Width:        cfg.Graphics.Width,
		Height:       cfg.Graphics.Height,
		Fullscreen:   cfg.Graphics.Fullscreen,
		VSync:        cfg.Graphics.VSync,
		Multisamples: cfg.Graphics.Multisamples,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	if err := gl.Init(); err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	v.log.Info("OpenGL initialized", zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))))

	v.renderer, err = scene.New(t.Surface, t.Normals, tex)
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	v.renderer.ShowNormals = cfg.Debug.ShowNormals

	v.camera = camera.NewFirstPerson(mgl32.Vec3(cfg.Camera.Position), mgl32.Vec3(cfg.Camera.Direction))
	v.camera.Speed = cfg.Camera.Speed

	w, h := v.window.GetSize()
	v.resize(w, h)

	v.log.Info("viewer initialized",
		zap.Int("width", w),
		zap.Int("height", h),
		zap.Bool("show_normals", cfg.Debug.ShowNormals),
	)
	return v, nil
}

// resize recomputes everything that depends on the window size.
func (v *Viewer) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	v.size = [2]int32{int32(width), int32(height)}

	aspect := float32(width) / float32(height)
	fov := camera.NewFieldOfView(v.cfg.Camera.FovY, aspect)
	v.projection = camera.Projection(fov.Y, aspect, v.cfg.Camera.Near, v.cfg.Camera.Far)

	v.look.FovX, v.look.FovY = fov.X, fov.Y

	dw, dh := v.window.DrawableSize()
	v.renderer.Resize(dw, dh)
}

// Run starts the main loop. It returns when the window is closed or Escape
// is pressed.
func (v *Viewer) Run() error {
	v.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	v.log.Info("starting main loop")

	for v.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		if v.input.Update() {
			v.running = false
			break
		}

		for _, event := range v.input.Events() {
			v.handleEvent(event)
		}
		if !v.running {
			break
		}

		v.update(dt)

		v.renderer.Draw(v.projection.Mul4(v.camera.View()))

		if v.input.IsKeyPressed(sdl.SCANCODE_F12) {
			v.screenshot()
		}

		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			if v.cfg.Debug.ShowFPS {
				v.log.Debug("fps", zap.Int("count", frameCount), zap.Float32("dt_ms", dt*1000))
			}
			frameCount = 0
			fpsTimer = time.Now()
		}

		time.Sleep(frameSleep)
	}

	return nil
}

func (v *Viewer) handleEvent(event input.Event) {
	switch event.Type {
	case input.EventQuit:
		v.running = false
	case input.EventWindowResize:
		v.resize(event.Width, event.Height)
	case input.EventKeyDown:
		switch event.Key {
		case sdl.SCANCODE_ESCAPE:
			v.running = false
		case sdl.SCANCODE_N:
			v.renderer.ShowNormals = !v.renderer.ShowNormals
			v.log.Debug("normals toggled", zap.Bool("show", v.renderer.ShowNormals))
		}
	case input.EventMouseMove:
		if pitch, yaw, ok := v.look.Move(event.MouseX, event.MouseY, v.size); ok {
			v.camera.Rotate(pitch, yaw)
		}
	}
}

// update wraps the cursor and moves the camera.
func (v *Viewer) update(dt float32) {
	if to, warp := input.WrapCursor(v.look.Last(), v.size, int32(v.cfg.Camera.CursorMargin)); warp {
		v.look.Warped()
		v.window.WarpCursor(to[0], to[1])
	}

	v.camera.SetMovement(input.Movement(v.input.Pressed()))
	v.camera.UpdatePos(dt)
}

func (v *Viewer) screenshot() {
	w, h := v.window.DrawableSize()
	path, err := v.screenshots.CaptureFromPixels(v.renderer.ReadPixels(w, h), w, h)
	if err != nil {
		v.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	v.log.Info("screenshot saved", zap.String("path", path))
}

// Close releases GPU resources and the window.
func (v *Viewer) Close() {
	v.log.Info("closing viewer")

	if v.renderer != nil {
		v.renderer.Destroy()
	}
	if v.window != nil {
		v.window.Close()
	}
}
