// Package main is the interactive terrain viewer.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-terrain/internal/config"
	"github.com/Faultbox/midgard-terrain/internal/engine/camera"
	"github.com/Faultbox/midgard-terrain/internal/engine/input"
	"github.com/Faultbox/midgard-terrain/internal/engine/lighting"
	"github.com/Faultbox/midgard-terrain/internal/engine/renderer"
	"github.com/Faultbox/midgard-terrain/internal/engine/screenshot"
	"github.com/Faultbox/midgard-terrain/internal/engine/window"
	"github.com/Faultbox/midgard-terrain/internal/logger"
	"github.com/Faultbox/midgard-terrain/internal/terrain"
)

const title = "Midgard Terrain"

// Camera speeds per second.
const (
	panSpeed   = 60
	orbitSpeed = 1.5
	zoomSpeed  = 1.2
	sunSpeed   = 45 // degrees
	dragScale  = 0.005
	wheelScale = 0.1
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== " + title + " ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("viewer closed normally")
}

func run(cfg *config.Config) error {
	gen, err := cfg.Noise.Generator()
	if err != nil {
		return err
	}

	start := time.Now()
	field, err := terrain.NewField(cfg.Terrain.FieldParams(), gen)
	if err != nil {
		return err
	}
	mesh := field.Mesh()
	logger.Info("terrain generated",
		zap.Int("quads", field.QuadCount()),
		zap.Int("vertices", len(mesh.Vertices)),
		zap.Duration("elapsed", time.Since(start)),
	)

	win, err := window.New(window.Config{
		Title:      title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return err
	}
	defer win.Close()

	r, err := renderer.New()
	if err != nil {
		return err
	}
	defer r.Destroy()

	r.Upload(mesh)
	r.Resize(win.Size())

	cam := camera.NewOrbitCamera()
	cam.FitToBounds(mesh.Bounds)

	opts := renderer.Options{
		Wireframe: cfg.Render.Wireframe,
		Fog:       cfg.Render.Fog,
		FogNear:   cfg.Render.FogNear,
		FogFar:    cfg.Render.FogFar,
		FogColor:  cfg.Render.FogColor,
	}
	sun := lighting.Sun{Longitude: cfg.Render.SunLongitude, Latitude: cfg.Render.SunLatitude}
	shots := screenshot.New("screenshots", "terrain")

	in := input.New()
	last := time.Now()
	fpsStart := last
	frames := 0

	for !in.Update() {
		now := time.Now()
		dt := float32(now.Sub(last).Seconds())
		last = now

		if in.Resized {
			r.Resize(win.Size())
		}
		if in.Pressed(sdl.SCANCODE_F) {
			opts.Wireframe = !opts.Wireframe
			logger.Debug("wireframe toggled", zap.Bool("on", opts.Wireframe))
		}
		if in.Pressed(sdl.SCANCODE_G) {
			opts.Fog = !opts.Fog
			logger.Debug("fog toggled", zap.Bool("on", opts.Fog))
		}

		cam.Pan(
			in.Axis(sdl.SCANCODE_W, sdl.SCANCODE_S)*panSpeed*dt,
			in.Axis(sdl.SCANCODE_D, sdl.SCANCODE_A)*panSpeed*dt,
		)
		cam.Orbit(
			in.Axis(sdl.SCANCODE_RIGHT, sdl.SCANCODE_LEFT)*orbitSpeed*dt-in.DragX*dragScale,
			in.Axis(sdl.SCANCODE_UP, sdl.SCANCODE_DOWN)*orbitSpeed*dt+in.DragY*dragScale,
		)
		cam.Zoom(in.Axis(sdl.SCANCODE_E, sdl.SCANCODE_Q)*zoomSpeed*dt + in.Wheel*wheelScale)
		sun.Rotate(
			in.Axis(sdl.SCANCODE_L, sdl.SCANCODE_J)*sunSpeed*dt,
			in.Axis(sdl.SCANCODE_I, sdl.SCANCODE_K)*sunSpeed*dt,
		)
		opts.LightDir = sun.LightDir()

		w, h := win.Size()
		aspect := float32(w) / float32(max(h, 1))
		viewProj := cam.ProjectionMatrix(aspect).Mul4(cam.ViewMatrix())
		r.Render(viewProj, cam.Position(), opts)

		// Read back before the swap leaves the back buffer undefined.
		if in.Pressed(sdl.SCANCODE_P) {
			if path, err := shots.SavePixels(r.ReadPixels(w, h), w, h); err != nil {
				logger.Warn("screenshot failed", zap.Error(err))
			} else {
				logger.Info("screenshot saved", zap.String("path", path))
			}
		}
		win.SwapBuffers()

		frames++
		if elapsed := now.Sub(fpsStart); elapsed >= time.Second {
			win.SetTitle(fmt.Sprintf("%s - %.0f fps", title, float64(frames)/elapsed.Seconds()))
			frames = 0
			fpsStart = now
		}
	}

	return nil
}
