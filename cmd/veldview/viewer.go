package main

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/veld/internal/config"
	"github.com/Faultbox/veld/internal/engine/camera"
	"github.com/Faultbox/veld/internal/engine/debug"
	"github.com/Faultbox/veld/internal/engine/input"
	"github.com/Faultbox/veld/internal/engine/material"
	"github.com/Faultbox/veld/internal/engine/renderer"
	"github.com/Faultbox/veld/internal/engine/resource"
	"github.com/Faultbox/veld/internal/engine/scene"
	"github.com/Faultbox/veld/internal/engine/terrain"
	"github.com/Faultbox/veld/internal/engine/window"
	"github.com/Faultbox/veld/internal/logger"
	"github.com/Faultbox/veld/pkg/math"
)

const (
	fieldOfView = 60.0 * math32Pi / 180.0
	nearPlane   = 0.5
	farPlane    = 4000.0

	math32Pi = 3.14159265
)

// viewer owns the window, renderer and scene, and runs the main loop.
type viewer struct {
	cfg *config.Config

	win   *window.Window
	rend  *renderer.Renderer
	scene *scene.Scene
	in    *input.Input
	cam   *camera.OrbitCamera

	view   *scene.TerrainView
	fitted bool

	wireframe bool
	brushSize float32
}

func newViewer(cfg *config.Config) (*viewer, error) {
	win, err := window.New(window.Config{
		Title:      "Veld Terrain Viewer",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, err
	}

	rend, err := renderer.New(renderer.Config{
		Width:  cfg.Graphics.Width,
		Height: cfg.Graphics.Height,
	})
	if err != nil {
		win.Close()
		return nil, err
	}
	rend.Resize(win.GetSize())

	resources := resource.NewManager(cfg.AssetRoot)
	sc, err := scene.New(resources)
	if err != nil {
		win.Close()
		return nil, err
	}

	v := &viewer{
		cfg:       cfg,
		win:       win,
		rend:      rend,
		scene:     sc,
		in:        input.New(),
		cam:       camera.NewOrbitCamera(),
		brushSize: 5,
	}
	if err := v.setupTerrain(); err != nil {
		sc.Destroy()
		win.Close()
		return nil, err
	}
	return v, nil
}

func (v *viewer) setupTerrain() error {
	var err error
	if v.cfg.Terrain.MaterialPath != "" {
		v.view, err = v.scene.AddTerrain(v.cfg.Terrain.MaterialPath)
		if err != nil {
			return fmt.Errorf("terrain material: %w", err)
		}
	} else {
		v.view = v.scene.AddTerrainWithDefinition(material.Definition{
			HeightMap: v.cfg.Terrain.HeightmapPath,
		})
	}

	t := v.view.Terrain
	t.SetXZScale(v.cfg.Terrain.XZScale)
	t.SetYScale(v.cfg.Terrain.YScale)
	if v.cfg.Grass.Enabled {
		t.SetGrassTypes([]terrain.GrassType{{
			ModelPath: v.cfg.Grass.ModelPath,
			Density:   int32(v.cfg.Grass.Density),
			Distance:  v.cfg.Grass.Distance,
			Rotation:  terrain.RotationYAxis,
		}})
	}
	return nil
}

// Run drives the main loop until the window is closed.
func (v *viewer) Run() error {
	for {
		if v.in.Update() {
			return nil
		}
		v.handleEvents()
		v.handleHeldKeys()
		v.fitCameraOnce()

		camPos := v.cam.Position()
		v.scene.Update(camPos)

		v.rend.Begin()
		v.scene.Render(v.viewProj(), camPos)
		v.win.SwapBuffers()
	}
}

func (v *viewer) viewProj() math.Mat4 {
	w, h := v.rend.Size()
	aspect := float32(w) / float32(h)
	proj := math.Perspective(fieldOfView, aspect, nearPlane, farPlane)
	return proj.Mul(v.cam.ViewMatrix())
}

func (v *viewer) handleEvents() {
	for _, e := range v.in.Events() {
		switch e.Type {
		case input.EventWindowResize:
			v.rend.Resize(e.Width, e.Height)

		case input.EventMouseMove:
			if v.in.IsButtonDown(sdl.BUTTON_LEFT) {
				v.cam.HandleDrag(float32(e.RelX), float32(e.RelY))
			}

		case input.EventMouseWheel:
			v.cam.HandleZoom(e.WheelY)

		case input.EventMouseDown:
			if e.Button == sdl.BUTTON_RIGHT {
				v.pick(e.MouseX, e.MouseY)
			}

		case input.EventKeyDown:
			switch e.Key {
			case sdl.SCANCODE_F:
				v.wireframe = !v.wireframe
				v.rend.SetWireframe(v.wireframe)
			case sdl.SCANCODE_F12:
				v.screenshot()
			}
		}
	}
}

func (v *viewer) handleHeldKeys() {
	var forward, right, up float32
	if v.in.IsKeyDown(sdl.SCANCODE_W) {
		forward++
	}
	if v.in.IsKeyDown(sdl.SCANCODE_S) {
		forward--
	}
	if v.in.IsKeyDown(sdl.SCANCODE_D) {
		right++
	}
	if v.in.IsKeyDown(sdl.SCANCODE_A) {
		right--
	}
	if v.in.IsKeyDown(sdl.SCANCODE_E) {
		up++
	}
	if v.in.IsKeyDown(sdl.SCANCODE_Q) {
		up--
	}
	if forward != 0 || right != 0 || up != 0 {
		v.cam.HandleMovement(forward, right, up)
	}
}

// fitCameraOnce frames the terrain as soon as its height field is ready.
func (v *viewer) fitCameraOnce() {
	if v.fitted {
		return
	}
	w, h := v.view.Terrain.Size()
	if w == 0 {
		return
	}
	xz := v.view.Terrain.XZScale()
	v.cam.FitTerrain(float32(w)*xz, float32(h)*xz)
	v.fitted = true
}

// pick casts a ray through the cursor and moves the brush highlight to the
// hit point.
func (v *viewer) pick(x, y int) {
	w, h := v.rend.Size()
	hit, ok := v.scene.Pick(float32(x), float32(y), float32(w), float32(h), v.viewProj())
	if !ok {
		return
	}
	p := hit.Point()
	v.view.Terrain.SetBrush(p, v.brushSize)
	logger.Info("terrain picked",
		zap.Float32("x", p.X),
		zap.Float32("y", p.Y),
		zap.Float32("z", p.Z),
		zap.Float32("distance", hit.Distance))
}

func (v *viewer) screenshot() {
	pixels, w, h := v.rend.ReadPixels()
	path, err := debug.SaveScreenshot("screenshots", pixels, w, h)
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

func (v *viewer) Close() {
	if v.scene != nil {
		v.scene.Destroy()
	}
	if v.win != nil {
		v.win.Close()
	}
}
