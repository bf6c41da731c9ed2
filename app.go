package main

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// App is the frame driver: ebiten calls Update then Draw once per display
// refresh for as long as the game runs. It owns the smoothed state
// exclusively; everything upstream only ever overwrites the store.
type App struct {
	cfg     *Config
	store   *StateStore
	feed    *Feed
	demo    *Demo
	gauge   *Gauge
	overlay *Overlay
	knobs   *Knobs
	gpio    *GPIOController

	anim   SmoothedState
	canvas *ebitenCanvas
	frame  *ebiten.Image // offscreen square the gauge renders into

	width, height int
	demoMode      bool
	showOverlay   bool
	showHelp      bool
	quitting      bool
}

// NewApp wires the widget together from config.
func NewApp(cfg *Config) *App {
	app := &App{
		cfg:      cfg,
		store:    NewStateStore(),
		demo:     NewDemo(),
		gauge:    NewGauge(),
		overlay:  NewOverlay(),
		knobs:    NewKnobs(),
		gpio:     NewGPIOController(),
		width:    cfg.Window.Width,
		height:   cfg.Window.Height,
		demoMode: cfg.Demo.Enabled,
	}
	if cfg.Feed.Enabled {
		app.feed = NewFeed(cfg.Feed.URL, app.store)
	}
	app.knobs.SetupDefaultZones(app)
	app.gpio.SetupDefaultButtons(app)
	return app
}

// Run starts the render loop and blocks until the widget is torn down.
func (a *App) Run() error {
	ebiten.SetWindowSize(a.width, a.height)
	ebiten.SetWindowTitle("AV-30 Attitude Indicator")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if a.cfg.Window.Fullscreen {
		ebiten.SetFullscreen(true)
	}

	if a.feed != nil {
		a.feed.Start()
	}
	if err := a.gpio.Start(); err != nil {
		log.Printf("GPIO controller error: %v", err)
	}

	return ebiten.RunGame(a)
}

// Shutdown cleans up background work.
func (a *App) Shutdown() {
	if a.feed != nil {
		a.feed.Stop()
	}
	a.gpio.Stop()
}

// Update advances one animation tick: read the latest target, smooth toward
// it. Returning ebiten.Termination cancels the loop; no further frame runs
// after that.
func (a *App) Update() error {
	a.width, a.height = ebiten.WindowSize()

	a.knobs.UpdateLayout(a.width, a.height)
	a.knobs.Update()
	a.handleKeyboard()

	if a.quitting {
		return ebiten.Termination
	}

	if a.demoMode {
		a.store.Set(a.demo.Step(1 / float32(ebiten.TPS())))
	}

	a.anim.Step(a.store.Get())
	return nil
}

// Draw paints the frame: gauge centered, overlays on top.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{8, 8, 10, 255})

	size := a.width
	if a.height < size {
		size = a.height
	}
	if size < 100 {
		size = 100
	}

	if a.frame == nil || a.frame.Bounds().Dx() != size {
		if a.frame != nil {
			a.frame.Dispose()
		}
		a.frame = ebiten.NewImage(size, size)
		a.canvas = NewEbitenCanvas(a.frame)
	}
	a.frame.Fill(color.RGBA{8, 8, 10, 255})
	a.canvas.Retarget(a.frame)

	a.gauge.Draw(a.canvas, a.anim, a.store.Get(), float32(size))

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(a.width-size)/2, float64(a.height-size)/2)
	screen.DrawImage(a.frame, op)

	if a.showOverlay {
		feedUp := a.feed != nil && a.feed.IsConnected()
		a.overlay.Draw(screen, a.store.Get(), a.anim, feedUp, a.demoMode)
		a.drawStatusBar(screen)
	}

	a.knobs.Draw(screen)

	if a.showHelp {
		a.drawHelp(screen)
	}
}

// Layout returns the screen dimensions
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// handleKeyboard implements the demo controls. Nudging any flight value by
// hand drops out of demo mode, the way panning a moving map drops follow.
func (a *App) handleKeyboard() {
	// Attitude nudges (held keys, per-tick steps)
	if ebiten.IsKeyPressed(ebiten.KeyUp) {
		a.manualNudge(func(s *FlightState) { s.Pitch = clamp32(s.Pitch+0.4, -90, 90) })
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) {
		a.manualNudge(func(s *FlightState) { s.Pitch = clamp32(s.Pitch-0.4, -90, 90) })
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		a.manualNudge(func(s *FlightState) { s.Roll = clamp32(s.Roll+0.8, -180, 180) })
	}
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		a.manualNudge(func(s *FlightState) { s.Roll = clamp32(s.Roll-0.8, -180, 180) })
	}
	if ebiten.IsKeyPressed(ebiten.KeyBracketRight) {
		a.manualNudge(func(s *FlightState) { s.Heading = normalizeHeading(s.Heading + 1) })
	}
	if ebiten.IsKeyPressed(ebiten.KeyBracketLeft) {
		a.manualNudge(func(s *FlightState) { s.Heading = normalizeHeading(s.Heading - 1) })
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		a.manualNudge(func(s *FlightState) { s.Airspeed++ })
	}
	if ebiten.IsKeyPressed(ebiten.KeyZ) {
		a.manualNudge(func(s *FlightState) {
			if s.Airspeed > 0 {
				s.Airspeed--
			}
		})
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		a.manualNudge(func(s *FlightState) { s.Altitude += 25 })
	}
	if ebiten.IsKeyPressed(ebiten.KeyX) {
		a.manualNudge(func(s *FlightState) { s.Altitude -= 25 })
	}
	if ebiten.IsKeyPressed(ebiten.KeyC) {
		a.manualNudge(func(s *FlightState) { s.VerticalSpeed += 50 })
	}
	if ebiten.IsKeyPressed(ebiten.KeyV) {
		a.manualNudge(func(s *FlightState) { s.VerticalSpeed -= 50 })
	}
	if ebiten.IsKeyPressed(ebiten.KeyPeriod) {
		a.manualNudge(func(s *FlightState) { s.Slip = clamp32(s.Slip+0.02, -1, 1) })
	}
	if ebiten.IsKeyPressed(ebiten.KeyComma) {
		a.manualNudge(func(s *FlightState) { s.Slip = clamp32(s.Slip-0.02, -1, 1) })
	}

	// Mode toggles
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		a.toggleDemo()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		a.showOverlay = !a.showOverlay
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		a.knobs.showHints = !a.knobs.showHints
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.demoMode = false
		a.store.Set(DefaultFlightState())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) || inpututil.IsKeyJustPressed(ebiten.KeySlash) {
		a.showHelp = !a.showHelp
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		a.quitting = true
		a.Shutdown()
	}
}

// manualNudge edits the stored record directly and leaves demo mode so the
// script stops overwriting the hand-flown values.
func (a *App) manualNudge(fn func(*FlightState)) {
	a.demoMode = false
	a.store.Update(fn)
}

// toggleDemo flips between the scripted flight and external/manual input.
func (a *App) toggleDemo() {
	a.demoMode = !a.demoMode
}

// setBaro sets the barometric reference; in demo mode the script owns the
// record, so adjust its baro instead.
func (a *App) setBaro(v float32) {
	if a.demoMode {
		a.demo.Baro = v
		return
	}
	a.store.Update(func(s *FlightState) { s.BaroSetting = v })
}

// nudgeBaro turns the set knob one click.
func (a *App) nudgeBaro(delta float32) {
	if a.demoMode {
		a.demo.Baro = clamp32(a.demo.Baro+delta, 28, 31)
		return
	}
	a.store.Update(func(s *FlightState) {
		s.BaroSetting = clamp32(s.BaroSetting+delta, 28, 31)
	})
}

func (a *App) drawStatusBar(screen *ebiten.Image) {
	barH := 20
	barY := a.height - barH

	vector.DrawFilledRect(screen, 0, float32(barY), float32(a.width), float32(barH), color.RGBA{0, 0, 0, 200}, true)

	src := "Manual"
	if a.demoMode {
		src = "Demo"
	} else if a.feed != nil {
		if a.feed.IsConnected() {
			src = "Feed: connected"
		} else {
			src = "Feed: reconnecting"
		}
	}

	status := " " + src + " | D=Demo O=Overlay F1=Help"
	ebitenutil.DebugPrintAt(screen, status, 5, barY+3)
}

func (a *App) drawHelp(screen *ebiten.Image) {
	help := []string{
		"=== AV-30 Attitude Indicator ===",
		"",
		"Up/Down     Pitch",
		"Left/Right  Roll",
		"[ ]         Heading",
		"A/Z         Airspeed",
		"S/X         Altitude",
		"C/V         Vertical speed",
		",/.         Slip",
		"Wheel(L)    Baro set",
		"Click(L)    Baro 29.92",
		"Click(R)    Toggle overlay",
		"D           Toggle demo flight",
		"O           Toggle overlay",
		"H           Show knob zones",
		"R           Reset values",
		"F11         Fullscreen",
		"F1/?        This help",
		"Q/Esc       Quit",
	}

	panelW := 250
	panelH := len(help)*16 + 20
	panelX := 10
	panelY := 50

	vector.DrawFilledRect(screen, float32(panelX), float32(panelY), float32(panelW), float32(panelH), color.RGBA{0, 0, 0, 200}, true)

	y := panelY + 10
	for _, line := range help {
		ebitenutil.DebugPrintAt(screen, line, panelX+10, y)
		y += 16
	}
}
