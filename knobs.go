package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// KnobZone is a tappable region standing in for one of the instrument's
// bezel knobs.
type KnobZone struct {
	X, Y, W, H int
	Label      string
	OnPress    func()
	OnScroll   func(steps int) // wheel over the zone, knob-style
}

// Knobs routes clicks, touches and the mouse wheel to the bezel knob zones.
type Knobs struct {
	zones   []*KnobZone
	screenW int
	screenH int

	hintColor color.RGBA
	showHints bool
}

func NewKnobs() *Knobs {
	return &Knobs{
		hintColor: color.RGBA{255, 255, 255, 40},
	}
}

// AddZone registers a knob region; positions are set in UpdateLayout.
func (k *Knobs) AddZone(label string, onPress func(), onScroll func(int)) *KnobZone {
	z := &KnobZone{Label: label, OnPress: onPress, OnScroll: onScroll}
	k.zones = append(k.zones, z)
	return z
}

// SetupDefaultZones wires the two bezel knobs: the left knob (PUSH-SET)
// adjusts baro by scroll and resets it to standard on push; the right knob
// (MENU) cycles the overlay and toggles the demo by scroll.
func (k *Knobs) SetupDefaultZones(app *App) {
	k.AddZone("PUSH-SET",
		func() { app.setBaro(29.92) },
		func(steps int) { app.nudgeBaro(float32(steps) * 0.01) })

	k.AddZone("MENU",
		func() { app.showOverlay = !app.showOverlay },
		func(steps int) {
			if steps != 0 {
				app.toggleDemo()
			}
		})
}

// UpdateLayout repositions the zones over the bezel corners.
func (k *Knobs) UpdateLayout(screenW, screenH int) {
	if k.screenW == screenW && k.screenH == screenH {
		return
	}
	k.screenW = screenW
	k.screenH = screenH

	zoneSize := screenH / 6
	for _, z := range k.zones {
		z.W, z.H = zoneSize, zoneSize
		switch z.Label {
		case "PUSH-SET":
			z.X, z.Y = 0, screenH-zoneSize
		case "MENU":
			z.X, z.Y = screenW-zoneSize, screenH-zoneSize
		}
	}
}

// Update checks click, touch and wheel input against the zones.
func (k *Knobs) Update() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		k.handlePress(mx, my)
	}

	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		tx, ty := ebiten.TouchPosition(id)
		k.handlePress(tx, ty)
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		mx, my := ebiten.CursorPosition()
		if z := k.zoneAt(mx, my); z != nil && z.OnScroll != nil {
			steps := 1
			if dy < 0 {
				steps = -1
			}
			z.OnScroll(steps)
		}
	}
}

func (k *Knobs) handlePress(x, y int) {
	if z := k.zoneAt(x, y); z != nil && z.OnPress != nil {
		z.OnPress()
	}
}

func (k *Knobs) zoneAt(x, y int) *KnobZone {
	for _, z := range k.zones {
		if x >= z.X && x <= z.X+z.W && y >= z.Y && y <= z.Y+z.H {
			return z
		}
	}
	return nil
}

// Draw renders faint zone outlines when hints are enabled (H key).
func (k *Knobs) Draw(screen *ebiten.Image) {
	if !k.showHints {
		return
	}
	for _, z := range k.zones {
		vector.StrokeRect(screen, float32(z.X), float32(z.Y), float32(z.W), float32(z.H), 1, k.hintColor, true)
	}
}
