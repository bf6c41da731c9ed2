package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlay renders a raw-telemetry strip along the top of the window: the
// unsmoothed inputs exactly as supplied, next to the smoothed values the
// gauge animates. Vertical speed here is the raw number; only the gauge
// pointer clamps it.
type Overlay struct {
	screenW int

	textColor    color.RGBA
	warningColor color.RGBA
	bgColor      color.RGBA
}

func NewOverlay() *Overlay {
	return &Overlay{
		textColor:    color.RGBA{255, 255, 255, 255},
		warningColor: color.RGBA{255, 80, 80, 255},
		bgColor:      color.RGBA{0, 0, 0, 160},
	}
}

// Draw renders the overlay strip.
func (o *Overlay) Draw(screen *ebiten.Image, in FlightState, sm SmoothedState, feedUp, demoMode bool) {
	o.screenW = screen.Bounds().Dx()

	barH := 40
	vector.DrawFilledRect(screen, 0, 0, float32(o.screenW), float32(barH), o.bgColor, true)

	row1 := fmt.Sprintf("P:%+.1f R:%+.1f HDG:%03.0f SLIP:%+.2f",
		in.Pitch, in.Roll, normalizeHeading(in.Heading), in.Slip)
	ebitenutil.DebugPrintAt(screen, row1, 8, 4)

	row2 := fmt.Sprintf("IAS:%.0fkt ALT:%.0fft VS:%+.0ffpm BARO:%.2f %s %.1fnm",
		in.Airspeed, in.Altitude, in.VerticalSpeed, in.BaroSetting, in.Waypoint, in.Distance)
	ebitenutil.DebugPrintAt(screen, row2, 8, 20)

	// Source indicator top right; red when nothing is feeding the gauge.
	src := "NO SOURCE"
	switch {
	case demoMode:
		src = "DEMO"
	case feedUp:
		src = "FEED"
	}
	srcW := len(src)*7 + 8
	if src == "NO SOURCE" {
		o.drawTextBoxColored(screen, src, o.screenW-srcW-5, 4, o.warningColor)
	} else {
		o.drawTextBox(screen, src, o.screenW-srcW-5, 4)
	}

	// Smoothed attitude, for eyeballing the filter lag.
	smStr := fmt.Sprintf("smoothed P:%+.1f R:%+.1f H:%03.0f",
		sm.Pitch, sm.Roll, normalizeHeading(sm.Heading))
	ebitenutil.DebugPrintAt(screen, smStr, o.screenW-len(smStr)*7-8, 20)
}

// drawTextBox draws text over a dark box
func (o *Overlay) drawTextBox(screen *ebiten.Image, text string, x, y int) {
	w := len(text)*7 + 6
	vector.DrawFilledRect(screen, float32(x-3), float32(y-2), float32(w), 16, o.bgColor, true)
	ebitenutil.DebugPrintAt(screen, text, x, y)
}

// drawTextBoxColored draws text over a colored warning box
func (o *Overlay) drawTextBoxColored(screen *ebiten.Image, text string, x, y int, bg color.RGBA) {
	w := len(text)*7 + 6
	vector.DrawFilledRect(screen, float32(x-3), float32(y-2), float32(w), 16, bg, true)
	ebitenutil.DebugPrintAt(screen, text, x, y)
}
