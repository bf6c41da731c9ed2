package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"
)

// GPIO button assignments (BCM numbering) for panel-mounted Raspberry Pi
// builds, where the gauge runs full screen with physical buttons beside the
// bezel standing in for the knobs.
const (
	gpioBaroUp   = 17 // Pin 11
	gpioBaroDown = 27 // Pin 13
	gpioPushSet  = 22 // Pin 15
	gpioMenu     = 23 // Pin 16
	gpioDemo     = 24 // Pin 18
)

const gpioSysfs = "/sys/class/gpio"

// gpioButton is one active-low panel button with debounce state.
type gpioButton struct {
	pin        int
	name       string
	pressed    bool
	lastChange time.Time
	onPress    func()
}

// GPIOController polls sysfs GPIO pins and fires button callbacks. On hosts
// without GPIO it stays disabled and costs nothing.
type GPIOController struct {
	buttons  []*gpioButton
	enabled  bool
	debounce time.Duration
	stopChan chan struct{}
}

func NewGPIOController() *GPIOController {
	return &GPIOController{
		debounce: 50 * time.Millisecond,
		stopChan: make(chan struct{}),
	}
}

// AddButton registers an active-low button on the given BCM pin.
func (g *GPIOController) AddButton(pin int, name string, onPress func()) {
	g.buttons = append(g.buttons, &gpioButton{pin: pin, name: name, onPress: onPress})
}

// SetupDefaultButtons wires the standard panel mapping: baro up/down, the
// two knob pushes, and the demo toggle.
func (g *GPIOController) SetupDefaultButtons(app *App) {
	g.AddButton(gpioBaroUp, "BARO+", func() { app.nudgeBaro(0.01) })
	g.AddButton(gpioBaroDown, "BARO-", func() { app.nudgeBaro(-0.01) })
	g.AddButton(gpioPushSet, "PUSH-SET", func() {
		app.setBaro(29.92)
		log.Println("Baro reset to 29.92")
	})
	g.AddButton(gpioMenu, "MENU", func() { app.showOverlay = !app.showOverlay })
	g.AddButton(gpioDemo, "DEMO", func() {
		app.toggleDemo()
		log.Printf("Demo mode: %v", app.demoMode)
	})
}

// Start exports the pins and begins polling. Missing sysfs just disables the
// controller; a panel without buttons is not an error.
func (g *GPIOController) Start() error {
	if _, err := os.Stat(gpioSysfs); os.IsNotExist(err) {
		log.Println("GPIO not available (not running on Pi?) - panel buttons disabled")
		return nil
	}

	for _, btn := range g.buttons {
		if err := g.preparePin(btn.pin); err != nil {
			log.Printf("Warning: GPIO %d (%s) unavailable: %v", btn.pin, btn.name, err)
		}
	}

	g.enabled = true
	go g.pollLoop()
	log.Println("GPIO panel buttons started")
	return nil
}

// Stop halts polling and unexports the pins.
func (g *GPIOController) Stop() {
	if !g.enabled {
		return
	}
	close(g.stopChan)
	g.enabled = false

	for _, btn := range g.buttons {
		writeSysfs(gpioSysfs+"/unexport", fmt.Sprintf("%d", btn.pin))
	}
}

func (g *GPIOController) pollLoop() {
	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-g.stopChan:
			return
		case now := <-ticker.C:
			for _, btn := range g.buttons {
				g.poll(btn, now)
			}
		}
	}
}

func (g *GPIOController) poll(btn *gpioButton, now time.Time) {
	raw, err := os.ReadFile(fmt.Sprintf("%s/gpio%d/value", gpioSysfs, btn.pin))
	if err != nil {
		return
	}

	// Buttons pull to ground: pressed reads as 0.
	pressed := strings.TrimSpace(string(raw)) == "0"
	if pressed == btn.pressed || now.Sub(btn.lastChange) < g.debounce {
		return
	}

	btn.pressed = pressed
	btn.lastChange = now
	if pressed && btn.onPress != nil {
		btn.onPress()
	}
}

// preparePin exports a pin (if needed) and sets it as an input.
func (g *GPIOController) preparePin(pin int) error {
	pinDir := fmt.Sprintf("%s/gpio%d", gpioSysfs, pin)
	if _, err := os.Stat(pinDir); os.IsNotExist(err) {
		if err := writeSysfs(gpioSysfs+"/export", fmt.Sprintf("%d", pin)); err != nil {
			return err
		}
		// sysfs takes a moment to create the pin directory
		time.Sleep(100 * time.Millisecond)
	}
	return writeSysfs(pinDir+"/direction", "in")
}

func writeSysfs(path, value string) error {
	return os.WriteFile(path, []byte(value), 0644)
}
