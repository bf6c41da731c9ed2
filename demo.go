package main

import "math"

// Demo generates a gentle scripted flight so the gauge animates with nothing
// upstream: lazy banked S-turns with coordinated heading drift, a phugoid
// pitch cycle, and the climb/descent, airspeed and distance that follow from
// them.
type Demo struct {
	t        float32 // elapsed seconds
	heading  float32
	altitude float32
	distance float32

	// Baro survives the per-tick overwrite so the knobs can adjust it while
	// the demo is flying.
	Baro float32
}

func NewDemo() *Demo {
	return &Demo{
		heading:  350, // starts just west of north so the rose wraps early
		altitude: 6500,
		distance: 24.0,
		Baro:     29.92,
	}
}

// Step advances the script by dt seconds and returns the full record for
// this tick.
func (d *Demo) Step(dt float32) FlightState {
	d.t += dt

	roll := 18 * sin32(d.t*0.25)
	pitch := 4 * sin32(d.t*0.35)
	slip := 0.25 * sin32(d.t*0.7)

	vs := pitch * 140 // fpm, roughly what the pitch would give
	airspeed := 110 - 2*pitch

	// Turn rate from bank angle at this airspeed, the usual 1091·tan(φ)/TAS.
	rate := 1091 * float32(math.Tan(float64(radians(roll)))) / airspeed
	d.heading = normalizeHeading(d.heading + rate*dt)

	d.altitude += vs / 60 * dt
	d.distance -= airspeed * dt / 3600
	if d.distance < 0 {
		d.distance = 24.0
	}

	return FlightState{
		Pitch:         pitch,
		Roll:          roll,
		Heading:       d.heading,
		Airspeed:      airspeed,
		Altitude:      d.altitude,
		VerticalSpeed: vs,
		Slip:          slip,
		BaroSetting:   d.Baro,
		Waypoint:      "KDEN",
		Distance:      d.distance,
	}
}
