package main

// Smoothing factors per animated field. Heading and slip converge a little
// differently from pitch/roll on the real instrument.
const (
	attitudeSmoothing = 0.15
	slipSmoothing     = 0.12
)

// SmoothedState carries the four low-pass-filtered fields the gauge animates.
// It is owned exclusively by the frame driver and advanced once per tick.
// Heading accumulates without wrapping so a turn through north stays smooth;
// the gauge re-wraps it for display.
type SmoothedState struct {
	Pitch   float32
	Roll    float32
	Heading float32
	Slip    float32

	seeded bool
}

// Step advances the smoothed state one frame toward target. The first call
// seeds the state so the gauge doesn't swing in from zero.
func (s *SmoothedState) Step(target FlightState) {
	if !s.seeded {
		s.Pitch = target.Pitch
		s.Roll = target.Roll
		s.Heading = target.Heading
		s.Slip = target.Slip
		s.seeded = true
		return
	}

	s.Pitch = lerp(s.Pitch, target.Pitch, attitudeSmoothing)
	s.Roll = lerp(s.Roll, target.Roll, attitudeSmoothing)
	s.Slip = lerp(s.Slip, target.Slip, slipSmoothing)

	// Headings take the shortest way around the rose: never more than 180
	// degrees of arc in one step.
	s.Heading += attitudeSmoothing * headingDelta(s.Heading, target.Heading)
}
