package main

import "sync"

// FlightState is the flat record of current flight data driving the gauge.
// It is supplied whole on every external update; fields are not validated,
// out-of-range values simply draw where the linear mappings put them.
type FlightState struct {
	Pitch         float32 `json:"pitch"`         // degrees, nose-up positive
	Roll          float32 `json:"roll"`          // degrees, right-wing-down positive
	Heading       float32 `json:"heading"`       // degrees, 0-360
	Airspeed      float32 `json:"airspeed"`      // knots
	Altitude      float32 `json:"altitude"`      // feet
	VerticalSpeed float32 `json:"verticalSpeed"` // feet/minute
	Slip          float32 `json:"slip"`          // -1..1
	BaroSetting   float32 `json:"baroSetting"`   // inches of mercury
	Waypoint      string  `json:"waypoint"`
	Distance      float32 `json:"distance"` // nautical miles
}

// DefaultFlightState returns the record the gauge shows before any update
// arrives.
func DefaultFlightState() FlightState {
	return FlightState{
		BaroSetting: 29.92,
		Waypoint:    "----",
	}
}

// StateStore holds the latest FlightState. Updates from the feed, the demo
// profile and the knobs all overwrite it; the render loop reads it once per
// tick. Last write wins, no queuing.
type StateStore struct {
	mu sync.RWMutex
	s  FlightState
}

func NewStateStore() *StateStore {
	return &StateStore{s: DefaultFlightState()}
}

func (st *StateStore) Set(s FlightState) {
	st.mu.Lock()
	st.s = s
	st.mu.Unlock()
}

func (st *StateStore) Get() FlightState {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.s
}

// Update applies fn to the current state under the lock. Used by the knobs
// and keyboard nudges, which adjust single fields.
func (st *StateStore) Update(fn func(*FlightState)) {
	st.mu.Lock()
	fn(&st.s)
	st.mu.Unlock()
}
