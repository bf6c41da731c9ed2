package main

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultFlightState(t *testing.T) {
	st := DefaultFlightState()
	assert.InDelta(t, 29.92, st.BaroSetting, 1e-4)
	assert.Equal(t, "----", st.Waypoint)
	assert.Zero(t, st.Pitch)
	assert.Zero(t, st.Heading)
}

func TestStateStoreSetGet(t *testing.T) {
	store := NewStateStore()
	assert.Equal(t, DefaultFlightState(), store.Get())

	want := FlightState{Pitch: 5, Heading: 123, Waypoint: "KAPA"}
	store.Set(want)
	assert.Equal(t, want, store.Get())
}

func TestStateStoreLastWriteWins(t *testing.T) {
	store := NewStateStore()
	store.Set(FlightState{Altitude: 1000})
	store.Set(FlightState{Altitude: 2000})
	assert.Equal(t, float32(2000), store.Get().Altitude)
}

func TestStateStoreUpdate(t *testing.T) {
	store := NewStateStore()
	store.Set(FlightState{Altitude: 5000, BaroSetting: 29.92})

	store.Update(func(s *FlightState) {
		s.BaroSetting = 30.01
	})

	got := store.Get()
	assert.Equal(t, float32(30.01), got.BaroSetting)
	assert.Equal(t, float32(5000), got.Altitude, "other fields untouched")
}

func TestStateStoreConcurrentAccess(t *testing.T) {
	store := NewStateStore()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(n float32) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				store.Set(FlightState{Heading: n})
			}
		}(float32(i))
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = store.Get()
			}
		}()
	}
	wg.Wait()

	assert.Less(t, store.Get().Heading, float32(8))
}
