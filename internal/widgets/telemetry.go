package widgets

import (
	"math"
	"sync/atomic"
)

// Telemetry feeds live values to widgets.
type Telemetry interface {
	// SourceValue returns the value of a mix source, in -1024..1024.
	SourceValue(id uint32) int
	// TimerSeconds returns the elapsed seconds of timer i.
	TimerSeconds(i int) int
	ModelName() string
}

// Static is a Telemetry returning zero for every source.
type Static struct {
	Model string
}

func (s Static) SourceValue(id uint32) int { return 0 }
func (s Static) TimerSeconds(i int) int    { return 0 }
func (s Static) ModelName() string         { return s.Model }

// Simulated is a Telemetry whose values sweep over time. Advance moves
// it forward by one frame; it is safe to read from another goroutine.
type Simulated struct {
	Model  string
	frames atomic.Int64
}

// Advance moves the simulation forward by n frames.
func (s *Simulated) Advance(n int) {
	s.frames.Add(int64(n))
}

func (s *Simulated) SourceValue(id uint32) int {
	phase := float64(s.frames.Load())/20 + float64(id)
	return int(math.Round(1024 * math.Sin(phase)))
}

// TimerSeconds counts ten frames per second, one timer twice as fast as the previous.
func (s *Simulated) TimerSeconds(i int) int {
	return int(s.frames.Load()/10) << i
}

func (s *Simulated) ModelName() string { return s.Model }
