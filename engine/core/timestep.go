package core

import "time"

// Timestep is a frame or tick duration in seconds.
type Timestep float32

func TimestepOf(d time.Duration) Timestep { return Timestep(d.Seconds()) }

func (t Timestep) Seconds() float32      { return float32(t) }
func (t Timestep) Milliseconds() float32 { return float32(t) * 1000 }
