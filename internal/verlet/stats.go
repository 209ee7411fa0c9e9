package verlet

import (
	"fmt"
	"time"
)

// Stats reports what the last Advance call did and where its time
// went. Durations sum the phase cost over every sub-step of the
// frame. Instrumentation only; nothing here feeds back into state.
type Stats struct {
	Frame      int
	Particles  int
	Spawned    bool
	Forces     time.Duration
	Boundary   time.Duration
	Collisions time.Duration
	Integrate  time.Duration
}

// Total returns the combined phase time for the frame.
func (s Stats) Total() time.Duration {
	return s.Forces + s.Boundary + s.Collisions + s.Integrate
}

func (s Stats) String() string {
	return fmt.Sprintf("particles: %d | forces: %s boundary: %s collisions: %s integrate: %s",
		s.Particles, s.Forces, s.Boundary, s.Collisions, s.Integrate)
}
