// Package verlet implements a 2D constraint-based particle simulation
// using Störmer-Verlet integration.
//
// Particles spawn inside a circular container, fall under gravity, are
// held inside the boundary by a projection-and-reflect constraint pass,
// and collide with each other through pairwise positional correction
// plus an implicit-velocity impulse:
//
//   - [Particle]: point mass with position, previous position and a
//     force accumulator; velocity is always derived, never stored
//   - [Config]: immutable construction-time tuning (gravity, radii,
//     capacity, cadence, sub-steps, damping, restitution)
//   - [Simulation]: owns the particle set and the per-frame pipeline
//   - [SpawnAngle]: deterministic launch-direction cycle
//
// # Example
//
//	sim, _ := verlet.New(verlet.DefaultConfig())
//	for frame := 1; frame <= 600; frame++ {
//		sim.Advance(1.0/60, frame)
//	}
//	for _, p := range sim.Particles() {
//		draw(p.Pos, sim.Radius())
//	}
//
// # Determinism
//
// Given an identical Config and an identical sequence of (dt, frame)
// calls, particle trajectories are bit-reproducible. Nothing in the
// state path reads the wall clock or a random source; frame timings
// in [Stats] are instrumentation only.
//
// # Thread Safety
//
// Simulation instances are NOT thread-safe. Advance and the accessors
// must be called from a single goroutine; for parallel parameter
// sweeps run independent Simulations (see the experiment package).
package verlet
