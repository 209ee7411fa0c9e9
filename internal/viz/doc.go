// Package viz provides terminal-based visualization for the particle
// sandbox.
//
// The package implements a live TUI using the Bubble Tea framework:
//
//   - [Model]: live view of a running simulation with a stats panel
//   - [Canvas]: Braille-based pixel canvas for high-fidelity rendering
//
// # Key Bindings
//
//	Space - Pause/Resume simulation
//	R     - Reset to an empty pile
//	S     - Stir the container
//	Tab   - Cycle tunable parameters
//	↑/↓   - Adjust the selected parameter
//	?     - Show help overlay
package viz
