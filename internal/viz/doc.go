// Package viz renders a running self-assembly simulation in the terminal.
//
// The live view is a Bubble Tea program:
//
//   - [Model]: steps an [assembly.Model] on every tick and draws the channel
//   - [Canvas]: braille dot canvas, one per layer, merged by [Compose]
//   - [PlotFraction]: asciigraph chart of the assembled fraction
//
// Unassembled and assembled particles are drawn on separate layers so each
// keeps its colour. When alpha is non-zero the hotspot column x_p is marked
// with a dotted line.
//
// # Key Bindings
//
//	Space - Pause/Resume simulation
//	N     - Single step while paused
//	R     - Rebuild the simulation from its parameters and seed
//	T     - Cycle color themes
//	G     - Toggle GIF recording
//	?     - Show help overlay
//
// # Recording
//
// G starts capturing one frame per tick; pressing it again writes the frames
// as an animated GIF to the configured path.
package viz
