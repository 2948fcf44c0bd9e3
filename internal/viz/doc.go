// Package viz is the terminal front end of the sieve animation.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Model]: ticks a [playback.Engine] and draws its grid
//   - a preset menu shown when no subcommand is given
//   - Theme selection with 6 built-in color schemes
//
// # Key Bindings
//
//	1-9 - Resize the grid to 10x10 .. 18x18 (restarts the animation)
//	T   - Cycle color themes
//	G   - Toggle GIF recording
//	?   - Show help overlay
//	Q   - Quit
//
// # Recording
//
// Recordings are rendered at the configured window dimension and saved to
// sieve.gif in the current directory unless another path is configured.
package viz
