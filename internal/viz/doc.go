// Package viz provides terminal output for bifurcation sweeps.
//
//   - [Canvas]: braille sub-pixel canvas used for ASCII diagrams
//   - [SweepModel]: Bubble Tea progress view for a running sweep
//   - lipgloss styles, [Panel], [ProgressBar] and [Field] helpers
//
// # Key Bindings
//
//	q, Esc, Ctrl+C - cancel the sweep and quit
package viz
