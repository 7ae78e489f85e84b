// Package viz renders diagnostic views of a generated system.
//
// Generation never depends on rendering: the generator hands a finished
// [Diagnostics] value to whatever [Renderer] it was given.
//
//   - [TerminalRenderer]: asciigraph plots styled with lipgloss
//   - [PNGRenderer]: stacked mode subplots and an output plot via gonum/plot
//   - [RenderFunc]: adapter for plain functions, handy in tests
//
// # Example
//
//	r := viz.NewTerminalRenderer(os.Stdout)
//	sys, err := modal.Generate(ctx, r)
package viz
