// Package render draws bifurcation diagrams from a generic [Scatter] of
// (x, y, color) points with fixed axis ranges.
//
// [FromMatrix] converts a sweep into a Scatter; [PNG], [SVG] and [ASCII]
// draw it. Points are never filtered beyond clipping to the axis ranges, so
// the renderer decides what a diagram looks like and the sweep only
// supplies data.
package render
