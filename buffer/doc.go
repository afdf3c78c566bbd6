// Package buffer implements the pure, cluster-accurate model of a calculator
// expression line.
//
// Positions are 0-based grapheme-cluster indexes into the line.
// Spans are half-open: [Start, End).
package buffer
