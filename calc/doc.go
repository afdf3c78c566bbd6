// Package calc implements the calculator core: the insertion rules that
// assemble an expression from key presses, parenthesis balancing, and the
// evaluation of a finished expression into the string shown on the display.
//
// The pure functions (Plan, Insert, Delete, Balance, Format) work on an
// explicit State. Session binds them to a buffer.Buffer for interactive use.
package calc
