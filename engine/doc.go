// Package engine adapts github.com/Knetic/govaluate into the numeric
// evaluator used by calcpad.
//
// The accepted grammar is the calculator's: + - * / % ^ ( ) . and the
// functions sin cos tan asin acos atan log10 ln sqrt, with the constant e.
// `^` is exponentiation, `%` is floating-point modulo, angles are radians.
package engine
