// Package puzzle registers the daily puzzles and runs them over input
// files.
//
// Each [Puzzle] turns the lines of one input into an [Answer].  Every
// registered day carries an embedded sample input with its known
// answers, which [Check] uses to verify the solver.
package puzzle
