// Package monkey simulates monkeys throwing items according to worry
// levels.
//
// Each monkey's operation is an expression over old, such as
// "old * 19" or "old * old", compiled once with expr-lang/expr and run
// for every inspected item.
package monkey
