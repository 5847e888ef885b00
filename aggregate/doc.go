// Package aggregate answers the two directory size questions over a
// replayed model.
package aggregate
