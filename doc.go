// Package xcover is your in-memory toolkit for exact-cover search:
// model a set-partitioning problem as items and options, and let a
// dancing-links engine enumerate the covers.
//
// 🚀 What is xcover?
//
//	A focused, pure-Go library built around one algorithm done well:
//		• Matrix builder: a fixed item universe plus validated option rows
//		• Dancing-links mesh: O(1) cover/uncover splicing over an index arena
//		• MRV column selection: always branch on the most constrained item
//		• Explicit-stack search: first solution, or exhaustive enumeration
//
// ✨ Why choose xcover?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – fixed row order and tie-breaks; repeatable results
//   - Pure Go – no cgo, no hidden deps
//   - Honest errors – eager validation with sentinel errors; an
//     unsatisfiable instance is an outcome, never an error
//
// Everything lives in one subpackage:
//
//	dlx/ — the exact-cover matrix, cover/uncover engine and solvers
//
// Quick example:
//
//	m, _ := dlx.NewMatrix(6)
//	m.AddOption(0, 3)
//	m.AddOption(1, 4)
//	m.AddOption(2, 5)
//	m.AddOption(0, 1)
//	m.AddOption(2, 3)
//	rows, ok := m.Solve() // ok == true, rows cover every item exactly once
//	_ = rows
//	_ = ok
//
// Encoding your puzzle (Sudoku cells, queen placements, pentomino
// tilings) into items and options is your side of the contract; the
// dlx package documentation shows the patterns, including slack
// options for at-most-once constraints.
package xcover
