// SPDX-License-Identifier: MIT

// Package dataset moves tables between CSV and the matrix package.
//
// ReadCSV parses a headed CSV through a gota DataFrame, splits off an optional
// label column and returns the remaining numeric columns as an n×d
// *matrix.Dense. WriteCSV does the reverse for a projected table, one column
// per component (PC1..PCk) plus the labels.
//
// Every non-label cell must parse as a finite float; the first offending cell
// is reported by row and column name.
package dataset
