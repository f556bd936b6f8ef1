// SPDX-License-Identifier: MIT

package dataset

import "errors"

var (
	// ErrEmpty indicates a CSV without a header or without any data row.
	ErrEmpty = errors.New("dataset: empty table")

	// ErrNonNumeric indicates a feature cell that is not a finite number.
	ErrNonNumeric = errors.New("dataset: non-numeric value")

	// ErrUnknownColumn indicates a label column missing from the header.
	ErrUnknownColumn = errors.New("dataset: unknown column")

	// ErrNoFeatures indicates a table whose only column is the label.
	ErrNoFeatures = errors.New("dataset: no feature columns")

	// ErrShape indicates names or labels whose length disagrees with the matrix.
	ErrShape = errors.New("dataset: shape mismatch")
)
