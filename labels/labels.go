// Copyright 2025 The Equimap Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package labels provides named integer label columns for tensor axes.
//
// A Labels value is an ordered sequence of named-field integer tuples
// indexing one axis of a dense array: the sample axis, a component axis, or
// the property axis of a tensor block.
//
// Example:
//
//	samples, err := labels.New(
//	    []string{"structure", "atom"},
//	    [][]int32{{0, 0}, {0, 1}, {1, 0}},
//	)
package labels

import (
	"github.com/equimap-ml/equimap/internal/labels"
)

// Labels is an ordered set of named integer columns labeling one axis of a
// dense array. Each row is one entry along the axis; rows are unique.
type Labels = labels.Labels

// New creates a labeling from column names and rows.
//
// Names must be non-empty and unique. Every row must have exactly one value
// per name, and rows must be unique.
func New(names []string, rows [][]int32) (*Labels, error) {
	return labels.New(names, rows)
}

// Single returns the canonical labeling for an axis that carries no labels:
// one column named "_" with a single zero entry.
func Single() *Labels {
	return labels.Single()
}
