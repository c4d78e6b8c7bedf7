// Copyright 2025 The Equimap Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package aggregate sums per-atom tensor representations into per-structure
// representations.
//
// The single operation, SumOverStructures, consumes a TensorMap whose block
// samples carry a "structure" field, sums all rows belonging to the same
// structure, and re-derives attached positional gradients under the same
// grouping.
//
// Example:
//
//	perStructure, err := aggregate.SumOverStructures(perAtom)
package aggregate

import (
	"github.com/equimap-ml/equimap/internal/aggregate"
	"github.com/equimap-ml/equimap/internal/parallel"
	"github.com/equimap-ml/equimap/internal/tensormap"
)

// MissingFieldError reports that a required label field is absent from a
// block's or gradient's sample labeling.
type MissingFieldError = aggregate.MissingFieldError

// ShapeMismatchError reports that a block's gradient data cannot be laid out
// consistently with its labelings.
type ShapeMismatchError = aggregate.ShapeMismatchError

// Config controls parallel execution across blocks.
type Config = parallel.Config

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	return parallel.DefaultConfig()
}

// Sequential returns a config that disables parallelism.
func Sequential() Config {
	return parallel.Sequential()
}

// SumOverStructures sums the per-atom rows of every block into per-structure
// rows, re-deriving attached gradients under the same grouping.
//
// The output has the same keys as the input, in the same order; each output
// block has one sample row per distinct structure id, ascending. The input
// is never mutated.
func SumOverStructures(tensor *tensormap.TensorMap) (*tensormap.TensorMap, error) {
	return aggregate.SumOverStructures(tensor)
}

// SumOverStructuresWith is SumOverStructures with explicit parallelism
// control.
func SumOverStructuresWith(tensor *tensormap.TensorMap, cfg Config) (*tensormap.TensorMap, error) {
	return aggregate.SumOverStructuresWith(tensor, cfg)
}
