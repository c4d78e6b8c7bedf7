// Copyright 2025 The Equimap Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensormap provides the block-sparse labeled tensor data model.
//
// # Overview
//
// A TensorMap is an ordered mapping from label keys to blocks. Each Block
// holds a dense row-major values Array together with a labeling for every
// axis:
//   - samples label the leading axis (one row per entry)
//   - components label the interior axes
//   - properties label the trailing axis
//
// A block may additionally carry Gradient sub-objects keyed by a parameter
// name (for example "positions"), each with its own data array, sample
// labeling, and component labelings.
//
// # Basic Usage
//
//	import (
//	    "github.com/equimap-ml/equimap/labels"
//	    "github.com/equimap-ml/equimap/tensormap"
//	)
//
//	samples, _ := labels.New([]string{"structure"}, [][]int32{{0}, {0}, {1}})
//	properties, _ := labels.New([]string{"n"}, [][]int32{{0}, {1}})
//	values, _ := tensormap.FromSlice([]float64{1, 1, 2, 2, 3, 3}, tensormap.Shape{3, 2})
//
//	block, _ := tensormap.NewBlock(values, samples, nil, properties)
//	keys, _ := labels.New([]string{"spherical_harmonics_l"}, [][]int32{{0}})
//	tensor, _ := tensormap.New(keys, []*tensormap.Block{block})
//
// # Invariants
//
// Keys are unique and block count equals key count; block order follows key
// order. For every block, values.Shape()[0] equals the number of sample
// rows. Constructors validate these invariants and return an error on
// violation.
//
// # Memory Management
//
// Arrays never share storage: constructors copy their inputs and Clone
// performs a deep copy. A TensorMap is immutable after construction.
package tensormap
