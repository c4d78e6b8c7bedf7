// Copyright 2025 The Equimap Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensormap

import (
	"github.com/equimap-ml/equimap/internal/labels"
	"github.com/equimap-ml/equimap/internal/tensormap"
)

// Type aliases for public API

// Shape represents the dimensions of a dense array.
// Example: Shape{4, 3, 7} labels 4 samples, a size-3 component axis, and
// 7 properties.
type Shape = tensormap.Shape

// Array is a dense row-major float64 array.
type Array = tensormap.Array

// Block holds one dense fragment of a tensor map: a values array plus a
// labeling for each of its axes.
type Block = tensormap.Block

// Gradient holds the derivative of a block's values with respect to one
// named parameter.
type Gradient = tensormap.Gradient

// TensorMap is an ordered mapping from label keys to blocks.
type TensorMap = tensormap.TensorMap

// Creation functions

// NewArray creates a zero-initialized array with the given shape.
func NewArray(shape Shape) (*Array, error) {
	return tensormap.NewArray(shape)
}

// FromSlice creates an array from a flat row-major slice.
//
// Example:
//
//	values, err := tensormap.FromSlice(
//	    []float64{1, 1, 2, 2, 3, 3, 4, 4},
//	    tensormap.Shape{4, 2},
//	)
func FromSlice(data []float64, shape Shape) (*Array, error) {
	return tensormap.FromSlice(data, shape)
}

// NewBlock creates a block, validating every axis of values against its
// labeling.
func NewBlock(values *Array, samples *labels.Labels, components []*labels.Labels, properties *labels.Labels) (*Block, error) {
	return tensormap.NewBlock(values, samples, components, properties)
}

// NewGradient creates a gradient, validating the data's leading axis against
// its sample labeling and each interior axis against the component
// labelings.
func NewGradient(data *Array, samples *labels.Labels, components []*labels.Labels) (*Gradient, error) {
	return tensormap.NewGradient(data, samples, components)
}

// New creates a tensor map from keys and blocks. The number of blocks must
// equal the number of key rows.
func New(keys *labels.Labels, blocks []*Block) (*TensorMap, error) {
	return tensormap.New(keys, blocks)
}
