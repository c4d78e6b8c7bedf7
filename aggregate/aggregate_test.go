// Copyright 2025 The Equimap Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package aggregate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/equimap-ml/equimap/aggregate"
	"github.com/equimap-ml/equimap/labels"
	"github.com/equimap-ml/equimap/tensormap"
)

// TestSumOverStructures_PublicSurface aggregates a small per-atom map
// through the public API end to end.
func TestSumOverStructures_PublicSurface(t *testing.T) {
	samples, err := labels.New([]string{"structure", "atom"}, [][]int32{
		{0, 0}, {0, 1}, {1, 0}, {1, 1},
	})
	require.NoError(t, err)
	properties, err := labels.New([]string{"n"}, [][]int32{{0}, {1}})
	require.NoError(t, err)

	values, err := tensormap.FromSlice(
		[]float64{1, 1, 2, 2, 3, 3, 4, 4},
		tensormap.Shape{4, 2},
	)
	require.NoError(t, err)

	block, err := tensormap.NewBlock(values, samples, nil, properties)
	require.NoError(t, err)

	keys, err := labels.New([]string{"spherical_harmonics_l"}, [][]int32{{0}})
	require.NoError(t, err)
	tensor, err := tensormap.New(keys, []*tensormap.Block{block})
	require.NoError(t, err)

	out, err := aggregate.SumOverStructures(tensor)
	require.NoError(t, err)
	require.Equal(t, 1, out.Len())

	got := out.Block(0)
	assert.Equal(t, []float64{3, 3, 7, 7}, got.Values.Data())
	assert.Equal(t, []string{"structure"}, got.Samples.Names())

	// Sequential config takes the same path.
	seq, err := aggregate.SumOverStructuresWith(tensor, aggregate.Sequential())
	require.NoError(t, err)
	assert.True(t, seq.Block(0).Values.Equal(got.Values))
}
