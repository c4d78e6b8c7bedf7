// Package aggregate sums per-atom representations into per-structure
// representations over the labeled block tensor model.
package aggregate

import (
	"fmt"

	"github.com/equimap-ml/equimap/internal/labels"
	"github.com/equimap-ml/equimap/internal/parallel"
	"github.com/equimap-ml/equimap/internal/tensormap"
)

// Label fields the aggregation resolves per block.
const (
	fieldStructure = "structure"
	fieldAtom      = "atom"
	fieldSample    = "sample"
)

// SumOverStructures sums the per-atom rows of every block into per-structure
// rows, re-deriving attached gradients under the same grouping.
//
// For each block, rows whose samples share the same "structure" value are
// summed into one output row. Output rows are ordered by ascending structure
// id, and the output samples carry a single "structure" field. Component and
// property labelings pass through unchanged. Gradients are group-summed over
// the distinct (structure, atom) pairs of their own sample labeling.
//
// The input is never mutated; output blocks own their storage exclusively.
// The output has the same keys as the input, in the same order.
func SumOverStructures(tensor *tensormap.TensorMap) (*tensormap.TensorMap, error) {
	return SumOverStructuresWith(tensor, parallel.DefaultConfig())
}

// SumOverStructuresWith is SumOverStructures with explicit parallelism
// control. Blocks are independent, so each is aggregated as one work unit;
// results are collected in key order regardless of scheduling.
func SumOverStructuresWith(tensor *tensormap.TensorMap, cfg parallel.Config) (*tensormap.TensorMap, error) {
	n := tensor.Len()
	blocks := make([]*tensormap.Block, n)
	errs := make([]error, n)

	parallel.For(n, func(i int) {
		blocks[i], errs[i] = aggregateBlock(tensor.Keys().Row(i), tensor.Block(i))
	}, cfg)

	// First failing block wins, keeping errors deterministic across runs.
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	out, err := tensormap.New(tensor.Keys(), blocks)
	if err != nil {
		return nil, fmt.Errorf("aggregate: building output map: %w", err)
	}
	return out, nil
}

func aggregateBlock(key []int32, block *tensormap.Block) (*tensormap.Block, error) {
	if _, ok := block.Samples.Position(fieldStructure); !ok {
		return nil, &MissingFieldError{Key: key, Where: "samples", Field: fieldStructure}
	}

	structures, err := block.Samples.SortedUnique(fieldStructure)
	if err != nil {
		return nil, err
	}
	// Explicit id -> output row mapping: structure ids are grouping keys,
	// not storage indices, and need not be dense or zero-based.
	rowOf := make(map[int32]int, len(structures))
	for i, s := range structures {
		rowOf[s] = i
	}

	column, err := block.Samples.Column(fieldStructure)
	if err != nil {
		return nil, err
	}

	shape := block.Values.Shape()
	outShape := append(tensormap.Shape{len(structures)}, shape[1:]...)
	values, err := tensormap.NewArray(outShape)
	if err != nil {
		return nil, fmt.Errorf("aggregate: block %v: allocating output values: %w", key, err)
	}
	for i, s := range column {
		addInto(values.Row(rowOf[s]), block.Values.Row(i))
	}

	sampleRows := make([][]int32, len(structures))
	for i, s := range structures {
		sampleRows[i] = []int32{s}
	}
	samples, err := labels.New([]string{fieldStructure}, sampleRows)
	if err != nil {
		return nil, fmt.Errorf("aggregate: block %v: building output samples: %w", key, err)
	}

	out, err := tensormap.NewBlock(values, samples, block.Components, block.Properties)
	if err != nil {
		return nil, fmt.Errorf("aggregate: block %v: building output block: %w", key, err)
	}

	for _, parameter := range block.GradientParameters() {
		gradient, err := aggregateGradient(key, parameter, block.Gradient(parameter), rowOf)
		if err != nil {
			return nil, err
		}
		if err := out.AddGradient(parameter, gradient); err != nil {
			return nil, fmt.Errorf("aggregate: block %v: attaching %q gradient: %w", key, parameter, err)
		}
	}
	return out, nil
}

// aggregateGradient sums gradient rows sharing the same (structure, atom)
// pair, i.e. over the per-structure center atoms, leaving one row per
// displaced atom of each structure.
func aggregateGradient(key []int32, parameter string, gradient *tensormap.Gradient, rowOf map[int32]int) (*tensormap.Gradient, error) {
	where := fmt.Sprintf("gradient %q samples", parameter)
	for _, field := range []string{fieldStructure, fieldAtom} {
		if _, ok := gradient.Samples.Position(field); !ok {
			return nil, &MissingFieldError{Key: key, Where: where, Field: field}
		}
	}

	pairs, err := gradient.Samples.UniquePairs(fieldStructure, fieldAtom)
	if err != nil {
		return nil, err
	}
	groupOf := make(map[[2]int32]int, len(pairs))
	for i, p := range pairs {
		groupOf[p] = i
	}

	structureCol, err := gradient.Samples.Column(fieldStructure)
	if err != nil {
		return nil, err
	}
	atomCol, err := gradient.Samples.Column(fieldAtom)
	if err != nil {
		return nil, err
	}

	shape := gradient.Data.Shape()
	outShape := append(tensormap.Shape{len(pairs)}, shape[1:]...)
	data, err := tensormap.NewArray(outShape)
	if err != nil {
		return nil, fmt.Errorf("aggregate: block %v: allocating %q gradient data: %w", key, parameter, err)
	}
	for i := range structureCol {
		addInto(data.Row(groupOf[[2]int32{structureCol[i], atomCol[i]}]), gradient.Data.Row(i))
	}

	// The sample field links each gradient row to its owning row in the
	// aggregated block, so it holds the structure's output row index.
	sampleRows := make([][]int32, len(pairs))
	for i, p := range pairs {
		row, ok := rowOf[p[0]]
		if !ok {
			return nil, &ShapeMismatchError{
				Key:    key,
				Where:  where,
				Reason: fmt.Sprintf("structure %d does not appear in the block samples", p[0]),
			}
		}
		sampleRows[i] = []int32{int32(row), p[0], p[1]}
	}
	samples, err := labels.New([]string{fieldSample, fieldStructure, fieldAtom}, sampleRows)
	if err != nil {
		return nil, fmt.Errorf("aggregate: block %v: building %q gradient samples: %w", key, parameter, err)
	}

	out, err := tensormap.NewGradient(data, samples, gradient.Components)
	if err != nil {
		return nil, fmt.Errorf("aggregate: block %v: building %q gradient: %w", key, parameter, err)
	}
	return out, nil
}

// addInto accumulates src into dst elementwise. Both slices have the cell
// size of their array; lengths match by construction.
func addInto(dst, src []float64) {
	for i, v := range src {
		dst[i] += v
	}
}
