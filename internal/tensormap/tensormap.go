// Package tensormap provides the block-sparse labeled tensor data model:
// dense Arrays, labeled Blocks with optional gradients, and the TensorMap
// collection keyed by a labeling.
package tensormap

import (
	"fmt"

	"github.com/equimap-ml/equimap/internal/labels"
)

// TensorMap is an ordered mapping from label keys to blocks.
//
// Keys are unique (enforced by the labels.Labels construction) and block
// order follows key order. A TensorMap is immutable after construction.
type TensorMap struct {
	keys   *labels.Labels
	blocks []*Block
}

// New creates a tensor map from keys and blocks. The number of blocks must
// equal the number of key rows.
func New(keys *labels.Labels, blocks []*Block) (*TensorMap, error) {
	if keys.Len() != len(blocks) {
		return nil, fmt.Errorf("tensormap: %d keys but %d blocks", keys.Len(), len(blocks))
	}
	for i, block := range blocks {
		if block == nil {
			return nil, fmt.Errorf("tensormap: block %d is nil", i)
		}
	}
	return &TensorMap{keys: keys, blocks: blocks}, nil
}

// Keys returns the key labeling.
func (t *TensorMap) Keys() *labels.Labels {
	return t.keys
}

// Len returns the number of blocks.
func (t *TensorMap) Len() int {
	return len(t.blocks)
}

// Block returns the i-th block, in key order.
// Panics if i is out of range.
func (t *TensorMap) Block(i int) *Block {
	if i < 0 || i >= len(t.blocks) {
		panic(fmt.Sprintf("tensormap: block index %d out of range [0, %d)", i, len(t.blocks)))
	}
	return t.blocks[i]
}

// BlockByKey returns the block stored under the given key row.
func (t *TensorMap) BlockByKey(key []int32) (*Block, bool) {
	i, ok := t.keys.RowPosition(key)
	if !ok {
		return nil, false
	}
	return t.blocks[i], true
}
