package aggregate

import "fmt"

// MissingFieldError reports that a required label field is absent from a
// block's or gradient's sample labeling.
type MissingFieldError struct {
	Key   []int32 // key row of the offending block
	Where string  // which labeling, e.g. "samples" or `gradient "positions" samples`
	Field string  // the missing field name
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("aggregate: block %v: %s has no %q field", e.Key, e.Where, e.Field)
}

// ShapeMismatchError reports that a block's gradient data cannot be laid out
// consistently with its labelings.
type ShapeMismatchError struct {
	Key    []int32 // key row of the offending block
	Where  string  // which part of the block is inconsistent
	Reason string
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("aggregate: block %v: %s: %s", e.Key, e.Where, e.Reason)
}
