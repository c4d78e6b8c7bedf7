package tensormap

import (
	"fmt"
	"sort"

	"github.com/equimap-ml/equimap/internal/labels"
)

// Block holds one dense fragment of a tensor map: a values array plus a
// labeling for each of its axes.
//
// The leading axis is labeled by Samples, each interior axis by one entry of
// Components, and the trailing axis by Properties. A block may additionally
// carry gradients of its values with respect to named parameters.
type Block struct {
	Values     *Array
	Samples    *labels.Labels
	Components []*labels.Labels
	Properties *labels.Labels

	gradients map[string]*Gradient
}

// Gradient holds the derivative of a block's values with respect to one
// named parameter, with its own sample labeling and component labelings.
// The trailing axis shares the owning block's property labeling.
type Gradient struct {
	Data       *Array
	Samples    *labels.Labels
	Components []*labels.Labels
}

// NewBlock creates a block, validating every axis of values against its
// labeling: shape[0] against samples, each interior axis against the
// corresponding component labeling, and the trailing axis against
// properties.
func NewBlock(values *Array, samples *labels.Labels, components []*labels.Labels, properties *labels.Labels) (*Block, error) {
	shape := values.Shape()
	if want := 2 + len(components); len(shape) != want {
		return nil, fmt.Errorf("values rank %d does not match %d labeled axes (samples + %d components + properties)",
			len(shape), want, len(components))
	}
	if shape[0] != samples.Len() {
		return nil, fmt.Errorf("values has %d sample rows, samples labeling has %d", shape[0], samples.Len())
	}
	for i, component := range components {
		if shape[1+i] != component.Len() {
			return nil, fmt.Errorf("values axis %d has size %d, component labeling %d has %d entries",
				1+i, shape[1+i], i, component.Len())
		}
	}
	if last := shape[len(shape)-1]; last != properties.Len() {
		return nil, fmt.Errorf("values has %d properties, properties labeling has %d", last, properties.Len())
	}
	return &Block{
		Values:     values,
		Samples:    samples,
		Components: components,
		Properties: properties,
	}, nil
}

// NewGradient creates a gradient, validating the data's leading axis against
// its sample labeling and each interior axis against the component
// labelings. The trailing axis is validated against the owning block's
// properties when the gradient is attached.
func NewGradient(data *Array, samples *labels.Labels, components []*labels.Labels) (*Gradient, error) {
	shape := data.Shape()
	if want := 2 + len(components); len(shape) != want {
		return nil, fmt.Errorf("gradient data rank %d does not match %d labeled axes", len(shape), want)
	}
	if shape[0] != samples.Len() {
		return nil, fmt.Errorf("gradient data has %d sample rows, samples labeling has %d", shape[0], samples.Len())
	}
	for i, component := range components {
		if shape[1+i] != component.Len() {
			return nil, fmt.Errorf("gradient data axis %d has size %d, component labeling %d has %d entries",
				1+i, shape[1+i], i, component.Len())
		}
	}
	return &Gradient{
		Data:       data,
		Samples:    samples,
		Components: components,
	}, nil
}

// AddGradient attaches a gradient to the block under the given parameter
// name. The gradient's trailing axis must match the block's properties.
func (b *Block) AddGradient(parameter string, gradient *Gradient) error {
	if _, ok := b.gradients[parameter]; ok {
		return fmt.Errorf("block already has a gradient for parameter %q", parameter)
	}
	shape := gradient.Data.Shape()
	if last := shape[len(shape)-1]; last != b.Properties.Len() {
		return fmt.Errorf("gradient for %q has %d properties, block has %d", parameter, last, b.Properties.Len())
	}
	if b.gradients == nil {
		b.gradients = make(map[string]*Gradient)
	}
	b.gradients[parameter] = gradient
	return nil
}

// HasGradient reports whether the block carries a gradient for the parameter.
func (b *Block) HasGradient(parameter string) bool {
	_, ok := b.gradients[parameter]
	return ok
}

// Gradient returns the gradient for the parameter, or nil if absent.
func (b *Block) Gradient(parameter string) *Gradient {
	return b.gradients[parameter]
}

// GradientParameters returns the names of all attached gradients, sorted.
func (b *Block) GradientParameters() []string {
	params := make([]string, 0, len(b.gradients))
	for name := range b.gradients {
		params = append(params, name)
	}
	sort.Strings(params)
	return params
}
