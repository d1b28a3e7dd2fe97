// Copyright 2025 go-ndarray Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package strided1d

import (
	"fmt"
	"slices"

	"github.com/ajroetker/go-ndarray/nd"
	"github.com/ajroetker/go-ndarray/nd/contrib/algo"
)

// dispatcher holds what Nullary, Unary and Reduce have in common.
type dispatcher struct {
	table   *Table
	idtypes [][]nd.DType
	odtypes []nd.DType
	policy  nd.OutputPolicy
}

// call is a validated dispatch over x.
type call struct {
	plan     *plan
	opts     options
	resolved nd.DType
	dtype    nd.DType
}

func newDispatcher(table *Table, idtypes [][]nd.DType, odtypes []nd.DType, policy nd.OutputPolicy) (dispatcher, error) {
	if err := table.Validate(); err != nil {
		return dispatcher{}, err
	}
	if len(idtypes) == 0 {
		return dispatcher{}, fmt.Errorf("%w: no input dtype sets", nd.ErrInvalidOption)
	}
	return dispatcher{
		table:   table,
		idtypes: cloneSets(idtypes),
		odtypes: slices.Clone(odtypes),
		policy:  policy,
	}, nil
}

func cloneSets(sets [][]nd.DType) [][]nd.DType {
	out := make([][]nd.DType, len(sets))
	for i, s := range sets {
		out[i] = slices.Clone(s)
	}
	return out
}

// prepare validates x, args and opts. withOutput resolves the output dtype
// without checking it against the allowed output dtypes.
func (d *dispatcher) prepare(x nd.Array, args []nd.Array, opts []Option, withOutput bool) (*call, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}
	if err := d.checkInputs(x, args); err != nil {
		return nil, err
	}
	p, err := newPlan(x.Shape(), o)
	if err != nil {
		return nil, err
	}
	if err := p.checkArgs(args, 1); err != nil {
		return nil, err
	}
	c := &call{plan: p, opts: o}
	if !withOutput {
		if o.hasDType {
			return nil, fmt.Errorf("%w: WithDType needs an output", nd.ErrInvalidOption)
		}
		return c, nil
	}
	c.resolved, err = nd.ResolveOutputDType(d.policy, x.DType())
	if err != nil {
		return nil, err
	}
	c.dtype = c.resolved
	if o.hasDType {
		c.dtype = o.dtype
	}
	return c, nil
}

// prepareApply is prepare for dispatches that allocate their output.
func (d *dispatcher) prepareApply(x nd.Array, args []nd.Array, opts []Option) (*call, error) {
	c, err := d.prepare(x, args, opts, true)
	if err != nil {
		return nil, err
	}
	if err := d.checkOutputDType(c.resolved, c.dtype, len(d.idtypes)); err != nil {
		return nil, err
	}
	return c, nil
}

func (d *dispatcher) checkInputs(x nd.Array, args []nd.Array) error {
	if x == nil {
		return fmt.Errorf("%w: nil input array", nd.ErrInvalidOption)
	}
	if got, want := 1+len(args), len(d.idtypes); got != want {
		return fmt.Errorf("%w: got %d input arrays, want %d", nd.ErrInvalidOption, got, want)
	}
	for i := range d.idtypes {
		a := x
		if i > 0 {
			a = args[i-1]
		}
		if a == nil {
			return fmt.Errorf("%w: argument %d is nil", nd.ErrInvalidOption, i)
		}
		if allowed := d.idtypes[i]; allowed != nil && !slices.Contains(allowed, a.DType()) {
			return &nd.DTypeError{Arg: i, Got: a.DType(), Allowed: allowed}
		}
	}
	return nil
}

// checkOutputDType accepts got as the output dtype of a dispatch whose
// policy resolved to resolved.
func (d *dispatcher) checkOutputDType(resolved, got nd.DType, arg int) error {
	if d.odtypes != nil && !slices.Contains(d.odtypes, got) {
		return &nd.DTypeError{Arg: arg, Got: got, Allowed: d.odtypes}
	}
	if !nd.IsAllowedCast(resolved, got, nd.CastSameKind) {
		return fmt.Errorf("%w: %s output cannot hold %s results", nd.ErrInvalidCast, got, resolved)
	}
	return nil
}

// checkOutput validates a caller-supplied output.
func (d *dispatcher) checkOutput(c *call, out nd.Array, shape []int) error {
	if out == nil {
		return fmt.Errorf("%w: nil output array", nd.ErrInvalidOption)
	}
	if err := d.checkOutputDType(c.resolved, out.DType(), len(d.idtypes)); err != nil {
		return err
	}
	if !slices.Equal(out.Shape(), shape) {
		return fmt.Errorf("%w: output has shape %v, want %v", nd.ErrShapeMismatch, out.Shape(), shape)
	}
	c.dtype = out.DType()
	return nil
}

func argSlicers(args []nd.Array) []*slicer {
	out := make([]*slicer, len(args))
	for i, a := range args {
		out[i] = argSlicer(a)
	}
	return out
}

// Nullary applies kernels that modify their input in place.
type Nullary struct {
	d dispatcher
}

// NewNullary returns a nullary dispatcher. idtypes[0] lists the dtypes
// allowed for the input array and idtypes[i] those of extra argument i; a
// nil set allows any dtype. Kernels are looked up by the input dtype.
func NewNullary(table *Table, idtypes [][]nd.DType) (*Nullary, error) {
	d, err := newDispatcher(table, idtypes, nil, nd.PolicySame)
	if err != nil {
		return nil, err
	}
	return &Nullary{d: d}, nil
}

// Assign runs the kernels on x in place.
func (n *Nullary) Assign(x nd.Array, args []nd.Array, opts ...Option) error {
	c, err := n.d.prepare(x, args, opts, false)
	if err != nil {
		return err
	}
	n.run(c, x, args)
	return nil
}

// Apply runs the kernels on a copy of x laid out in the requested order
// and returns the copy.
func (n *Nullary) Apply(x nd.Array, args []nd.Array, opts ...Option) (nd.Array, error) {
	c, err := n.d.prepare(x, args, opts, false)
	if err != nil {
		return nil, err
	}
	out, err := nd.Alloc(x.DType(), x.Shape(), c.opts.outputOrder(x))
	if err != nil {
		return nil, err
	}
	if err := algo.CopyAny(x, out, nd.CastNone); err != nil {
		return nil, err
	}
	n.run(c, out, args)
	return out, nil
}

func (n *Nullary) run(c *call, x nd.Array, args []nd.Array) {
	kernel := n.d.table.Lookup(x.DType())
	slicers := append([]*slicer{c.plan.coreSlicer(x)}, argSlicers(args)...)
	c.plan.run(kernel, slicers, c.opts.pool)
}

// Unary applies kernels that map each 1-D slice of the input to the
// corresponding slice of an output of the same shape.
type Unary struct {
	d dispatcher
}

// NewUnary returns a unary dispatcher. idtypes is as for NewNullary;
// odtypes lists the allowed output dtypes (nil allows any) and policy
// resolves the output dtype from the input dtype. Kernels are looked up by
// the input and output dtypes.
func NewUnary(table *Table, idtypes [][]nd.DType, odtypes []nd.DType, policy nd.OutputPolicy) (*Unary, error) {
	d, err := newDispatcher(table, idtypes, odtypes, policy)
	if err != nil {
		return nil, err
	}
	return &Unary{d: d}, nil
}

// Apply allocates the output and runs the kernels.
func (u *Unary) Apply(x nd.Array, args []nd.Array, opts ...Option) (nd.Array, error) {
	c, err := u.d.prepareApply(x, args, opts)
	if err != nil {
		return nil, err
	}
	out, err := nd.Alloc(c.dtype, x.Shape(), c.opts.outputOrder(x))
	if err != nil {
		return nil, err
	}
	u.run(c, x, out, args)
	return out, nil
}

// Assign runs the kernels into out, which must have x's shape. The output
// dtype is out's; WithDType is ignored.
func (u *Unary) Assign(x nd.Array, args []nd.Array, out nd.Array, opts ...Option) error {
	c, err := u.d.prepare(x, args, withoutDType(opts), true)
	if err != nil {
		return err
	}
	if err := u.d.checkOutput(c, out, x.Shape()); err != nil {
		return err
	}
	u.run(c, x, out, args)
	return nil
}

func (u *Unary) run(c *call, x, out nd.Array, args []nd.Array) {
	kernel := u.d.table.Lookup(x.DType(), out.DType())
	slicers := append([]*slicer{c.plan.coreSlicer(x), c.plan.coreSlicer(out)}, argSlicers(args)...)
	c.plan.run(kernel, slicers, c.opts.pool)
}

// Reduce applies kernels that reduce each 1-D slice of the input to one
// output element.
type Reduce struct {
	d dispatcher
}

// NewReduce returns a reducing dispatcher. The arguments are as for
// NewUnary.
func NewReduce(table *Table, idtypes [][]nd.DType, odtypes []nd.DType, policy nd.OutputPolicy) (*Reduce, error) {
	d, err := newDispatcher(table, idtypes, odtypes, policy)
	if err != nil {
		return nil, err
	}
	return &Reduce{d: d}, nil
}

// Apply allocates the output and runs the kernels.
func (r *Reduce) Apply(x nd.Array, args []nd.Array, opts ...Option) (nd.Array, error) {
	c, err := r.d.prepareApply(x, args, opts)
	if err != nil {
		return nil, err
	}
	out, err := nd.Alloc(c.dtype, c.plan.reducedShape(), c.opts.outputOrder(x))
	if err != nil {
		return nil, err
	}
	r.run(c, x, out, args)
	return out, nil
}

// Assign runs the kernels into out, whose shape must be the one Apply
// would allocate. The output dtype is out's; WithDType is ignored.
func (r *Reduce) Assign(x nd.Array, args []nd.Array, out nd.Array, opts ...Option) error {
	c, err := r.d.prepare(x, args, withoutDType(opts), true)
	if err != nil {
		return err
	}
	if err := r.d.checkOutput(c, out, c.plan.reducedShape()); err != nil {
		return err
	}
	r.run(c, x, out, args)
	return nil
}

func (r *Reduce) run(c *call, x, out nd.Array, args []nd.Array) {
	kernel := r.d.table.Lookup(x.DType(), out.DType())
	slicers := append([]*slicer{c.plan.coreSlicer(x), c.plan.outSlicer(out)}, argSlicers(args)...)
	c.plan.run(kernel, slicers, c.opts.pool)
}

// withoutDType appends an option clearing any WithDType override.
func withoutDType(opts []Option) []Option {
	return append(slices.Clone(opts), func(o *options) error {
		o.hasDType = false
		return nil
	})
}
