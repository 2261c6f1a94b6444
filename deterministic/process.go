package deterministic

import (
	"time"

	"github.com/aouyang1/go-datadives/feature"
	"github.com/aouyang1/go-datadives/timedataset"
)

// Process combines a constant column and a list of terms over one historical index.
type Process struct {
	index    *timedataset.Index
	constant bool
	dropZero bool
	terms    []Term
}

type ProcessOption func(*Process)

// WithConstant adds the const column of ones ahead of the terms.
func WithConstant() ProcessOption {
	return func(p *Process) {
		p.constant = true
	}
}

// WithDropZeroColumns removes the columns that are all zeros over the historical index,
// such as holidays never hit. Out of sample tables keep the same columns as in sample.
func WithDropZeroColumns() ProcessOption {
	return func(p *Process) {
		p.dropZero = true
	}
}

func WithTerms(terms ...Term) ProcessOption {
	return func(p *Process) {
		p.terms = append(p.terms, terms...)
	}
}

func NewProcess(index *timedataset.Index, opts ...ProcessOption) (*Process, error) {
	if index == nil {
		return nil, ErrNilIndex
	}
	p := &Process{index: index}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

func (p *Process) Terms() []Term {
	terms := make([]Term, len(p.terms))
	copy(terms, p.terms)
	return terms
}

// InSample concatenates the constant and every term over the historical index.
func (p *Process) InSample() (*Table, error) {
	tbl, err := p.inSample()
	if err != nil {
		return nil, err
	}
	if p.dropZero {
		tbl = tbl.dropZeroColumns()
	}
	return tbl, nil
}

func (p *Process) inSample() (*Table, error) {
	return p.build(p.index.Times(), func(term Term) (*Table, error) {
		return term.InSample(p.index)
	})
}

// OutOfSample concatenates the constant and every term over the forecast horizon.
func (p *Process) OutOfSample(steps int, forecastIndex *timedataset.Index) (*Table, error) {
	fIdx, err := forecastIndexFor(steps, p.index, forecastIndex)
	if err != nil {
		return nil, err
	}
	tbl, err := p.build(fIdx.Times(), func(term Term) (*Table, error) {
		return term.OutOfSample(steps, p.index, fIdx)
	})
	if err != nil {
		return nil, err
	}
	if !p.dropZero {
		return tbl, nil
	}

	in, err := p.InSample()
	if err != nil {
		return nil, err
	}
	return tbl.restrict(in), nil
}

func (p *Process) build(t []time.Time, gen func(Term) (*Table, error)) (*Table, error) {
	res := newTable(t)
	if p.constant {
		ones := make([]float64, len(t))
		for i := range ones {
			ones[i] = 1.0
		}
		if err := res.add(feature.NewConstant(), ones); err != nil {
			return nil, err
		}
	}

	for _, term := range p.terms {
		tbl, err := gen(term)
		if err != nil {
			return nil, err
		}
		res, err = res.Concat(tbl)
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}
