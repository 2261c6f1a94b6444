package bootstrap

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"sort"
	"sync"

	"github.com/aouyang1/go-datadives/timedataset"
)

var (
	ErrNoArrays          = errors.New("no arrays to bootstrap")
	ErrUnsupportedArray  = errors.New("unsupported array to bootstrap")
	ErrArrayLenMismatch  = errors.New("arrays to bootstrap have different lengths")
	ErrInvalidReplicates = errors.New("number of replicates must be positive")
)

// Resampler is a labeled array whose values can be gathered by position while keeping
// its time index and labels.
type Resampler[A any] interface {
	Len() int
	Gather(idx []int) A
}

type Options struct {
	Strategy  Strategy `json:"strategy"`
	BlockSize int      `json:"block_size"`
}

func NewDefaultOptions() *Options {
	return &Options{
		Strategy:  MovingBlock,
		BlockSize: 24,
	}
}

// Sampler draws block bootstrap replicates from a single random source. A Sampler is
// not safe for concurrent use, use Split to hand independent samplers to goroutines.
type Sampler struct {
	opt *Options
	src Source
}

// New creates a sampler. A nil options falls back to the defaults and a nil source to a
// time seeded one.
func New(opt *Options, src Source) *Sampler {
	if opt == nil {
		opt = NewDefaultOptions()
	}
	if src == nil {
		src = newRandomSource()
	}
	return &Sampler{opt: opt, src: src}
}

func (s *Sampler) Options() Options {
	return *s.opt
}

// Indexes draws a fresh block index sequence for nObs observations.
func (s *Sampler) Indexes(nObs int) ([]int, error) {
	return Indexes(s.opt.Strategy, nObs, s.opt.BlockSize, s.src)
}

// Split derives n samplers with the same options, each seeded from a draw of the parent
// source. The children are deterministic given the parent's state.
func (s *Sampler) Split(n int) []*Sampler {
	children := make([]*Sampler, n)
	for i := range children {
		seed := uint64(s.src.IntN(math.MaxInt))
		opt := *s.opt
		children[i] = &Sampler{opt: &opt, src: NewSource(seed)}
	}
	return children
}

// Bootstrap resamples every array with one shared index sequence so rows stay aligned
// across arrays. Each output keeps the time index and labels of its input.
func Bootstrap[A Resampler[A]](s *Sampler, arrays ...A) ([]A, error) {
	if len(arrays) == 0 {
		return nil, ErrNoArrays
	}

	nObs := -1
	for i, a := range arrays {
		if isNil(a) {
			return nil, fmt.Errorf("array %d is nil, %w", i, ErrUnsupportedArray)
		}
		if nObs < 0 {
			nObs = a.Len()
			continue
		}
		if a.Len() != nObs {
			return nil, fmt.Errorf(
				"array %d has length %d, expected %d, %w", i, a.Len(), nObs, ErrArrayLenMismatch,
			)
		}
	}

	idx, err := s.Indexes(nObs)
	if err != nil {
		return nil, err
	}

	res := make([]A, len(arrays))
	for i, a := range arrays {
		res[i] = a.Gather(idx)
	}
	return res, nil
}

// BootstrapOne resamples a single array.
func BootstrapOne[A Resampler[A]](s *Sampler, a A) (A, error) {
	res, err := Bootstrap(s, a)
	if err != nil {
		var zero A
		return zero, err
	}
	return res[0], nil
}

func isNil(a any) bool {
	if a == nil {
		return true
	}
	v := reflect.ValueOf(a)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return v.IsNil()
	}
	return false
}

func replicateName(i int) string {
	return fmt.Sprintf("sample%d", i)
}

// Replicates draws n independent replicates of the series as the columns sample0 to
// sample{n-1} of a frame sharing the series time index.
func Replicates(s *Sampler, td *timedataset.TimeDataset, n int) (*timedataset.Frame, error) {
	if n < 1 {
		return nil, fmt.Errorf("got %d replicates, %w", n, ErrInvalidReplicates)
	}
	if td == nil {
		return nil, fmt.Errorf("nil series, %w", ErrUnsupportedArray)
	}

	columns := make([]string, n)
	data := make([][]float64, n)
	for i := 0; i < n; i++ {
		res, err := BootstrapOne(s, td)
		if err != nil {
			return nil, err
		}
		columns[i] = replicateName(i)
		data[i] = res.Y
	}
	return timedataset.NewFrame(td.T, columns, data)
}

// ParallelReplicates is Replicates spread over a number of workers. Every replicate
// gets its own sampler split off s up front, so the output only depends on the state of
// s and not on scheduling.
func ParallelReplicates(s *Sampler, td *timedataset.TimeDataset, n, workers int) (*timedataset.Frame, error) {
	if n < 1 {
		return nil, fmt.Errorf("got %d replicates, %w", n, ErrInvalidReplicates)
	}
	if td == nil {
		return nil, fmt.Errorf("nil series, %w", ErrUnsupportedArray)
	}
	if workers < 1 {
		workers = 1
	}

	samplers := s.Split(n)
	columns := make([]string, n)
	data := make([][]float64, n)
	errs := make([]error, n)

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		sem <- struct{}{}
		wg.Add(1)

		go func(i int) {
			defer func() {
				wg.Done()
				<-sem
			}()
			res, err := BootstrapOne(samplers[i], td)
			if err != nil {
				errs[i] = err
				return
			}
			columns[i] = replicateName(i)
			data[i] = res.Y
		}(i)
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return timedataset.NewFrame(td.T, columns, data)
}

// Quantiles returns, per row of the replicates frame, the empirical q-quantile across
// its columns using linear interpolation between order statistics. NaN values are
// skipped.
func Quantiles(replicates *timedataset.Frame, q float64) []float64 {
	res := make([]float64, replicates.Len())
	row := make([]float64, 0, replicates.Width())
	for i := range res {
		row = row[:0]
		for _, col := range replicates.Data {
			if !math.IsNaN(col[i]) {
				row = append(row, col[i])
			}
		}
		res[i] = quantile(row, q)
	}
	return res
}

func quantile(samples []float64, q float64) float64 {
	n := len(samples)
	if n == 0 {
		return math.NaN()
	}

	sort.Float64s(samples)
	if q <= 0 {
		return samples[0]
	}
	if q >= 1 {
		return samples[n-1]
	}

	pos := q * float64(n-1)
	below := int(math.Floor(pos))
	above := int(math.Ceil(pos))
	if above == below {
		return samples[below]
	}
	weight := pos - float64(below)
	return samples[below]*(1.0-weight) + samples[above]*weight
}
