package bootstrap

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"
)

var (
	ErrNoObservations   = errors.New("no observations to resample")
	ErrInvalidBlockSize = errors.New("block size must be between 1 and the number of observations")
)

// Source draws uniform integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// NewSource returns a PCG backed source. Equal seeds produce equal draws.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func newRandomSource() *rand.Rand {
	return NewSource(uint64(time.Now().UnixNano()))
}

// Indexes generates the positions of a block bootstrap replicate of a series with nObs
// observations. ceil(nObs/blockSize) block starts are drawn first, in order, then every
// block is expanded into blockSize consecutive positions and the concatenation is cut
// back to nObs positions.
func Indexes(strategy Strategy, nObs, blockSize int, src Source) ([]int, error) {
	if nObs < 1 {
		return nil, ErrNoObservations
	}
	if blockSize < 1 || blockSize > nObs {
		return nil, fmt.Errorf("got block size %d for %d observations, %w", blockSize, nObs, ErrInvalidBlockSize)
	}

	nBlocks := (nObs + blockSize - 1) / blockSize
	starts := make([]int, nBlocks)

	var wrap bool
	switch strategy {
	case MovingBlock:
		// starts are drawn from [0, nObs-blockSize), collapsing to 0 for a single full block
		high := nObs - blockSize
		if high < 1 {
			high = 1
		}
		for i := range starts {
			starts[i] = src.IntN(high)
		}
	case CircularBlock:
		wrap = true
		for i := range starts {
			starts[i] = src.IntN(nObs)
		}
	default:
		return nil, fmt.Errorf("%s, %w", strategy, ErrUnknownStrategy)
	}

	idx := make([]int, 0, nBlocks*blockSize)
	for _, start := range starts {
		for offset := 0; offset < blockSize; offset++ {
			pos := start + offset
			if wrap {
				pos %= nObs
			}
			idx = append(idx, pos)
		}
	}
	return idx[:nObs], nil
}
