package timedataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// generateT returns n time points starting at start, spaced by freq.
func generateT(start time.Time, n int, freq Freq) TimeSlice {
	t := make(TimeSlice, 0, n)
	for i := 0; i < n; i++ {
		t = append(t, freq.Add(start, i))
	}
	return t
}

func TestGenerateT(t *testing.T) {
	start := time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)

	res := generateT(start, 7, Daily)
	assert.Len(t, res, 7)
	assert.Equal(t, time.Date(1970, 1, 7, 0, 0, 0, 0, time.UTC), res[6])

	res = generateT(start, 3, Monthly)
	assert.Equal(t, time.Date(1970, 3, 1, 0, 0, 0, 0, time.UTC), res[2])
}
