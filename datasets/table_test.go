package datasets

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSV(t *testing.T) {
	body := "Land-Ocean: Global Means\n" +
		"\"quoted, preamble\"\n" +
		"Year, Jan , Feb\n" +
		"1880,-.18,***\n" +
		"\n" +
		"1881,.5\n"

	tbl, err := ParseCSV(strings.NewReader(body), 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"Year", "Jan", "Feb"}, tbl.Header)
	assert.Equal(t, 2, tbl.Len())

	years, err := tbl.Ints("Year")
	require.NoError(t, err)
	assert.Equal(t, []int{1880, 1881}, years)

	jan, err := tbl.Floats("Jan")
	require.NoError(t, err)
	assert.Equal(t, []float64{-0.18, 0.5}, jan)

	feb, err := tbl.Floats("Feb")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(feb[0]))
	assert.True(t, math.IsNaN(feb[1]))

	_, err = tbl.Floats("Mar")
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestParseCSVErrors(t *testing.T) {
	_, err := ParseCSV(strings.NewReader("only preamble\n"), 1)
	assert.ErrorIs(t, err, ErrNoHeader)

	_, err = ParseCSV(strings.NewReader("a\n"), 3)
	assert.ErrorIs(t, err, ErrNoHeader)

	tbl, err := ParseCSV(strings.NewReader("a,b\n1,x\n"), 0)
	require.NoError(t, err)
	_, err = tbl.Floats("b")
	assert.ErrorIs(t, err, ErrNotNumeric)
	_, err = tbl.Ints("b")
	assert.ErrorIs(t, err, ErrNotNumeric)
	assert.True(t, tbl.IsNumeric("a"))
	assert.False(t, tbl.IsNumeric("b"))
}

func TestIsMissing(t *testing.T) {
	for _, s := range []string{"", "NA", "NaN", "nan", "N/A", "***", "*****"} {
		assert.True(t, isMissing(s), s)
	}
	for _, s := range []string{"0", "-.1", "*1"} {
		assert.False(t, isMissing(s), s)
	}
}
