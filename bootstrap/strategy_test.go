package bootstrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStrategy(t *testing.T) {
	testData := map[string]struct {
		name     string
		expected Strategy
		err      error
	}{
		"moving block":         {name: "moving_block", expected: MovingBlock},
		"moving block alias":   {name: "mb", expected: MovingBlock},
		"circular block":       {name: "circular_block", expected: CircularBlock},
		"circular alias upper": {name: "CB", expected: CircularBlock},
		"stationary":           {name: "stationary", err: ErrUnknownStrategy},
		"empty":                {name: "", err: ErrUnknownStrategy},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			res, err := ParseStrategy(td.name)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, td.expected, res)
		})
	}
}

func TestStrategyText(t *testing.T) {
	out, err := CircularBlock.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "circular_block", string(out))

	var s Strategy
	require.NoError(t, s.UnmarshalText([]byte("moving_block")))
	assert.Equal(t, MovingBlock, s)

	_, err = Strategy(5).MarshalText()
	assert.ErrorIs(t, err, ErrUnknownStrategy)
	assert.Equal(t, "Strategy(5)", Strategy(5).String())
}
