package feature

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testData := map[string]struct {
		label    string
		expected Feature
		err      error
	}{
		"constant":        {label: "const", expected: NewConstant()},
		"trend":           {label: "trend(4)", expected: NewTrend(4)},
		"dummy":           {label: "month=12", expected: NewDummy("month", 12)},
		"holiday":         {label: "holiday_Christmas Day", expected: NewEvent("Christmas Day")},
		"bad trend order": {label: "trend(x)", err: ErrUnknownFeature},
		"bad dummy value": {label: "month=dec", err: ErrUnknownFeature},
		"unknown":         {label: "sample0", err: ErrUnknownFeature},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			res, err := Parse(td.label)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, td.expected, res)
			assert.Equal(t, td.label, res.String())
		})
	}
}
